// Package forms declares the portal's application forms: the passport
// application, the driving license application and the contact enquiry.
package forms

import (
	"github.com/govservices/portal/internal/config"
	"github.com/govservices/portal/internal/receipt"
	"github.com/govservices/portal/internal/workflow"
)

// Passport holds the passport application fields.
type Passport struct {
	ServiceType string
	FirstName   string
	LastName    string
	DateOfBirth string
	Nationality string
	Email       string
	Phone       string
}

// License holds the driving license application fields.
type License struct {
	LicenseType    string
	FirstName      string
	LastName       string
	DateOfBirth    string
	Address        string
	Postcode       string
	HasProvisional string
	Email          string
	Phone          string
}

// Contact holds the contact enquiry fields.
type Contact struct {
	EnquiryType      string
	Name             string
	Email            string
	Phone            string
	Subject          string
	Message          string
	PreferredContact string
}

// PassportForm is the three-step passport application.
var PassportForm = &workflow.Definition[Passport]{
	Name:    "passport",
	Service: receipt.ServicePassport,
	Steps:   []string{"Personal Details", "Contact Information", "Review & Submit"},
	Fields: []workflow.Field[Passport]{
		{
			Name: "serviceType", Label: "Service type", Kind: workflow.Choice, Step: 1, Default: "renewal",
			Options: []workflow.Option{
				{Value: "new", Label: "Apply for first adult passport"},
				{Value: "renewal", Label: "Renew adult passport"},
				{Value: "replacement", Label: "Replace lost or stolen passport"},
			},
			Value: func(p *Passport) *string { return &p.ServiceType },
		},
		{Name: "firstName", Label: "First name", Kind: workflow.Text, Step: 1,
			Value: func(p *Passport) *string { return &p.FirstName }},
		{Name: "lastName", Label: "Last name", Kind: workflow.Text, Step: 1,
			Value: func(p *Passport) *string { return &p.LastName }},
		{Name: "dateOfBirth", Label: "Date of birth", Kind: workflow.Date, Step: 1,
			Value: func(p *Passport) *string { return &p.DateOfBirth }},
		{Name: "nationality", Label: "Nationality", Kind: workflow.Text, Step: 1,
			Hint:  "For example, British, Irish, American",
			Value: func(p *Passport) *string { return &p.Nationality }},
		{Name: "email", Label: "Email address", Kind: workflow.Email, Step: 2,
			Hint:  "We'll use this to send you updates about your application",
			Value: func(p *Passport) *string { return &p.Email }},
		{Name: "phone", Label: "Phone number", Kind: workflow.Text, Input: "tel", Step: 2,
			Hint:  "We may need to contact you about your application",
			Value: func(p *Passport) *string { return &p.Phone }},
	},
}

// LicenseForm is the single-step driving license application.
var LicenseForm = &workflow.Definition[License]{
	Name:    "license",
	Service: receipt.ServiceLicense,
	Fields: []workflow.Field[License]{
		{
			Name: "licenseType", Label: "License type", Kind: workflow.Choice, Step: 1, Default: "car",
			Options: []workflow.Option{
				{Value: "car", Label: "Car (Category B)"},
				{Value: "motorcycle", Label: "Motorcycle (Category A)"},
				{Value: "lorry", Label: "Lorry (Category C)"},
			},
			Value: func(l *License) *string { return &l.LicenseType },
		},
		{Name: "firstName", Label: "First name", Kind: workflow.Text, Step: 1,
			Value: func(l *License) *string { return &l.FirstName }},
		{Name: "lastName", Label: "Last name", Kind: workflow.Text, Step: 1,
			Value: func(l *License) *string { return &l.LastName }},
		{Name: "dateOfBirth", Label: "Date of birth", Kind: workflow.Date, Step: 1,
			Value: func(l *License) *string { return &l.DateOfBirth }},
		{Name: "address", Label: "Address", Kind: workflow.Text, Step: 1,
			Hint:  "Include house number/name and street",
			Value: func(l *License) *string { return &l.Address }},
		{Name: "postcode", Label: "Postcode", Kind: workflow.Text, Step: 1,
			Value: func(l *License) *string { return &l.Postcode }},
		{
			Name: "hasProvisional", Label: "Do you already have a provisional license?", Kind: workflow.Choice, Step: 1, Default: "no",
			Options: []workflow.Option{
				{Value: "yes", Label: "Yes"},
				{Value: "no", Label: "No"},
			},
			Value: func(l *License) *string { return &l.HasProvisional },
		},
		{Name: "email", Label: "Email address", Kind: workflow.Email, Step: 1,
			Hint:  "We'll use this to send you updates about your application",
			Value: func(l *License) *string { return &l.Email }},
		{Name: "phone", Label: "Phone number", Kind: workflow.Text, Input: "tel", Step: 1,
			Value: func(l *License) *string { return &l.Phone }},
	},
}

// ContactForm is the single-step contact enquiry.
var ContactForm = &workflow.Definition[Contact]{
	Name:    "contact",
	Service: receipt.ServiceContact,
	Fields: []workflow.Field[Contact]{
		{
			Name: "enquiryType", Label: "What is your enquiry about?", Kind: workflow.Choice, Step: 1, Default: "general",
			Options: []workflow.Option{
				{Value: "general", Label: "General enquiry"},
				{Value: "technical", Label: "Technical problem"},
				{Value: "complaint", Label: "Complaint"},
				{Value: "feedback", Label: "Feedback or suggestion"},
			},
			Value: func(c *Contact) *string { return &c.EnquiryType },
		},
		{Name: "name", Label: "Full name", Kind: workflow.Text, Step: 1,
			Value: func(c *Contact) *string { return &c.Name }},
		{Name: "email", Label: "Email address", Kind: workflow.Email, Step: 1,
			Value: func(c *Contact) *string { return &c.Email }},
		{Name: "phone", Label: "Phone number (optional)", Kind: workflow.OptionalText, Input: "tel", Step: 1,
			Hint:  "We may need to contact you for more information",
			Value: func(c *Contact) *string { return &c.Phone }},
		{Name: "subject", Label: "Subject", Kind: workflow.Text, Step: 1,
			Required: "Enter a subject for your enquiry",
			Hint:     "Brief description of your enquiry",
			Value:    func(c *Contact) *string { return &c.Subject }},
		{Name: "message", Label: "Message", Kind: workflow.Message, Step: 1,
			MinLength: config.MinMessageLength, MaxLength: config.MaxMessageLength,
			Value: func(c *Contact) *string { return &c.Message }},
		{
			Name: "preferredContact", Label: "How would you prefer us to contact you?", Kind: workflow.Choice, Step: 1, Default: "email",
			Options: []workflow.Option{
				{Value: "email", Label: "Email"},
				{Value: "phone", Label: "Phone"},
				{Value: "either", Label: "Either email or phone"},
			},
			Value: func(c *Contact) *string { return &c.PreferredContact },
		},
	},
}

// Check validates every form declaration.
func Check() error {
	if err := PassportForm.Check(); err != nil {
		return err
	}
	if err := LicenseForm.Check(); err != nil {
		return err
	}
	return ContactForm.Check()
}
