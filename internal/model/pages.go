package model

import (
	"github.com/govservices/portal/internal/catalogue"
	"github.com/govservices/portal/internal/receipt"
)

// Crumb is one breadcrumb link. The last crumb has no Href.
type Crumb struct {
	Label string
	Href  string
}

// OptionView is one radio option of a choice field.
type OptionView struct {
	Value   string
	Label   string
	Checked bool
}

// FieldView is a form field prepared for rendering.
type FieldView struct {
	Name      string
	Label     string
	Hint      string
	Value     string
	Error     string
	Input     string // "text", "email", "date", "tel", "textarea" or "radio"
	Options   []OptionView
	MaxLength int
	Length    int // characters entered, for the textarea counter
}

// ErrorItem is one entry of the error summary, linking to its field.
type ErrorItem struct {
	Field   string
	Message string
}

// StepView describes one step of the progress indicator.
type StepView struct {
	Number  int
	Title   string
	Reached bool
	Current bool
}

// ReviewRow is one line of the review summary.
type ReviewRow struct {
	Label string
	Value string
}

// FormPageData holds data for the passport, license and contact form pages.
type FormPageData struct {
	Page      string // "passport", "license" or "contact"
	Title     string
	Crumbs    []Crumb
	Action    string
	Errors    []ErrorItem
	Fields    []FieldView
	Step      int
	MaxStep   int
	Steps     []StepView
	StepTitle string
	Review    []ReviewRow
	Final     bool
	Service   *catalogue.Service // catalogue entry, when the form has one
	Helpline  string
}

// HomePageData holds data for the home page.
type HomePageData struct {
	Featured []catalogue.Service
}

// ServicesPageData holds data for the services catalogue page.
type ServicesPageData struct {
	Crumbs   []Crumb
	Services []catalogue.Service
	Helpline string
}

// ConfirmationPageData holds data for the confirmation page.
type ConfirmationPageData struct {
	Receipt      receipt.Receipt
	Helpline     string
	SupportEmail string
}

// NotFoundPageData holds data for the not found page.
type NotFoundPageData struct {
	Message string
}
