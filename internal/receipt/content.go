// Package receipt holds the confirmation content shown after a submission
// and issues the reference codes that identify submissions.
package receipt

import "github.com/samber/lo"

// Service keys used to select receipt content.
const (
	ServicePassport = "passport"
	ServiceLicense  = "license"
	ServiceContact  = "contact"
)

// Content is the static confirmation copy for one service.
type Content struct {
	Title       string
	Prefix      string // reference code prefix, e.g. "PS"
	NextSteps   []string
	Explanation string
	NoticeTitle string
	NoticeText  string // notice body; the reference is appended
}

var contents = map[string]Content{
	ServicePassport: {
		Title:  "Passport application submitted",
		Prefix: "PS",
		NextSteps: []string{
			"You'll receive an email confirmation within 24 hours",
			"Your application will be processed within 3 weeks",
			"You may be asked to attend an interview",
			"Your new passport will be sent by secure delivery",
		},
		Explanation: "We'll review your application and may contact you if we need more information. " +
			"You can track the progress of your application using the reference number above.",
		NoticeTitle: "Application Submitted",
		NoticeText:  "Your passport application has been submitted successfully.",
	},
	ServiceLicense: {
		Title:  "Driving license application submitted",
		Prefix: "DL",
		NextSteps: []string{
			"You'll receive an email confirmation within 24 hours",
			"Your provisional license will arrive within 1 week",
			"You can then book your theory and practical tests",
			"Your full license will be issued after passing both tests",
		},
		Explanation: "We'll process your application and send your provisional license to the address you provided. " +
			"Make sure to check your documents are correct when they arrive.",
		NoticeTitle: "Application Submitted",
		NoticeText:  "Your driving license application has been submitted successfully.",
	},
	ServiceContact: {
		Title:  "Message sent successfully",
		Prefix: "EN",
		NextSteps: []string{
			"You'll receive an email confirmation within 24 hours",
			"We'll review your enquiry within 2 working days",
			"You'll receive a response within 5 working days",
			"For urgent matters, you can call 0300 123 4567",
		},
		Explanation: "Our customer service team will review your enquiry and respond using your preferred contact method. " +
			"Please keep your reference number for any follow-up correspondence.",
		NoticeTitle: "Message Sent",
		NoticeText:  "Your enquiry has been submitted successfully.",
	},
}

var defaultContent = Content{
	Title:       "Application submitted",
	Prefix:      "APP",
	NextSteps:   []string{"Your application is being processed"},
	Explanation: "We'll be in touch soon.",
	NoticeTitle: "Application Submitted",
	NoticeText:  "Your application has been submitted successfully.",
}

// Lookup returns the content for a service key, falling back to the default
// content for keys it does not know.
func Lookup(service string) Content {
	c, ok := contents[service]
	if !ok {
		c = defaultContent
	}
	c.NextSteps = lo.Map(c.NextSteps, func(s string, _ int) string { return s })
	return c
}

// Known reports whether service has its own receipt content.
func Known(service string) bool {
	_, ok := contents[service]
	return ok
}
