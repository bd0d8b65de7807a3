package config

import "time"

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultRateLimit is the default number of form posts per minute per IP address.
	DefaultRateLimit = 100

	// DefaultSessionTTL is how long an idle visitor session keeps its form state.
	DefaultSessionTTL = 30 * time.Minute

	// SessionCookieName names the cookie carrying the visitor session ID.
	SessionCookieName = "portal_session"

	// MinMessageLength is the shortest enquiry message the contact form accepts.
	MinMessageLength = 10

	// MaxMessageLength is the longest enquiry message the contact form accepts.
	MaxMessageLength = 2000

	// HelplineNumber is shown on confirmation and contact pages.
	HelplineNumber = "0300 123 4567"

	// SupportEmail is shown on confirmation pages.
	SupportEmail = "support@gov.uk"
)
