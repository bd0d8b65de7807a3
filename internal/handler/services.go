package handler

import (
	"net/http"

	"github.com/govservices/portal/internal/forms"
	"github.com/govservices/portal/internal/model"
	"github.com/govservices/portal/internal/receipt"
	"github.com/govservices/portal/internal/session"
)

var passportPage = formPage[forms.Passport]{
	title:    "Apply for a passport",
	action:   "/services/passport",
	crumbs:   serviceCrumbs("Passport application"),
	service:  receipt.ServicePassport,
	form:     forms.PassportForm,
	workflow: (*session.State).Passport,
}

var licensePage = formPage[forms.License]{
	title:    "Apply for a driving license",
	action:   "/services/license",
	crumbs:   serviceCrumbs("Driving license application"),
	service:  receipt.ServiceLicense,
	form:     forms.LicenseForm,
	workflow: (*session.State).License,
}

var contactPage = formPage[forms.Contact]{
	title:  "Contact us",
	action: "/contact",
	crumbs: []model.Crumb{
		{Label: "Home", Href: "/"},
		{Label: "Contact us"},
	},
	form:     forms.ContactForm,
	workflow: (*session.State).Contact,
}

// Passport handles GET /services/passport.
func (h *Handler) Passport(w http.ResponseWriter, r *http.Request) {
	showForm(h, w, r, passportPage)
}

// PassportSubmit handles POST /services/passport.
func (h *Handler) PassportSubmit(w http.ResponseWriter, r *http.Request) {
	submitForm(h, w, r, passportPage)
}

// License handles GET /services/license.
func (h *Handler) License(w http.ResponseWriter, r *http.Request) {
	showForm(h, w, r, licensePage)
}

// LicenseSubmit handles POST /services/license.
func (h *Handler) LicenseSubmit(w http.ResponseWriter, r *http.Request) {
	submitForm(h, w, r, licensePage)
}

// Contact handles GET /contact.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	showForm(h, w, r, contactPage)
}

// ContactSubmit handles POST /contact.
func (h *Handler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	submitForm(h, w, r, contactPage)
}
