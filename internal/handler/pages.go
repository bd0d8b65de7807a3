package handler

import (
	"net/http"

	"github.com/govservices/portal/internal/config"
	"github.com/govservices/portal/internal/model"
)

// Home handles the landing page with the featured services.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "home.html", model.HomePageData{
		Featured: h.catalogue.Featured(),
	})
}

// Services handles the catalogue of every service.
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "services.html", model.ServicesPageData{
		Crumbs:   []model.Crumb{{Label: "Home", Href: "/"}, {Label: "Services"}},
		Services: h.catalogue.Services,
		Helpline: config.HelplineNumber,
	})
}

// ServiceEntry handles /services/{key} for catalogue entries that have no
// online form, pointing the visitor at the entry on the services page.
func (h *Handler) ServiceEntry(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if _, ok := h.catalogue.Get(key); !ok {
		h.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/services#"+key, http.StatusSeeOther)
}

// Confirmation handles GET /confirmation/{service}, showing the receipt
// issued in this session for the service. Only the three forms issue
// receipts, so any other service answers 404; its default content is served
// by the API's receipts endpoint instead.
func (h *Handler) Confirmation(w http.ResponseWriter, r *http.Request) {
	service := r.PathValue("service")

	state, ok := h.existingSession(r)
	if !ok {
		h.notFound(w, "We could not find a submission for this session. It may have expired.")
		return
	}

	state.Lock()
	rcpt, ok := state.Receipt(service)
	state.Unlock()
	if !ok {
		h.notFound(w, "We could not find a submission for this session. It may have expired.")
		return
	}

	h.render(w, http.StatusOK, "confirmation.html", model.ConfirmationPageData{
		Receipt:      rcpt,
		Helpline:     config.HelplineNumber,
		SupportEmail: config.SupportEmail,
	})
}

// NotFound handles every path without a route.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, "Sorry, we could not find the page you were looking for.")
}

func (h *Handler) notFound(w http.ResponseWriter, message string) {
	h.render(w, http.StatusNotFound, "notfound.html", model.NotFoundPageData{Message: message})
}
