package handler

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/govservices/portal/internal/catalogue"
	"github.com/govservices/portal/internal/config"
	"github.com/govservices/portal/internal/metrics"
	"github.com/govservices/portal/internal/session"
	"github.com/govservices/portal/internal/workflow"
)

// TemplateRenderer renders a named page template.
type TemplateRenderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	tmpl          TemplateRenderer
	catalogue     *catalogue.Catalogue
	sessions      *session.Store
	issuer        workflow.Issuer
	metrics       *metrics.Metrics
	secureCookies bool
}

// Option configures a Handler.
type Option func(*Handler)

// WithSecureCookies marks the session cookie Secure, for deployments behind TLS.
func WithSecureCookies(secure bool) Option {
	return func(h *Handler) { h.secureCookies = secure }
}

// New creates a new Handler with the given dependencies.
func New(
	tmpl TemplateRenderer,
	cat *catalogue.Catalogue,
	sessions *session.Store,
	issuer workflow.Issuer,
	m *metrics.Metrics,
	opts ...Option,
) (*Handler, error) {
	if tmpl == nil {
		return nil, errors.New("templates is required")
	}
	if cat == nil {
		return nil, errors.New("service catalogue is required")
	}
	if sessions == nil {
		return nil, errors.New("session store is required")
	}
	if issuer == nil {
		return nil, errors.New("receipt issuer is required")
	}
	if m == nil {
		return nil, errors.New("metrics is required")
	}

	h := &Handler{
		tmpl:      tmpl,
		catalogue: cat,
		sessions:  sessions,
		issuer:    issuer,
		metrics:   m,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// RegisterRoutes registers all HTTP routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /services", h.Services)
	mux.HandleFunc("GET /services/{key}", h.ServiceEntry)

	mux.HandleFunc("GET /services/passport", h.Passport)
	mux.HandleFunc("POST /services/passport", h.PassportSubmit)
	mux.HandleFunc("GET /services/license", h.License)
	mux.HandleFunc("POST /services/license", h.LicenseSubmit)
	mux.HandleFunc("GET /contact", h.Contact)
	mux.HandleFunc("POST /contact", h.ContactSubmit)

	mux.HandleFunc("GET /confirmation/{service}", h.Confirmation)

	mux.HandleFunc("/", h.NotFound)
}

// render writes the page into a buffer first so a template error can still
// produce a clean 500.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.Render(&buf, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("failed to write response", "error", err)
	}
}

// session returns the visitor's session, starting one and setting its
// cookie when the request carries no live session.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *session.State {
	if state, ok := h.existingSession(r); ok {
		return state
	}

	id, state := h.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     config.SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return state
}

func (h *Handler) existingSession(r *http.Request) (*session.State, bool) {
	c, err := r.Cookie(config.SessionCookieName)
	if err != nil {
		return nil, false
	}
	state, err := h.sessions.Get(c.Value)
	if err != nil {
		return nil, false
	}
	return state, true
}
