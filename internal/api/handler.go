package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/govservices/portal/internal/catalogue"
)

// maxBodyBytes bounds the JSON body of validation requests.
const maxBodyBytes = 64 << 10

// Handler holds dependencies for API handlers.
type Handler struct {
	catalogue  *catalogue.Catalogue
	bufferPool *sync.Pool // Pool of bytes.Buffer for JSON encoding
}

// New creates a new API Handler.
func New(cat *catalogue.Catalogue) (*Handler, error) {
	if cat == nil {
		return nil, errors.New("service catalogue is required")
	}
	return &Handler{
		catalogue: cat,
		bufferPool: &sync.Pool{
			New: func() any {
				return new(bytes.Buffer)
			},
		},
	}, nil
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/services", h.ListServices)
	mux.HandleFunc("GET /api/v1/services/{key}", h.GetService)
	mux.HandleFunc("GET /api/v1/receipts/{service}", h.GetReceipt)
	mux.HandleFunc("GET /api/v1/forms/{form}", h.GetForm)
	mux.HandleFunc("POST /api/v1/forms/{form}/validate", h.ValidateForm)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	buf := h.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		h.bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
		http.Error(w, `{"error":"internal server error","code":500}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: msg,
		Code:  status,
	})
}
