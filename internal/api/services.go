package api

import (
	"net/http"

	"github.com/govservices/portal/internal/catalogue"
	"github.com/samber/lo"
)

// ListServices handles GET /api/v1/services.
//
//	@Summary		List services
//	@Description	Returns every entry of the services catalogue
//	@Tags			services
//	@Produce		json
//	@Success		200	{object}	ServiceListResponse
//	@Router			/api/v1/services [get]
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	items := lo.Map(h.catalogue.Services, func(s catalogue.Service, _ int) ServiceResponse {
		return toServiceResponse(s)
	})
	h.writeJSON(w, http.StatusOK, ServiceListResponse{Data: items, Total: len(items)})
}

// GetService handles GET /api/v1/services/{key}.
//
//	@Summary		Get service
//	@Description	Returns one catalogue entry by key
//	@Tags			services
//	@Produce		json
//	@Param			key	path		string	true	"Service key"
//	@Success		200	{object}	ServiceResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/v1/services/{key} [get]
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	svc, ok := h.catalogue.Get(key)
	if !ok {
		h.writeError(w, http.StatusNotFound, "service not found: "+key)
		return
	}
	h.writeJSON(w, http.StatusOK, toServiceResponse(svc))
}

func toServiceResponse(s catalogue.Service) ServiceResponse {
	return ServiceResponse{
		Key:            s.Key,
		Title:          s.Title,
		Description:    s.Description,
		Link:           s.Link,
		ProcessingTime: s.ProcessingTime,
		Fee:            s.Fee.StringFixed(2),
		FeeText:        s.FeeText(),
		MinimumAge:     s.MinimumAge,
		Requirements:   s.Requirements,
		Online:         s.Online,
		Featured:       s.Featured,
	}
}
