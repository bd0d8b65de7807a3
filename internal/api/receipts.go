package api

import (
	"net/http"

	"github.com/govservices/portal/internal/receipt"
)

// GetReceipt handles GET /api/v1/receipts/{service}.
//
//	@Summary		Get confirmation content
//	@Description	Returns the confirmation copy shown after submitting a service's form. Unknown services get the generic copy.
//	@Tags			receipts
//	@Produce		json
//	@Param			service	path		string	true	"Service key"	Enums(passport, license, contact)
//	@Success		200		{object}	ReceiptContentResponse
//	@Router			/api/v1/receipts/{service} [get]
func (h *Handler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	service := r.PathValue("service")
	c := receipt.Lookup(service)

	h.writeJSON(w, http.StatusOK, ReceiptContentResponse{
		Service:     service,
		Title:       c.Title,
		Prefix:      c.Prefix,
		NextSteps:   c.NextSteps,
		Explanation: c.Explanation,
		NoticeTitle: c.NoticeTitle,
		NoticeText:  c.NoticeText,
	})
}
