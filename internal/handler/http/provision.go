package http

import (
	"net/http"

	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/utils"
	"github.com/MKhiriev/go-link-txt/models"
)

func (h *Handler) createCreative(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var form models.CreateCreativeForm
	if err := decodeBody(r, &form); err != nil {
		writeDecodeError(w, log, err)
		return
	}

	result := h.services.ProvisioningService.Provision(r.Context(), apiKeyFrom(r, form.APIKey), form.ProvisionRequest())
	if writeIfTimedOut(w, r) {
		return
	}

	utils.WriteJSON(w, result, statusFromResult(result))
}
