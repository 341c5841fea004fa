package http

import (
	"net/http"

	"github.com/MKhiriev/go-link-txt/internal/app"
	"github.com/MKhiriev/go-link-txt/internal/logger"
	"github.com/MKhiriev/go-link-txt/internal/utils"
	"github.com/MKhiriev/go-link-txt/models"
)

func (h *Handler) verifyAPIKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeBody(r, &credentials); err != nil {
		writeDecodeError(w, log, err)
		return
	}

	err := h.services.VerificationService.Verify(r.Context(), apiKeyFrom(r, credentials.APIKey))
	if writeIfTimedOut(w, r) {
		return
	}
	if err != nil {
		failure := verificationFailureFromError(err)
		log.Info().Err(err).Int("status", failure.status).Msg("API key verification failed")
		utils.WriteStatus(w, false, failure.message, failure.status)
		return
	}

	utils.WriteStatus(w, true, app.MsgAPIKeyVerified, http.StatusOK)
}
