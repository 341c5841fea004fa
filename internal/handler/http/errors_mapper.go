package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-link-txt/internal/app"
	"github.com/MKhiriev/go-link-txt/internal/service"
	"github.com/MKhiriev/go-link-txt/models"
)

var failureStatusMap = map[models.FailureKind]int{
	models.FailureNone:         http.StatusOK,
	models.FailureValidation:   http.StatusBadRequest,
	models.FailureUnauthorized: http.StatusUnauthorized,
	models.FailureStep:         http.StatusBadRequest,
	models.FailureRemote:       http.StatusBadGateway,
}

func statusFromResult(result models.ProvisionResult) int {
	if status, ok := failureStatusMap[result.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

type verificationFailure struct {
	status  int
	message string
}

var verificationErrorMap = map[error]verificationFailure{
	service.ErrMissingAPIKey:       {http.StatusBadRequest, app.MsgMissingAPIKey},
	service.ErrInvalidAPIKey:       {http.StatusUnauthorized, app.MsgUnauthorized},
	service.ErrPlatformUnavailable: {http.StatusBadGateway, app.MsgPlatformUnavailable},
}

func verificationFailureFromError(err error) verificationFailure {
	for target, failure := range verificationErrorMap {
		if errors.Is(err, target) {
			return failure
		}
	}
	return verificationFailure{http.StatusInternalServerError, app.MsgInternalServerError}
}
