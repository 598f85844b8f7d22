package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"taskboard/internal/logger"
	"taskboard/internal/service"
)

// handleServiceError maps a service failure to an HTTP response. Only the
// business error's code, message and details reach the client; wrapped
// storage errors are logged and replaced with a generic body.
func handleServiceError(w http.ResponseWriter, err error) {
	var businessErr *service.BusinessError
	if !errors.As(err, &businessErr) {
		logger.Error("HTTP: unexpected error", err)
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	status := businessErrorStatus(businessErr.Code)
	if status >= 500 {
		logger.Error("HTTP: service error", businessErr.Err, zap.String("error_code", businessErr.Code))
	} else {
		logger.Warn("HTTP: business error",
			zap.String("error_code", businessErr.Code),
			zap.Int("http_status", status))
	}

	payloads := []payload{
		kv("error", businessErr.Code),
		kv("message", businessErr.Message),
	}
	if len(businessErr.Details) > 0 {
		payloads = append(payloads, kv("details", businessErr.Details))
	}
	respondWith(w, status, payloads...)
}

func businessErrorStatus(code string) int {
	switch code {
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeValidation:
		return http.StatusBadRequest
	case service.CodePersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
