package handlers

import (
	"net/http"

	"westudy/internal/domain"
	"westudy/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	payload := gin.H{
		"error": message,
		"code":  code,
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Internal errors
// are logged via gin recovery/logger; the caller only sees a generic message.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsAuth(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error())
	case domain.IsForbidden(err):
		respondError(c, http.StatusForbidden, "forbidden", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "ocorreu um erro inesperado")
	}
}
