package handlers

import (
	"net/http"
	"strconv"

	intconfig "westudy/internal/config"
	"westudy/internal/domain"
	"westudy/internal/http/middleware"
	"westudy/internal/services"

	"github.com/gin-gonic/gin"
)

// Package-level services, wired once by Configure. Tests may swap them.
var (
	listingSvc services.ListingService
	bookingSvc services.BookingService
	messageSvc services.MessageService
	authSvc    services.AuthService
	adminSvc   services.AdminService
	docsSvc    services.DocsService
)

// Configure wires the handler services from the environment.
func Configure(env intconfig.Env) {
	listingSvc = services.ListingService{}
	bookingSvc = services.BookingService{}
	messageSvc = services.MessageService{}
	adminSvc = services.AdminService{}
	docsSvc = services.DocsService{}
	authSvc = services.AuthService{
		JWTSecret: []byte(env.JWTSecret),
		TokenTTL:  env.TokenTTL,
	}
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		respondError(c, http.StatusBadRequest, "validation_error", "corpo da requisição vazio")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "payload inválido")
		return false
	}
	return true
}

// sessionOrAbort retrieves the session stored by the auth middleware.
func sessionOrAbort(c *gin.Context) (domain.Session, bool) {
	session, ok := middleware.GetSession(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "Não autorizado. Você precisa estar logado.")
	}
	return session, ok
}

// pathID parses a positive int64 path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "id inválido")
		return 0, false
	}
	return id, true
}
