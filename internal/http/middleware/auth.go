package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"westudy/internal/domain"
	"westudy/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionKey = "session"

// RequireAuth validates the bearer token and stores the caller's session on
// the gin context. Handlers then pass the session explicitly into services.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "Não autorizado. Você precisa estar logado.")
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims := &services.Claims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "Sessão inválida ou expirada.")
			return
		}

		c.Set(sessionKey, domain.Session{
			UserID:  claims.UserID,
			Email:   claims.Email,
			IsAdmin: claims.IsAdmin,
		})
		c.Next()
	}
}

// RequireAdmin gates the admin surface. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			abortUnauthorized(c, "Não autorizado.")
			return
		}
		if !session.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Proibido. Acesso restrito a administradores.",
			})
			return
		}
		c.Next()
	}
}

// GetSession returns the authenticated session stored by RequireAuth.
func GetSession(c *gin.Context) (domain.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return domain.Session{}, false
	}
	s, ok := v.(domain.Session)
	return s, ok
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
