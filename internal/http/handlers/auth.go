package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	token, user, err := authSvc.Login(req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := authSvc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registro realizado com sucesso",
		"user":    user,
	})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	user, err := authSvc.Me(session)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// POST /api/auth/logout
// Tokens are stateless; the client discards its copy.
func Logout(c *gin.Context) {
	if _, ok := sessionOrAbort(c); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logout realizado com sucesso"})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// POST /api/auth/forgot-password
func ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	msg, err := authSvc.ForgotPassword(req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
