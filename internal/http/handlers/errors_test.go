package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"westudy/internal/domain"

	"github.com/gin-gonic/gin"
)

func TestRespondDomainErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validação", domain.ValidationError{Field: "email", Msg: "email inválido"}, http.StatusBadRequest, "validation_error"},
		{"autenticação", domain.AuthError{Msg: "Email ou senha inválidos."}, http.StatusUnauthorized, "unauthorized"},
		{"proibido", domain.ForbiddenError{Msg: "acesso negado"}, http.StatusForbidden, "forbidden"},
		{"não encontrado", domain.NotFoundError{Resource: "quarto"}, http.StatusNotFound, "not_found"},
		{"conflito", domain.ConflictError{Resource: "quarto", Msg: "já reservado"}, http.StatusConflict, "conflict"},
		{"interno", domain.InternalError{Msg: "algo quebrou", Err: errors.New("driver")}, http.StatusInternalServerError, "internal_error"},
		{"erro cru", errors.New("sem tipo"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		RespondDomainError(c, tc.err)

		if w.Code != tc.status {
			t.Fatalf("%s: status esperado %d, veio %d", tc.name, tc.status, w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: corpo não é JSON: %v", tc.name, err)
		}
		if body["code"] != tc.code {
			t.Fatalf("%s: code esperado %q, veio %v", tc.name, tc.code, body["code"])
		}
		if body["error"] == "" {
			t.Fatalf("%s: mensagem de erro vazia", tc.name)
		}
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RespondDomainError(c, domain.InternalError{Msg: "erro ao criar a reserva", Err: errors.New("dsn user:pass@tcp")})

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("corpo não é JSON: %v", err)
	}
	if body["error"] != "ocorreu um erro inesperado" {
		t.Fatalf("detalhe interno vazou para o cliente: %v", body["error"])
	}
}
