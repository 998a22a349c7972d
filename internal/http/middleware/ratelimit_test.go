package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestLimiterStoreAllowsBurstThenDenies(t *testing.T) {
	store := NewLimiterStore(1, 3, time.Minute)
	defer store.Stop()

	for i := 0; i < 3; i++ {
		if !store.Allow("10.0.0.1") {
			t.Fatalf("requisição %d dentro do burst deveria passar", i+1)
		}
	}
	if store.Allow("10.0.0.1") {
		t.Fatalf("burst esgotado deveria negar")
	}
	// outra chave tem limitador próprio
	if !store.Allow("10.0.0.2") {
		t.Fatalf("chaves independentes não compartilham limite")
	}
}

func TestRateLimitMiddlewareReturns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := NewLimiterStore(1, 2, time.Minute)
	defer store.Stop()

	r := gin.New()
	r.POST("/login", RateLimit(store), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst deveria passar: %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("terceira requisição esperava 429, veio %d", codes[2])
	}
}
