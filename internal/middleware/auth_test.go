package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func authTestRouter(allowedKeys []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyMiddleware(allowedKeys))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestAPIKeyMiddleware_NoKeysConfigured(t *testing.T) {
	r := authTestRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 when no keys configured, got %d", w.Code)
	}
}

func TestAPIKeyMiddleware_ValidKey(t *testing.T) {
	r := authTestRouter([]string{"key1", "key2"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-API-KEY", "key2")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 with valid key, got %d", w.Code)
	}
}

func TestAPIKeyMiddleware_RejectsBadOrMissingKey(t *testing.T) {
	r := authTestRouter([]string{"key1"})

	for _, key := range []string{"", "wrong"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if key != "" {
			req.Header.Set("X-API-KEY", key)
		}
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("key %q: expected 401, got %d", key, w.Code)
		}
	}
}
