package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine(called *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	e := gin.New()
	e.Use(CORSMiddleware())
	e.POST("/api/broadcast", func(c *gin.Context) {
		*called = true
		c.Status(http.StatusOK)
	})

	return e
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	called := false
	e := newEngine(&called)

	req := httptest.NewRequest(http.MethodOptions, "/api/broadcast", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	e.ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_SimpleRequest(t *testing.T) {
	called := false
	e := newEngine(&called)

	req := httptest.NewRequest(http.MethodPost, "/api/broadcast", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	w := httptest.NewRecorder()

	e.ServeHTTP(w, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
