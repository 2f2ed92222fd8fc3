package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/bizdocs_dashboard/internal/middleware"
	"github.com/SscSPs/bizdocs_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPosthogMiddleware_NoClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := utils.InitializePosthogClient("", "", slog.Default())
	assert.False(t, client.IsInitialized())

	router := gin.New()
	router.Use(middleware.PosthogMiddleware(client))
	router.GET("/api/v1/dashboard/revenue", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/revenue", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// no-op on an uninitialized wrapper
	client.Enqueue("user-1", "event", nil)
	client.Close()
}
