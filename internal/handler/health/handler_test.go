package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/clinic-api/internal/handler/health"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func setupRouter(db health.Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	health.NewHandler(db).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestLivenessIgnoresDatabase(t *testing.T) {
	engine := setupRouter(pingerFunc(func(context.Context) error {
		return errors.New("connection refused")
	}))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", decode(t, w)["status"])
}

func TestReadinessUpWhenDatabaseReachable(t *testing.T) {
	engine := setupRouter(pingerFunc(func(context.Context) error { return nil }))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", decode(t, w)["status"])
}

func TestReadinessDownWhenPingFails(t *testing.T) {
	engine := setupRouter(pingerFunc(func(context.Context) error {
		return errors.New("connection refused")
	}))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "database unreachable", resp["message"])
}
