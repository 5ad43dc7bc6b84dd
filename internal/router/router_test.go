package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/staff-directory/internal/handler"
	"github.com/jwalitptl/staff-directory/internal/handler/handlertest"
	"github.com/jwalitptl/staff-directory/internal/handler/health"
	"github.com/jwalitptl/staff-directory/internal/handler/prometheus"
	"github.com/jwalitptl/staff-directory/internal/middleware"
	"github.com/jwalitptl/staff-directory/pkg/auth"
	"github.com/jwalitptl/staff-directory/pkg/logger"
	"github.com/jwalitptl/staff-directory/pkg/metrics"
)

type pingOK struct{}

func (pingOK) PingContext(context.Context) error { return nil }

type whoami struct{}

func (whoami) RegisterRoutes(r gin.IRouter) {
	r.GET("/whoami", func(c *gin.Context) {
		id, _ := handler.ActingEmployeeID(c)
		c.JSON(http.StatusOK, handler.NewSuccessResponse(id))
	})
}

func newTestRouter(tokens *auth.TokenService) *gin.Engine {
	r := NewRouter(RouterConfig{
		Mode:          gin.TestMode,
		CORSConfig:    middleware.DefaultCORSConfig(),
		MetricsPath:   "/metrics",
		Tokens:        tokens,
		Logger:        logger.NewNop(),
		Metrics:       prometheus.New(metrics.New("test")),
		Health:        health.NewHandler(pingOK{}),
		FeatureRoutes: []Handler{whoami{}},
	})
	r.Setup()
	return r.Engine()
}

func TestNoRouteEnvelope(t *testing.T) {
	engine := newTestRouter(nil)

	resp := handlertest.Do(t, engine, http.MethodGet, "/nope", nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Route not found", resp.Message)
}

func TestNoMethodEnvelope(t *testing.T) {
	engine := newTestRouter(nil)

	resp := handlertest.Do(t, engine, http.MethodDelete, "/whoami", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
	assert.Equal(t, "Method not allowed", resp.Message)
}

func TestHealthAndMetricsMounted(t *testing.T) {
	engine := newTestRouter(nil)

	resp := handlertest.Do(t, engine, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_http_requests_total")
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderXRequestID))
}

func TestFeatureRoutesReadActingToken(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	engine := newTestRouter(tokens)
	token, _, err := tokens.Issue(3, "Cy Ng")
	require.NoError(t, err)

	resp := handlertest.Do(t, engine, http.MethodGet, "/whoami", nil, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `3`, string(resp.Data))

	resp = handlertest.Do(t, engine, http.MethodGet, "/whoami", nil, "Authorization", "Bearer junk")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// health stays reachable with a bad token
	resp = handlertest.Do(t, engine, http.MethodGet, "/health", nil, "Authorization", "Bearer junk")
	assert.Equal(t, http.StatusOK, resp.Code)
}
