package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/oakfieldhq/oakfield/internal/app"
	"github.com/oakfieldhq/oakfield/internal/cache"
	"github.com/oakfieldhq/oakfield/internal/database/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestConfig() *app.Config {
	return &app.Config{
		Cache: app.CacheConfig{TTLSeconds: 3600},
		Monitoring: app.MonitoringConfig{
			Prometheus: app.PrometheusConfig{Enabled: true, Endpoint: "/metrics"},
		},
	}
}

func TestNewRouterValidatesDependencies(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	store := cache.NewMemoryStore()
	cfg := newTestConfig()

	_, err := NewRouter(nil, store, cfg)
	require.Error(t, err)

	_, err = NewRouter(db, nil, cfg)
	require.Error(t, err)

	_, err = NewRouter(db, store, nil)
	require.Error(t, err)

	router, err := NewRouter(db, store, cfg)
	require.NoError(t, err)
	require.NotNil(t, router)
}

func TestRouterServesHealth(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	router, err := NewRouter(db, cache.NewMemoryStore(), newTestConfig())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "ok")
}

func TestRouterExposesMetricsWhenEnabled(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	router, err := NewRouter(db, cache.NewMemoryStore(), newTestConfig())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterOmitsMetricsWhenDisabled(t *testing.T) {
	db := testutil.MustOpenTestDB(t, testutil.WithAutoMigrate())
	cfg := newTestConfig()
	cfg.Monitoring.Prometheus.Enabled = false

	router, err := NewRouter(db, cache.NewMemoryStore(), cfg)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
