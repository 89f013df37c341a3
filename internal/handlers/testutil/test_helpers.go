package testutil

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oakfieldhq/oakfield/internal/api"
	"github.com/oakfieldhq/oakfield/internal/app"
	"github.com/oakfieldhq/oakfield/internal/cache"
	sharedtestutil "github.com/oakfieldhq/oakfield/internal/database/testutil"
)

// Env encapsulates a fully-wired API instance backed by an in-memory
// database and an in-memory cache store for handler tests.
type Env struct {
	T      *testing.T
	DB     *gorm.DB
	Store  *cache.MemoryStore
	Router *gin.Engine
}

// NewEnv provisions a fresh handler test environment with migrations and
// sample listings applied.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db := sharedtestutil.MustOpenTestDB(t, sharedtestutil.WithSeedData())
	store := cache.NewMemoryStore()

	cfg := &app.Config{
		Cache: app.CacheConfig{TTLSeconds: 3600},
	}

	router, err := api.NewRouter(db, store, cfg)
	require.NoError(t, err)

	return &Env{
		T:      t,
		DB:     db,
		Store:  store,
		Router: router,
	}
}

// Do performs a request against the wired router and returns the recorder.
func (e *Env) Do(method, path string) *httptest.ResponseRecorder {
	e.T.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	e.Router.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON unmarshals a response body into out, failing the test on error.
func (e *Env) DecodeJSON(rec *httptest.ResponseRecorder, out any) {
	e.T.Helper()
	require.NoError(e.T, json.Unmarshal(rec.Body.Bytes(), out))
}

// MustStatus asserts the recorded status code.
func (e *Env) MustStatus(rec *httptest.ResponseRecorder, want int) {
	e.T.Helper()
	require.Equal(e.T, want, rec.Code, "unexpected status, body: %s", rec.Body.String())
}
