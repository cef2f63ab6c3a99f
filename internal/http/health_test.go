package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mrlokans/wordseed/internal/database"
)

func setupHealthTestDB(t *testing.T) *database.Database {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "health.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

type failingStore struct {
	pingErr  error
	countErr error
}

func (s failingStore) Ping() error { return s.pingErr }

func (s failingStore) Counts() (database.RowCounts, error) {
	return database.RowCounts{}, s.countErr
}

func getHealth(t *testing.T, router *gin.Engine) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func TestHealthController_Status(t *testing.T) {
	t.Run("reports an empty store", func(t *testing.T) {
		db := setupHealthTestDB(t)

		router := NewRouter(RouterConfig{Store: db, Version: "1.0.0"})
		w, response := getHealth(t, router)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Equal(t, "empty", response.Checks["seed"])
		assert.NotEmpty(t, response.Time)
	})

	t.Run("reports seeded counts", func(t *testing.T) {
		db := setupHealthTestDB(t)
		_, err := db.EnsureSchemaAndSeed()
		require.NoError(t, err)

		router := NewRouter(RouterConfig{Store: db, Version: "1.0.0"})
		w, response := getHealth(t, router)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "present", response.Checks["seed"])
		require.NotNil(t, response.Counts)
		assert.Equal(t, int64(3), response.Counts.Words)
		assert.Equal(t, int64(3), response.Counts.WordCategories)
	})

	t.Run("healthy without a configured store", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		router := NewRouter(RouterConfig{Version: "1.0.0"})
		w, response := getHealth(t, router)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "not configured", response.Checks["database"])
		assert.Nil(t, response.Counts)
	})

	t.Run("unhealthy when the database is closed", func(t *testing.T) {
		db := setupHealthTestDB(t)
		require.NoError(t, db.Close())

		router := NewRouter(RouterConfig{Store: db})
		w, response := getHealth(t, router)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Checks["database"], "error:")
	})

	t.Run("unhealthy when counting fails", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		router := NewRouter(RouterConfig{Store: failingStore{countErr: errors.New("no such table: users")}})
		w, response := getHealth(t, router)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.Equal(t, "error: no such table: users", response.Checks["seed"])
	})
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	router := NewRouter(RouterConfig{Logger: zap.New(core)})
	getHealth(t, router)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "HTTP request", entry.Message)
	assert.Equal(t, "/health", entry.ContextMap()["path"])
	assert.Equal(t, int64(http.StatusOK), entry.ContextMap()["status"])
}
