package controllers

import (
	"context"
	"database/sql"
	"emission-service/internal/app/drivers/database"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func openHealthTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "health.db"), 1000)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

type healthBody struct {
	Success    bool              `json:"success"`
	StatusCode int               `json:"status_code"`
	Message    string            `json:"message"`
	DevMessage string            `json:"dev_message"`
	Data       map[string]string `json:"data"`
}

func callHealthz(t *testing.T, ctrl *HealthController) (int, healthBody) {
	t.Helper()
	rec := httptest.NewRecorder()
	ctrl.Healthz(rec, httptest.NewRequest(http.MethodGet, constvars.PathHealthz, nil))

	var body healthBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthController_Healthz(t *testing.T) {
	t.Setenv("APP_ENV", constvars.AppEnvDevelopment)

	t.Run("SQLite only", func(t *testing.T) {
		ctrl := NewHealthController(zap.NewNop(), openHealthTestDB(t), nil)

		code, body := callHealthz(t, ctrl)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, constvars.HealthCheckSuccess, body.Message)
		assert.Equal(t, map[string]string{"sqlite": "ok"}, body.Data)
	})

	t.Run("SQLite and Redis", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Ping", mock.Anything).Return(nil).Once()
		ctrl := NewHealthController(zap.NewNop(), openHealthTestDB(t), repo)

		code, body := callHealthz(t, ctrl)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, map[string]string{"sqlite": "ok", "redis": "ok"}, body.Data)
		repo.AssertExpectations(t)
	})

	t.Run("SQLite unavailable", func(t *testing.T) {
		db := openHealthTestDB(t)
		require.NoError(t, db.Close())
		ctrl := NewHealthController(zap.NewNop(), db, nil)

		code, body := callHealthz(t, ctrl)

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientServiceUnavailable, body.Message)
		assert.Contains(t, body.DevMessage, "health check failed for sqlite")
	})

	t.Run("Redis unavailable", func(t *testing.T) {
		repo := new(mockRedisRepository)
		repo.On("Ping", mock.Anything).
			Return(exceptions.ErrHealthCheck(errors.New("connection refused"), constvars.HealthDependencyRedis)).Once()
		ctrl := NewHealthController(zap.NewNop(), openHealthTestDB(t), repo)

		code, body := callHealthz(t, ctrl)

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, constvars.ErrClientServiceUnavailable, body.Message)
		assert.Contains(t, body.DevMessage, "health check failed for redis")
	})
}
