package auth

import (
	"context"
	"emission-service/internal/app/config"
	"emission-service/internal/app/contracts"
	"emission-service/internal/app/drivers/database"
	"emission-service/internal/app/migration"
	"emission-service/internal/app/models"
	"emission-service/internal/app/observability"
	"emission-service/internal/app/services/core/session"
	"emission-service/internal/app/services/core/users"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/dto/requests"
	"emission-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	repo     contracts.UserRepository
	sessions contracts.SessionService
	metrics  *observability.Metrics
	usecase  contracts.AuthUsecase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	logger := zap.NewNop()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "users.db"), 1000)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = migration.Up(db)
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC))
	internalConfig := &config.InternalConfig{
		App: config.App{SessionExpiredTimeInHours: 1},
		JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 1},
	}

	repo := users.NewUserSQLiteRepository(db, logger)
	sessions := session.NewSessionService(session.NewSessionMemoryStore(clock), clock, internalConfig, logger)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	return &authFixture{
		repo:     repo,
		sessions: sessions,
		metrics:  metrics,
		usecase:  NewAuthUsecase(repo, sessions, metrics, logger),
	}
}

func (f *authFixture) signupAlice(t *testing.T) {
	t.Helper()
	_, err := f.usecase.Signup(context.Background(), &requests.Signup{
		Username:      "alice",
		Password:      "secret",
		VehicleNumber: "B 1234 XYZ",
		VehicleModel:  "Avanza",
		AirFuelRatio:  "14.7",
	})
	require.NoError(t, err)
}

func requireClientError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	assert.Equal(t, status, customErr.StatusCode)
	assert.Equal(t, message, customErr.ClientMessage)
}

func TestAuthUsecase_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates the user", func(t *testing.T) {
		f := newAuthFixture(t)

		result, err := f.usecase.Signup(ctx, &requests.Signup{
			Username:      "alice",
			Password:      "secret",
			VehicleNumber: "B 1234 XYZ",
			VehicleModel:  "Avanza",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", result.Username)
		assert.Positive(t, result.UserID)

		user, err := f.repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, models.VehicleInfo{VehicleNumber: "B 1234 XYZ", VehicleModel: "Avanza"}, user.Vehicle)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AuthAttempts.WithLabelValues("signup", "success")))
	})

	t.Run("Vehicle fields are required", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.usecase.Signup(ctx, &requests.Signup{Username: "bob", Password: "pw", VehicleNumber: "B 1"})
		requireClientError(t, err, http.StatusBadRequest, constvars.ErrClientVehicleInfoRequired)

		user, err := f.repo.FindByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Username is required", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.usecase.Signup(ctx, &requests.Signup{Password: "pw", VehicleNumber: "B 1", VehicleModel: "Jazz"})
		requireClientError(t, err, http.StatusBadRequest, "username is required")
	})

	t.Run("Duplicate username", func(t *testing.T) {
		f := newAuthFixture(t)
		f.signupAlice(t)

		_, err := f.usecase.Signup(ctx, &requests.Signup{
			Username:      "alice",
			Password:      "other",
			VehicleNumber: "D 1",
			VehicleModel:  "Jazz",
		})
		requireClientError(t, err, http.StatusConflict, constvars.ErrClientUserAlreadyExists)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AuthAttempts.WithLabelValues("signup", "409")))
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns a token for the stored profile", func(t *testing.T) {
		f := newAuthFixture(t)
		f.signupAlice(t)

		result, err := f.usecase.Login(ctx, &requests.Login{Username: "alice", Password: "secret"})
		require.NoError(t, err)
		require.NotEmpty(t, result.Token)
		assert.Equal(t, "Avanza", result.Profile.VehicleModel)

		s, err := f.sessions.GetIdentity(ctx, result.Token)
		require.NoError(t, err)
		assert.Equal(t, "alice", s.Username)
		assert.Equal(t, "14.7", s.Vehicle.AirFuelRatio)
		assert.Equal(t, s.ExpiresAt, result.ExpiresAt)
	})

	t.Run("Wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.signupAlice(t)

		_, err := f.usecase.Login(ctx, &requests.Login{Username: "alice", Password: "nope"})
		requireClientError(t, err, http.StatusUnauthorized, constvars.ErrClientInvalidCredentials)
	})

	t.Run("Unknown user", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.usecase.Login(ctx, &requests.Login{Username: "ghost", Password: "secret"})
		requireClientError(t, err, http.StatusUnauthorized, constvars.ErrClientInvalidCredentials)
	})

	t.Run("Blank credentials", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.usecase.Login(ctx, &requests.Login{})
		requireClientError(t, err, http.StatusUnauthorized, constvars.ErrClientInvalidCredentials)
	})

	t.Run("Non-blank vehicle fields are merged and stored", func(t *testing.T) {
		f := newAuthFixture(t)
		f.signupAlice(t)

		result, err := f.usecase.Login(ctx, &requests.Login{
			Username:      "alice",
			Password:      "secret",
			VehicleNumber: "   ",
			VehicleModel:  " Innova ",
		})
		require.NoError(t, err)

		want := models.VehicleInfo{VehicleNumber: "B 1234 XYZ", VehicleModel: "Innova", AirFuelRatio: "14.7"}
		user, err := f.repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, want, user.Vehicle)

		s, err := f.sessions.GetIdentity(ctx, result.Token)
		require.NoError(t, err)
		assert.Equal(t, want, s.Vehicle)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.VehicleUpdates.WithLabelValues("login")))
	})

	t.Run("Blank vehicle fields leave the row untouched", func(t *testing.T) {
		f := newAuthFixture(t)
		f.signupAlice(t)

		_, err := f.usecase.Login(ctx, &requests.Login{Username: "alice", Password: "secret", AirFuelRatio: " "})
		require.NoError(t, err)
		assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.VehicleUpdates.WithLabelValues("login")))
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	f.signupAlice(t)

	result, err := f.usecase.Login(ctx, &requests.Login{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	s, err := f.sessions.GetIdentity(ctx, result.Token)
	require.NoError(t, err)

	require.NoError(t, f.usecase.Logout(ctx, s))

	_, err = f.sessions.GetIdentity(ctx, result.Token)
	requireClientError(t, err, http.StatusUnauthorized, constvars.ErrClientNotLoggedIn)
}
