package users

import (
	"context"
	"emission-service/internal/app/config"
	"emission-service/internal/app/contracts"
	"emission-service/internal/app/models"
	"emission-service/internal/app/services/core/session"
	"emission-service/internal/pkg/dto/requests"
	"net/http"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type userUsecaseFixture struct {
	repo     contracts.UserRepository
	sessions contracts.SessionService
	usecase  contracts.UserUsecase
	session  *models.Session
	token    string
}

func newUserUsecaseFixture(t *testing.T) *userUsecaseFixture {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC))
	internalConfig := &config.InternalConfig{
		App: config.App{SessionExpiredTimeInHours: 1},
		JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 1},
	}

	repo := NewUserSQLiteRepository(newTestDB(t), logger)
	sessions := session.NewSessionService(session.NewSessionMemoryStore(clock), clock, internalConfig, logger)

	vehicle := models.VehicleInfo{VehicleNumber: "B 1234 XYZ", VehicleModel: "Avanza", AirFuelRatio: "14.7"}
	_, err := repo.CreateUser(ctx, &models.User{Username: "alice", Password: "secret", Vehicle: vehicle})
	require.NoError(t, err)

	s, token, err := sessions.SetIdentity(ctx, "alice", vehicle)
	require.NoError(t, err)

	return &userUsecaseFixture{
		repo:     repo,
		sessions: sessions,
		usecase:  NewUserUsecase(repo, sessions, logger),
		session:  s,
		token:    token,
	}
}

func TestUserUsecase_GetProfile(t *testing.T) {
	ctx := context.Background()
	f := newUserUsecaseFixture(t)

	profile, err := f.usecase.GetProfile(ctx, f.session)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "B 1234 XYZ", profile.VehicleNumber)
	assert.Equal(t, "Avanza", profile.VehicleModel)
	assert.Equal(t, "14.7", profile.AirFuelRatio)

	orphan := &models.Session{SessionID: "x", Username: "ghost"}
	profile, err = f.usecase.GetProfile(ctx, orphan)
	require.NoError(t, err)
	assert.Equal(t, "ghost", profile.Username)
	assert.Empty(t, profile.VehicleNumber)
	assert.Empty(t, profile.VehicleModel)
}

func TestUserUsecase_ReplaceVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces every field and refreshes the session", func(t *testing.T) {
		f := newUserUsecaseFixture(t)

		updated, err := f.usecase.ReplaceVehicle(ctx, f.session, &requests.UpdateVehicle{
			VehicleNumber: "D 9 AB",
			VehicleModel:  "Jazz",
		})
		require.NoError(t, err)
		want := models.VehicleInfo{VehicleNumber: "D 9 AB", VehicleModel: "Jazz"}
		assert.Equal(t, want, updated.Vehicle)

		user, err := f.repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, want, user.Vehicle)

		cached, err := f.sessions.GetIdentity(ctx, f.token)
		require.NoError(t, err)
		assert.Equal(t, want, cached.Vehicle)
	})

	t.Run("Number and model are required", func(t *testing.T) {
		f := newUserUsecaseFixture(t)

		_, err := f.usecase.ReplaceVehicle(ctx, f.session, &requests.UpdateVehicle{VehicleNumber: "D 9 AB"})
		requireStatus(t, err, http.StatusBadRequest)
		assert.Contains(t, err.Error(), "vehicle")

		user, err := f.repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "Avanza", user.Vehicle.VehicleModel)
	})
}

func TestUserUsecase_PatchVehicle(t *testing.T) {
	ctx := context.Background()
	f := newUserUsecaseFixture(t)

	updated, err := f.usecase.PatchVehicle(ctx, f.session, &requests.PatchVehicle{VehicleModel: "  Innova  "})
	require.NoError(t, err)
	want := models.VehicleInfo{VehicleNumber: "B 1234 XYZ", VehicleModel: "Innova", AirFuelRatio: "14.7"}
	assert.Equal(t, want, updated.Vehicle)

	user, err := f.repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, want, user.Vehicle)

	_, err = f.usecase.PatchVehicle(ctx, &models.Session{Username: "ghost"}, &requests.PatchVehicle{VehicleModel: "X"})
	requireStatus(t, err, http.StatusNotFound)
}
