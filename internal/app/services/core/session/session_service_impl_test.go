package session

import (
	"context"
	"emission-service/internal/app/config"
	"emission-service/internal/app/models"
	"emission-service/internal/pkg/exceptions"
	"emission-service/internal/pkg/utils"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSessionService(clock clockwork.Clock) *sessionService {
	internalConfig := &config.InternalConfig{
		App: config.App{SessionExpiredTimeInHours: 2},
		JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 2},
	}
	return NewSessionService(NewSessionMemoryStore(clock), clock, internalConfig, zap.NewNop()).(*sessionService)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

func TestSessionService_IdentityLifecycle(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC))
	svc := newTestSessionService(clock)
	vehicle := models.VehicleInfo{VehicleNumber: "B 1", VehicleModel: "Jazz"}

	session, token, err := svc.SetIdentity(ctx, "alice", vehicle)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, clock.Now().Add(2*time.Hour), session.ExpiresAt)

	got, err := svc.GetIdentity(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, got.SessionID)
	assert.Equal(t, vehicle, got.Vehicle)

	got.Vehicle.AirFuelRatio = "14.7"
	require.NoError(t, svc.UpdateIdentity(ctx, got))

	updated, err := svc.GetIdentity(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "14.7", updated.Vehicle.AirFuelRatio)

	require.NoError(t, svc.ClearIdentity(ctx, session.SessionID))
	_, err = svc.GetIdentity(ctx, token)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestSessionService_GetIdentityRejects(t *testing.T) {
	ctx := context.Background()
	svc := newTestSessionService(clockwork.NewFakeClock())

	t.Run("Missing token", func(t *testing.T) {
		_, err := svc.GetIdentity(ctx, "")
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := svc.GetIdentity(ctx, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("abc", "other-secret", 1)
		require.NoError(t, err)

		_, err = svc.GetIdentity(ctx, token)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("Valid token for unknown session", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("unknown", "test-secret", 1)
		require.NoError(t, err)

		_, err = svc.GetIdentity(ctx, token)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})
}

func TestSessionService_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC))
	svc := newTestSessionService(clock)

	session, token, err := svc.SetIdentity(ctx, "alice", models.VehicleInfo{})
	require.NoError(t, err)

	clock.Advance(3 * time.Hour)

	_, err = svc.GetIdentity(ctx, token)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, svc.UpdateIdentity(ctx, session)))
}
