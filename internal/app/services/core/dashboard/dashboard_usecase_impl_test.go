package dashboard

import (
	"context"
	"emission-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPollutionLevel(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{0, LevelSafe},
		{49, LevelSafe},
		{50, LevelModerate},
		{68, LevelModerate},
		{74, LevelModerate},
		{75, LevelHighEmission},
		{100, LevelHighEmission},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PollutionLevel(tt.value), "value %d", tt.value)
	}
}

func TestDashboardUsecase_GetDashboard(t *testing.T) {
	session := &models.Session{
		Username: "alice",
		Vehicle:  models.VehicleInfo{VehicleNumber: "B 1", VehicleModel: "Jazz"},
	}

	got := NewDashboardUsecase(68, zap.NewNop()).GetDashboard(context.Background(), session)

	assert.Equal(t, models.Dashboard{
		Pollution:      68,
		PollutionLevel: LevelModerate,
		Username:       "alice",
		Vehicle:        session.Vehicle,
	}, got)
}
