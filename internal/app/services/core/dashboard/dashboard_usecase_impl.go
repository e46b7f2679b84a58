package dashboard

import (
	"context"
	"emission-service/internal/app/contracts"
	"emission-service/internal/app/models"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const (
	LevelSafe         = "Safe"
	LevelModerate     = "Moderate"
	LevelHighEmission = "High Emission"

	safeUpperBound     = 50
	moderateUpperBound = 75
)

type dashboardUsecase struct {
	PollutionValue int
	Log            *zap.Logger
}

// NewDashboardUsecase serves a fixed pollution reading; there is no sensor
// behind the dashboard.
func NewDashboardUsecase(pollutionValue int, logger *zap.Logger) contracts.DashboardUsecase {
	return &dashboardUsecase{
		PollutionValue: pollutionValue,
		Log:            logger,
	}
}

func (uc *dashboardUsecase) GetDashboard(ctx context.Context, session *models.Session) models.Dashboard {
	uc.Log.Debug("dashboardUsecase.GetDashboard called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUsernameKey, session.Username),
	)

	return models.Dashboard{
		Pollution:      uc.PollutionValue,
		PollutionLevel: PollutionLevel(uc.PollutionValue),
		Username:       session.Username,
		Vehicle:        session.Vehicle,
	}
}

func PollutionLevel(value int) string {
	switch {
	case value < safeUpperBound:
		return LevelSafe
	case value < moderateUpperBound:
		return LevelModerate
	default:
		return LevelHighEmission
	}
}
