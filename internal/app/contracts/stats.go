package contracts

import (
	"context"
	"emission-service/internal/app/models"
	"time"
)

type StatsUsecase interface {
	Today() time.Time
	GetWeekSeries(ctx context.Context) models.WeekSeries
	GetMonthSummary(ctx context.Context) models.MonthSummary
	GetStats(ctx context.Context) models.Stats
}

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, session *models.Session) models.Dashboard
}
