package stats

import (
	"context"
	"emission-service/internal/app/contracts"
	"emission-service/internal/app/models"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/utils"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type statsUsecase struct {
	Clock    clockwork.Clock
	Location *time.Location
	Log      *zap.Logger
}

func NewStatsUsecase(clock clockwork.Clock, location *time.Location, logger *zap.Logger) contracts.StatsUsecase {
	if location == nil {
		location = time.Local
	}
	return &statsUsecase{
		Clock:    clock,
		Location: location,
		Log:      logger,
	}
}

// Today is the current calendar date in the configured timezone.
func (uc *statsUsecase) Today() time.Time {
	return CivilDate(uc.Clock.Now().In(uc.Location))
}

func (uc *statsUsecase) GetWeekSeries(ctx context.Context) models.WeekSeries {
	today := uc.Today()
	series := BuildWeekSeries(today)

	uc.Log.Debug("statsUsecase.GetWeekSeries built series",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingTodayKey, FormatDate(today)),
		zap.Int("average", series.Average),
	)
	return series
}

func (uc *statsUsecase) GetMonthSummary(ctx context.Context) models.MonthSummary {
	today := uc.Today()
	summary := BuildMonthSummary(today)

	uc.Log.Debug("statsUsecase.GetMonthSummary built buckets",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingTodayKey, FormatDate(today)),
		zap.Ints("bucket_averages", summary.BucketAverages()),
		zap.Int("month_average", summary.MonthAverage),
	)
	return summary
}

// GetStats reads the clock once so the week and the month always describe the same day.
func (uc *statsUsecase) GetStats(ctx context.Context) models.Stats {
	today := uc.Today()
	stats := models.Stats{
		Today: today,
		Week:  BuildWeekSeries(today),
		Month: BuildMonthSummary(today),
	}

	uc.Log.Debug("statsUsecase.GetStats built stats",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingTodayKey, FormatDate(today)),
		zap.Int("week_average", stats.Week.Average),
		zap.Int("month_average", stats.Month.MonthAverage),
	)
	return stats
}
