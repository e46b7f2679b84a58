package stats

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestStatsUsecase_TodayUsesConfiguredTimezone(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.March, 5, 23, 30, 0, 0, time.UTC))

	utc := NewStatsUsecase(clock, time.UTC, zap.NewNop())
	jakarta := NewStatsUsecase(clock, time.FixedZone("WIB", 7*60*60), zap.NewNop())

	assert.Equal(t, date(2024, time.March, 5), utc.Today())
	assert.Equal(t, date(2024, time.March, 6), jakarta.Today())
}

func TestStatsUsecase_FollowsClock(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC))
	usecase := NewStatsUsecase(clock, time.UTC, zap.NewNop())

	assert.Equal(t, BuildMonthSummary(date(2024, time.March, 5)), usecase.GetMonthSummary(ctx))

	clock.Advance(5 * 24 * time.Hour)

	week := usecase.GetWeekSeries(ctx)
	assert.Equal(t, BuildWeekSeries(date(2024, time.March, 10)), week)
	assert.Equal(t, 78, week.Average)
	assert.Equal(t, week, usecase.GetWeekSeries(ctx))
}

func TestStatsUsecase_GetStatsReadsClockOnce(t *testing.T) {
	ctx := context.Background()
	// one minute before midnight at the end of a month
	clock := clockwork.NewFakeClockAt(time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC))
	usecase := NewStatsUsecase(clock, time.UTC, zap.NewNop())

	stats := usecase.GetStats(ctx)

	assert.Equal(t, date(2024, time.March, 31), stats.Today)
	assert.Equal(t, BuildWeekSeries(stats.Today), stats.Week)
	assert.Equal(t, BuildMonthSummary(stats.Today), stats.Month)
	assert.Equal(t, time.March, stats.Month.Month)
	assert.Equal(t, stats.Today, stats.Week.Entries[len(stats.Week.Entries)-1].Date)

	clock.Advance(2 * time.Minute)

	next := usecase.GetStats(ctx)
	assert.Equal(t, date(2024, time.April, 1), next.Today)
	assert.Equal(t, time.April, next.Month.Month)
	assert.Equal(t, next.Today, next.Week.Entries[len(next.Week.Entries)-1].Date)
}
