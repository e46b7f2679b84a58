package utils

import (
	"emission-service/internal/app/models"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/dto/responses"
	"time"
)

func ConvertWeekSeriesToResponse(series models.WeekSeries) responses.WeekSeries {
	dates := make([]string, len(series.Entries))
	for i, entry := range series.Entries {
		dates[i] = entry.Date.Format(constvars.DateLayout)
	}

	return responses.WeekSeries{
		Dates:   dates,
		Values:  series.Values(),
		Labels:  series.Labels(),
		Average: series.Average,
	}
}

func ConvertMonthSummaryToResponse(summary models.MonthSummary) responses.MonthBuckets {
	buckets := make([]responses.MonthBucket, len(summary.Buckets))
	ranges := make([]*responses.DateRange, len(summary.Buckets))
	for i, bucket := range summary.Buckets {
		ranges[i] = convertDateRange(bucket.Range)
		buckets[i] = responses.MonthBucket{
			StartDay: bucket.StartDay,
			EndDay:   bucket.EndDay,
			Average:  bucket.Average,
			Range:    ranges[i],
		}
	}

	return responses.MonthBuckets{
		Month:          time.Date(summary.Year, summary.Month, 1, 0, 0, 0, 0, time.UTC).Format(constvars.MonthLayout),
		Buckets:        buckets,
		BucketAverages: summary.BucketAverages(),
		BucketRanges:   ranges,
		MonthAverage:   summary.MonthAverage,
	}
}

func ConvertStatsToResponse(stats models.Stats) responses.Stats {
	return responses.Stats{
		Today: stats.Today.Format(constvars.DateLayout),
		Week:  ConvertWeekSeriesToResponse(stats.Week),
		Month: ConvertMonthSummaryToResponse(stats.Month),
	}
}

func ConvertDashboardToResponse(dashboard models.Dashboard) responses.Dashboard {
	return responses.Dashboard{
		Pollution:      dashboard.Pollution,
		PollutionLevel: dashboard.PollutionLevel,
		Profile:        ConvertVehicleToProfile(dashboard.Username, dashboard.Vehicle),
	}
}

func ConvertVehicleToProfile(username string, vehicle models.VehicleInfo) responses.Profile {
	return responses.Profile{
		Username:      username,
		VehicleNumber: vehicle.VehicleNumber,
		VehicleModel:  vehicle.VehicleModel,
		AirFuelRatio:  vehicle.AirFuelRatio,
	}
}

func convertDateRange(dateRange *models.DateRange) *responses.DateRange {
	if dateRange == nil {
		return nil
	}
	return &responses.DateRange{
		Start: dateRange.Start.Format(constvars.DateLayout),
		End:   dateRange.End.Format(constvars.DateLayout),
	}
}
