// Package stats produces the demo pollution statistics shown on the stats page.
//
// Every function here is a pure function of the date it is given; nothing reads the
// system clock. Dates are handled as civil dates normalised to midnight UTC so that
// AddDate never lands on a DST gap.
package stats

import (
	"math"
	"time"

	"emission-service/internal/app/models"
	"emission-service/internal/pkg/constvars"
)

const (
	demoValueBase    = 40
	demoValueModulus = 61

	weekLength      = 7
	weekLabelLayout = "Mon 02"
)

// monthBucketDays are the nominal day ranges of a month. The last range is closed by
// the real month length.
var monthBucketDays = [][2]int{{1, 7}, {8, 14}, {15, 21}, {22, 0}}

// DemoValue returns the placeholder reading for a calendar date, always in [40, 100].
func DemoValue(date time.Time) int {
	year, month, day := date.Date()
	n := (day*3 + int(month)*2 + year) % demoValueModulus
	if n < 0 {
		n += demoValueModulus
	}
	return demoValueBase + n
}

// BuildWeekSeries returns the seven days ending at today, oldest first.
func BuildWeekSeries(today time.Time) models.WeekSeries {
	today = CivilDate(today)

	entries := make([]models.WeekEntry, 0, weekLength)
	values := make([]int, 0, weekLength)
	for i := weekLength - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		value := DemoValue(date)
		entries = append(entries, models.WeekEntry{
			Date:  date,
			Label: date.Format(weekLabelLayout),
			Value: value,
		})
		values = append(values, value)
	}

	return models.WeekSeries{
		Entries: entries,
		Average: roundedMean(values),
	}
}

// BuildMonthSummary aggregates today's month into four buckets. Each bucket averages the
// Monday to Sunday week holding its first day, never reading past today, so a bucket
// can pull days from the neighbouring month or year. Buckets whose week has not started
// yet average to 0 and are left out of the month average.
func BuildMonthSummary(today time.Time) models.MonthSummary {
	today = CivilDate(today)
	year, month, _ := today.Date()
	lastDay := DaysInMonth(year, month)

	buckets := make([]models.MonthBucket, 0, len(monthBucketDays))
	for _, days := range monthBucketDays {
		startDay, endDay := days[0], days[1]
		if endDay == 0 {
			endDay = lastDay
		}
		buckets = append(buckets, buildMonthBucket(today, startDay, endDay, lastDay))
	}

	summary := models.MonthSummary{
		Year:    year,
		Month:   month,
		Buckets: buckets,
	}
	summary.MonthAverage = averagePositive(summary.BucketAverages())
	return summary
}

func buildMonthBucket(today time.Time, startDay, endDay, lastDay int) models.MonthBucket {
	bucket := models.MonthBucket{StartDay: startDay, EndDay: endDay}
	if startDay < 1 || startDay > lastDay {
		return bucket
	}

	anchor := time.Date(today.Year(), today.Month(), startDay, 0, 0, 0, 0, time.UTC)
	weekStart := StartOfWeek(anchor)
	weekEnd := weekStart.AddDate(0, 0, weekLength-1)
	bucket.Range = &models.DateRange{Start: weekStart, End: weekEnd}

	clampedEnd := weekEnd
	if today.Before(clampedEnd) {
		clampedEnd = today
	}
	if clampedEnd.Before(weekStart) {
		return bucket
	}

	var values []int
	for day := weekStart; !day.After(clampedEnd); day = day.AddDate(0, 0, 1) {
		values = append(values, DemoValue(day))
	}
	bucket.Average = roundedMean(values)
	return bucket
}

// CivilDate drops the clock part of t, keeping the calendar date as seen in t's location.
func CivilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Monday of the week holding date.
func StartOfWeek(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % weekLength
	return date.AddDate(0, 0, -offset)
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func FormatDate(date time.Time) string {
	return date.Format(constvars.DateLayout)
}

// roundedMean rounds half to even, so 70.5 becomes 70.
func roundedMean(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, value := range values {
		sum += value
	}
	return int(math.RoundToEven(float64(sum) / float64(len(values))))
}

func averagePositive(values []int) int {
	positive := make([]int, 0, len(values))
	for _, value := range values {
		if value > 0 {
			positive = append(positive, value)
		}
	}
	return roundedMean(positive)
}
