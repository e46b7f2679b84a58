package models

import "time"

type WeekEntry struct {
	Date  time.Time
	Label string
	Value int
}

type WeekSeries struct {
	Entries []WeekEntry
	Average int
}

func (w WeekSeries) Values() []int {
	values := make([]int, len(w.Entries))
	for i, entry := range w.Entries {
		values[i] = entry.Value
	}
	return values
}

func (w WeekSeries) Labels() []string {
	labels := make([]string, len(w.Entries))
	for i, entry := range w.Entries {
		labels[i] = entry.Label
	}
	return labels
}

type DateRange struct {
	Start time.Time
	End   time.Time
}

// MonthBucket is one of the four day ranges of a month. Range is the calendar week the
// bucket's first day falls in, reported unclamped; it is nil when that day does not exist.
type MonthBucket struct {
	StartDay int
	EndDay   int
	Average  int
	Range    *DateRange
}

type MonthSummary struct {
	Year         int
	Month        time.Month
	Buckets      []MonthBucket
	MonthAverage int
}

func (m MonthSummary) BucketAverages() []int {
	averages := make([]int, len(m.Buckets))
	for i, bucket := range m.Buckets {
		averages[i] = bucket.Average
	}
	return averages
}

func (m MonthSummary) BucketRanges() []*DateRange {
	ranges := make([]*DateRange, len(m.Buckets))
	for i, bucket := range m.Buckets {
		ranges[i] = bucket.Range
	}
	return ranges
}

// Stats is the week series and month summary built for one calendar day.
type Stats struct {
	Today time.Time
	Week  WeekSeries
	Month MonthSummary
}

type Dashboard struct {
	Pollution      int
	PollutionLevel string
	Username       string
	Vehicle        VehicleInfo
}
