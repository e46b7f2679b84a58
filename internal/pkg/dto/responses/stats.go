package responses

type WeekSeries struct {
	Dates   []string `json:"dates"`
	Values  []int    `json:"values"`
	Labels  []string `json:"labels"`
	Average int      `json:"average"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type MonthBucket struct {
	StartDay int        `json:"start_day"`
	EndDay   int        `json:"end_day"`
	Average  int        `json:"average"`
	Range    *DateRange `json:"range"`
}

type MonthBuckets struct {
	Month          string        `json:"month"`
	Buckets        []MonthBucket `json:"buckets"`
	BucketAverages []int         `json:"bucket_averages"`
	BucketRanges   []*DateRange  `json:"bucket_ranges"`
	MonthAverage   int           `json:"month_average"`
}

type Stats struct {
	Today string       `json:"today"`
	Week  WeekSeries   `json:"week"`
	Month MonthBuckets `json:"month"`
}

type Dashboard struct {
	Pollution      int     `json:"pollution"`
	PollutionLevel string  `json:"pollution_level"`
	Profile        Profile `json:"profile"`
}
