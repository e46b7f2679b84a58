package constvars

const (
	ResponseUnknown = "unknown"

	// User-related messages
	UserCreatedSuccess    = "user created successfully"
	VehicleUpdatedSuccess = "vehicle information updated successfully"
	ProfileGetSuccess     = "get profile successfully"

	// Auth messages
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	// Stats messages
	DashboardGetSuccess   = "get dashboard successfully"
	StatsGetSuccess       = "get stats successfully"
	WeekSeriesGetSuccess  = "get week series successfully"
	MonthBucketGetSuccess = "get month buckets successfully"

	// Operational messages
	HealthCheckSuccess = "service is healthy"
	HealthStatusOK     = "ok"
)
