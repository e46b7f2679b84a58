package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"

	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"

	SessionRedisKeyPrefix = "session:"
	JWTClaimSessionID     = "session_id"
	BearerTokenPrefix     = "Bearer "
)

// Page routes rendered by the HTML controllers.
const (
	PathRoot      = "/"
	PathLogin     = "/login"
	PathSignup    = "/signup"
	PathLogout    = "/logout"
	PathDashboard = "/dashboard"
	PathProfile   = "/profile"
	PathStats     = "/stats"
	PathStatic    = "/static"
	PathHealthz   = "/healthz"
	PathMetrics   = "/metrics"
)

const (
	TemplateLogin     = "login.html"
	TemplateSignup    = "signup.html"
	TemplateDashboard = "dashboard.html"
	TemplateProfile   = "profile.html"
	TemplateStats     = "stats.html"
)

// Dependencies reported by the health check.
const (
	HealthDependencySQLite = "sqlite"
	HealthDependencyRedis  = "redis"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "January 2006"
)
