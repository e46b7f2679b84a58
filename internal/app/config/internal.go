package config

import "time"

type InternalConfig struct {
	App App    `mapstructure:"app"`
	JWT AppJWT `mapstructure:"jwt"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	SessionCookieName          string `mapstructure:"session_cookie_name"`
	SessionExpiredTimeInHours  int    `mapstructure:"session_expired_time_in_hours"`
	// SessionStore selects the session backend: "redis" or "memory".
	SessionStore string `mapstructure:"session_store"`
	// AutoMigrate applies pending schema migrations on startup.
	AutoMigrate             bool `mapstructure:"auto_migrate"`
	DashboardPollutionValue int  `mapstructure:"dashboard_pollution_value"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

// SessionTTL is how long a session and its cookie live.
func (c *InternalConfig) SessionTTL() time.Duration {
	return time.Duration(c.App.SessionExpiredTimeInHours) * time.Hour
}
