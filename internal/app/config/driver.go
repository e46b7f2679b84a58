package config

type (
	DriverConfig struct {
		SQLite SQLite
		Redis  Redis
		Logger Logger
	}
	SQLite struct {
		Path        string
		BusyTimeout int
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
