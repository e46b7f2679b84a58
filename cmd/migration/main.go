package main

import (
	"database/sql"
	"emission-service/internal/app/config"
	"emission-service/internal/app/drivers/database"
	"emission-service/internal/app/drivers/logger"
	"emission-service/internal/app/migration"
	"emission-service/internal/pkg/utils"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagDatabasePath string
	flagSteps        int

	driverConfig *config.DriverConfig
	log          *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "migration",
	Short: "Manage the schema of the users database",
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE:  runUp,
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the newest migrations",
	RunE:  runDown,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and whether they are applied",
	RunE:  runStatus,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDatabasePath, "db", "", "SQLite database file (defaults to SQLITE_PATH)")
	downCmd.Flags().IntVar(&flagSteps, "steps", 1, "Number of migrations to roll back, 0 rolls back all")

	rootCmd.AddCommand(upCmd, downCmd, statusCmd)
}

func main() {
	driverConfig = config.NewDriverConfig()
	log = logger.NewLogrusLogger(driverConfig, config.NewInternalConfig())
	for _, key := range utils.InvalidEnvKeys() {
		log.WithField("key", key).Warn("Invalid environment value, default used")
	}

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("Migration failed")
		os.Exit(1)
	}
}

func openDatabase() (*sql.DB, error) {
	path := flagDatabasePath
	if path == "" {
		path = driverConfig.SQLite.Path
	}

	db, err := database.OpenSQLite(path, driverConfig.SQLite.BusyTimeout)
	if err != nil {
		return nil, err
	}
	log.WithField("path", path).Debug("Opened SQLite database")
	return db, nil
}

func runUp(_ *cobra.Command, _ []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := migration.Up(db)
	if err != nil {
		return err
	}

	log.WithField("count", applied).Info("Applied migrations")
	return nil
}

func runDown(_ *cobra.Command, _ []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	rolledBack, err := migration.Down(db, flagSteps)
	if err != nil {
		return err
	}

	log.WithField("count", rolledBack).Info("Rolled back migrations")
	return nil
}

func runStatus(_ *cobra.Command, _ []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	statuses, err := migration.List(db)
	if err != nil {
		return err
	}

	for _, status := range statuses {
		entry := log.WithField("id", status.ID)
		if status.Applied {
			entry.WithField("applied_at", status.AppliedAt).Info("applied")
			continue
		}
		entry.Warn("pending")
	}
	return nil
}
