package database

import (
	"database/sql"
	"emission-service/internal/app/config"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens the users database file. SQLite serialises writers, so the
// pool is capped at a single connection.
func OpenSQLite(path string, busyTimeoutInMilliseconds int) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(%d)",
		path,
		busyTimeoutInMilliseconds)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func NewSQLiteDB(driverConfig *config.DriverConfig) *sql.DB {
	db, err := OpenSQLite(driverConfig.SQLite.Path, driverConfig.SQLite.BusyTimeout)
	if err != nil {
		log.Fatalf("Failed to connect to sqlite database %s: %s", driverConfig.SQLite.Path, err.Error())
	}

	log.Println("Successfully connected to sqlite database")

	return db
}
