package config

import (
	"context"
	"database/sql"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	SQLite         *sql.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	err := b.SQLite.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing SQLite")

	// Sync on a console sink returns EINVAL on some platforms; it is not worth failing shutdown over.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
