package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Ping(ctx context.Context) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	// Get reports found=false when the key does not exist.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Delete(ctx context.Context, key string) error
}
