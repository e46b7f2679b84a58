package controllers

import (
	"context"
	"database/sql"
	"emission-service/internal/app/contracts"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/exceptions"
	"emission-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

type HealthController struct {
	Log             *zap.Logger
	DB              *sql.DB
	RedisRepository contracts.RedisRepository
}

// NewHealthController checks the database and, when sessions live in Redis,
// the Redis connection. redisRepository may be nil.
func NewHealthController(logger *zap.Logger, db *sql.DB, redisRepository contracts.RedisRepository) *HealthController {
	return &HealthController{
		Log:             logger,
		DB:              db,
		RedisRepository: redisRepository,
	}
}

func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string, 2)
	err := ctrl.DB.PingContext(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrHealthCheck(err, constvars.HealthDependencySQLite))
		return
	}
	checks[constvars.HealthDependencySQLite] = constvars.HealthStatusOK

	if ctrl.RedisRepository != nil {
		err = ctrl.RedisRepository.Ping(ctx)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		checks[constvars.HealthDependencyRedis] = constvars.HealthStatusOK
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccess, checks)
}
