package middlewares

import (
	"emission-service/internal/app/config"
	"emission-service/internal/app/contracts"
	"emission-service/internal/app/observability"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	Metrics        *observability.Metrics
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	sessionService contracts.SessionService,
	metrics *observability.Metrics,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		Metrics:        metrics,
		InternalConfig: internalConfig,
	}
}
