package contracts

import (
	"context"
	"emission-service/internal/app/models"
	"time"
)

type SessionStore interface {
	Set(ctx context.Context, session *models.Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

type SessionService interface {
	SetIdentity(ctx context.Context, username string, vehicle models.VehicleInfo) (session *models.Session, token string, err error)
	GetIdentity(ctx context.Context, token string) (*models.Session, error)
	UpdateIdentity(ctx context.Context, session *models.Session) error
	ClearIdentity(ctx context.Context, sessionID string) error
}
