package session

import (
	"context"
	"emission-service/internal/app/config"
	"emission-service/internal/app/contracts"
	"emission-service/internal/app/models"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/exceptions"
	"emission-service/internal/pkg/utils"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type sessionService struct {
	Store          contracts.SessionStore
	Clock          clockwork.Clock
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewSessionService(
	store contracts.SessionStore,
	clock clockwork.Clock,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SessionService {
	return &sessionService{
		Store:          store,
		Clock:          clock,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (svc *sessionService) SetIdentity(ctx context.Context, username string, vehicle models.VehicleInfo) (*models.Session, string, error) {
	requestID := utils.GetRequestID(ctx)
	svc.Log.Info("sessionService.SetIdentity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, username),
	)

	now := svc.Clock.Now()
	ttl := svc.InternalConfig.SessionTTL()
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		Username:  username,
		Vehicle:   vehicle,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	err := svc.Store.Set(ctx, session, ttl)
	if err != nil {
		svc.Log.Error("sessionService.SetIdentity error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", exceptions.ErrSessionStoreSet(err)
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, svc.InternalConfig.JWT.Secret, svc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		svc.Log.Error("sessionService.SetIdentity error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", exceptions.ErrTokenGenerate(err)
	}

	svc.Log.Info("sessionService.SetIdentity succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return session, token, nil
}

func (svc *sessionService) GetIdentity(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	sessionID, err := utils.ParseSessionJWT(token, svc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, exceptions.ErrTokenInvalid(err)
	}

	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		svc.Log.Error("sessionService.GetIdentity error reading session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSessionStoreGet(err)
	}
	if session == nil {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	return session, nil
}

// UpdateIdentity rewrites the stored session keeping its original expiry.
func (svc *sessionService) UpdateIdentity(ctx context.Context, session *models.Session) error {
	ttl := session.ExpiresAt.Sub(svc.Clock.Now())
	if ttl <= 0 {
		return exceptions.ErrSessionNotFound(nil)
	}

	err := svc.Store.Set(ctx, session, ttl)
	if err != nil {
		svc.Log.Error("sessionService.UpdateIdentity error storing session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
		return exceptions.ErrSessionStoreSet(err)
	}
	return nil
}

func (svc *sessionService) ClearIdentity(ctx context.Context, sessionID string) error {
	err := svc.Store.Delete(ctx, sessionID)
	if err != nil {
		svc.Log.Error("sessionService.ClearIdentity error deleting session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return exceptions.ErrSessionStoreDelete(err)
	}

	svc.Log.Info("sessionService.ClearIdentity succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}
