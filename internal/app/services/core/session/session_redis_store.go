package session

import (
	"context"
	"emission-service/internal/app/contracts"
	"emission-service/internal/app/models"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/exceptions"
	"emission-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionRedisStore struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewSessionRedisStore(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.SessionStore {
	return &sessionRedisStore{
		RedisRepository: redisRepository,
		Log:             logger,
	}
}

func sessionKey(sessionID string) string {
	return constvars.SessionRedisKeyPrefix + sessionID
}

func (s *sessionRedisStore) Set(ctx context.Context, session *models.Session, ttl time.Duration) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Debug("sessionRedisStore.Set called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	return s.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
}

func (s *sessionRedisStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)
	s.Log.Debug("sessionRedisStore.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	data, found, err := s.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(data), session)
	if err != nil {
		s.Log.Error("sessionRedisStore.Get error unmarshaling session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	return session, nil
}

func (s *sessionRedisStore) Delete(ctx context.Context, sessionID string) error {
	s.Log.Debug("sessionRedisStore.Delete called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	return s.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
