package contracts

import (
	"context"
	"emission-service/internal/app/models"
	"emission-service/internal/pkg/dto/requests"
	"emission-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Signup(ctx context.Context, request *requests.Signup) (*responses.Signup, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
}
