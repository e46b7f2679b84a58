package contracts

import (
	"context"
	"emission-service/internal/app/models"
	"emission-service/internal/pkg/dto/requests"
	"emission-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	// FindByUsername returns nil without error when no user has that name.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	UpdateVehicle(ctx context.Context, username string, vehicle models.VehicleInfo) error
}

type UserUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*responses.Profile, error)
	ReplaceVehicle(ctx context.Context, session *models.Session, request *requests.UpdateVehicle) (*models.Session, error)
	PatchVehicle(ctx context.Context, session *models.Session, request *requests.PatchVehicle) (*models.Session, error)
}
