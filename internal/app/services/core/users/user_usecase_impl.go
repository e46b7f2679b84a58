package users

import (
	"context"
	"emission-service/internal/app/contracts"
	"emission-service/internal/app/models"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/dto/requests"
	"emission-service/internal/pkg/dto/responses"
	"emission-service/internal/pkg/exceptions"
	"emission-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	Log            *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		Log:            logger,
	}
}

// GetProfile reads the vehicle fields from the user table. A session whose user row
// is gone gets a profile with blank vehicle fields.
func (uc *userUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.Profile, error) {
	user, err := uc.UserRepository.FindByUsername(ctx, session.Username)
	if err != nil {
		return nil, err
	}

	profile := &responses.Profile{Username: session.Username}
	if user != nil {
		profile.VehicleNumber = user.Vehicle.VehicleNumber
		profile.VehicleModel = user.Vehicle.VehicleModel
		profile.AirFuelRatio = user.Vehicle.AirFuelRatio
	}
	return profile, nil
}

// ReplaceVehicle overwrites all three vehicle fields with the submitted values.
func (uc *userUsecase) ReplaceVehicle(ctx context.Context, session *models.Session, request *requests.UpdateVehicle) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Warn("userUsecase.ReplaceVehicle vehicle fields missing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUsernameKey, session.Username),
		)
		return nil, exceptions.ErrVehicleInfoRequired(err)
	}

	vehicle := models.VehicleInfo{
		VehicleNumber: request.VehicleNumber,
		VehicleModel:  request.VehicleModel,
		AirFuelRatio:  request.AirFuelRatio,
	}
	return uc.saveVehicle(ctx, session, vehicle)
}

// PatchVehicle keeps every stored field the request leaves blank.
func (uc *userUsecase) PatchVehicle(ctx context.Context, session *models.Session, request *requests.PatchVehicle) (*models.Session, error) {
	user, err := uc.UserRepository.FindByUsername(ctx, session.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrSQLiteNoRowsAffected(session.Username)
	}

	vehicle := models.MergeVehicleInfo(user.Vehicle, models.PartialVehicleInfo{
		VehicleNumber: request.VehicleNumber,
		VehicleModel:  request.VehicleModel,
		AirFuelRatio:  request.AirFuelRatio,
	})
	return uc.saveVehicle(ctx, session, vehicle)
}

func (uc *userUsecase) saveVehicle(ctx context.Context, session *models.Session, vehicle models.VehicleInfo) (*models.Session, error) {
	requestID := utils.GetRequestID(ctx)

	err := uc.UserRepository.UpdateVehicle(ctx, session.Username, vehicle)
	if err != nil {
		return nil, err
	}

	updated := *session
	updated.Vehicle = vehicle
	err = uc.SessionService.UpdateIdentity(ctx, &updated)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.saveVehicle succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, session.Username),
	)
	return &updated, nil
}
