package auth

import (
	"context"
	"crypto/subtle"
	"emission-service/internal/app/contracts"
	"emission-service/internal/app/models"
	"emission-service/internal/app/observability"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/dto/requests"
	"emission-service/internal/pkg/dto/responses"
	"emission-service/internal/pkg/exceptions"
	"emission-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const (
	operationSignup = "signup"
	operationLogin  = "login"
	operationLogout = "logout"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	Metrics        *observability.Metrics
	Log            *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	metrics *observability.Metrics,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		Metrics:        metrics,
		Log:            logger,
	}
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.Signup, error) {
	result, err := uc.signup(ctx, request)
	uc.Metrics.ObserveAuth(operationSignup, err)
	if err == nil {
		uc.Metrics.ObserveVehicleUpdate(operationSignup)
	}
	return result, err
}

func (uc *authUsecase) signup(ctx context.Context, request *requests.Signup) (*responses.Signup, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Signup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Warn("authUsecase.Signup invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if field, ok := utils.FirstInvalidField(err); ok && isVehicleField(field) {
			return nil, exceptions.ErrVehicleInfoRequired(err)
		}
		return nil, exceptions.ErrInputValidation(err)
	}

	existingUser, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		uc.Log.Warn("authUsecase.Signup username already exists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUsernameKey, request.Username),
		)
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	user := &models.User{
		Username: request.Username,
		Password: request.Password,
		Vehicle: models.VehicleInfo{
			VehicleNumber: request.VehicleNumber,
			VehicleModel:  request.VehicleModel,
			AirFuelRatio:  request.AirFuelRatio,
		},
	}

	// the unique constraint still guards a concurrent signup that passed the check above
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Signup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)
	return &responses.Signup{
		UserID:   userID,
		Username: user.Username,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	result, err := uc.login(ctx, request)
	uc.Metrics.ObserveAuth(operationLogin, err)
	return result, err
}

func (uc *authUsecase) login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInvalidCredentials(err)
	}

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !passwordMatches(user.Password, request.Password) {
		uc.Log.Warn("authUsecase.Login invalid credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUsernameKey, request.Username),
		)
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	vehicle := user.Vehicle
	submitted := models.PartialVehicleInfo{
		VehicleNumber: request.VehicleNumber,
		VehicleModel:  request.VehicleModel,
		AirFuelRatio:  request.AirFuelRatio,
	}
	if !submitted.IsEmpty() {
		vehicle = models.MergeVehicleInfo(user.Vehicle, submitted)
		err = uc.UserRepository.UpdateVehicle(ctx, user.Username, vehicle)
		if err != nil {
			return nil, err
		}
		uc.Metrics.ObserveVehicleUpdate(operationLogin)
		uc.Log.Info("authUsecase.Login vehicle fields updated",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUsernameKey, user.Username),
		)
	}

	session, token, err := uc.SessionService.SetIdentity(ctx, user.Username, vehicle)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return &responses.Login{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Profile: responses.Profile{
			Username:      user.Username,
			VehicleNumber: vehicle.VehicleNumber,
			VehicleModel:  vehicle.VehicleModel,
			AirFuelRatio:  vehicle.AirFuelRatio,
		},
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	err := uc.SessionService.ClearIdentity(ctx, session.SessionID)
	uc.Metrics.ObserveAuth(operationLogout, err)
	if err != nil {
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func isVehicleField(field string) bool {
	return field == "vehicle_number" || field == "vehicle_model"
}

func passwordMatches(stored, submitted string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}
