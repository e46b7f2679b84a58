package users

import (
	"context"
	"database/sql"
	"emission-service/internal/app/contracts"
	"emission-service/internal/app/models"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/exceptions"
	"emission-service/internal/pkg/queries"
	"emission-service/internal/pkg/utils"
	"errors"

	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type userSQLiteRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewUserSQLiteRepository(db *sql.DB, logger *zap.Logger) contracts.UserRepository {
	return &userSQLiteRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *userSQLiteRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("userSQLiteRepository.FindByUsername called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, username),
	)

	var user models.User
	err := r.DB.QueryRowContext(ctx, queries.FindUserByUsernameQuery, username).Scan(
		&user.ID, &user.Username, &user.Password,
		&user.Vehicle.VehicleNumber, &user.Vehicle.VehicleModel, &user.Vehicle.AirFuelRatio,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("userSQLiteRepository.FindByUsername no rows found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUsernameKey, username),
			)
			return nil, nil
		}
		r.Log.Error("userSQLiteRepository.FindByUsername error scanning row",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSQLiteFindData(err)
	}

	r.Log.Info("userSQLiteRepository.FindByUsername succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	return &user, nil
}

func (r *userSQLiteRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("userSQLiteRepository.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, user.Username),
	)

	result, err := r.DB.ExecContext(ctx, queries.CreateUserQuery,
		user.Username, user.Password,
		user.Vehicle.VehicleNumber, user.Vehicle.VehicleModel, user.Vehicle.AirFuelRatio,
	)
	if err != nil {
		if isUniqueViolation(err) {
			r.Log.Warn("userSQLiteRepository.CreateUser username already taken",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUsernameKey, user.Username),
			)
			return 0, exceptions.ErrUsernameAlreadyExist(err)
		}
		r.Log.Error("userSQLiteRepository.CreateUser error inserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrSQLiteInsertData(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, exceptions.ErrSQLiteInsertData(err)
	}

	r.Log.Info("userSQLiteRepository.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, id),
	)
	return id, nil
}

func (r *userSQLiteRepository) UpdateVehicle(ctx context.Context, username string, vehicle models.VehicleInfo) error {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("userSQLiteRepository.UpdateVehicle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, username),
	)

	result, err := r.DB.ExecContext(ctx, queries.UpdateUserVehicleQuery,
		vehicle.VehicleNumber, vehicle.VehicleModel, vehicle.AirFuelRatio, username,
	)
	if err != nil {
		r.Log.Error("userSQLiteRepository.UpdateVehicle error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUsernameKey, username),
			zap.Error(err),
		)
		return exceptions.ErrSQLiteUpdateData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrSQLiteUpdateData(err)
	}
	if affected == 0 {
		return exceptions.ErrSQLiteNoRowsAffected(username)
	}

	r.Log.Info("userSQLiteRepository.UpdateVehicle succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, username),
	)
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
