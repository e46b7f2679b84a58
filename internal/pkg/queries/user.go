package queries

const (
	FindUserByUsernameQuery = `
		SELECT id, username, password,
			COALESCE(vehicle_number, ''), COALESCE(vehicle_model, ''), COALESCE(air_fuel_ratio, '')
		FROM users
		WHERE username = ?
	`

	CreateUserQuery = `
		INSERT INTO users (username, password, vehicle_number, vehicle_model, air_fuel_ratio)
		VALUES (?, ?, ?, ?, ?)
	`

	UpdateUserVehicleQuery = `
		UPDATE users
		SET vehicle_number = ?, vehicle_model = ?, air_fuel_ratio = ?
		WHERE username = ?
	`
)
