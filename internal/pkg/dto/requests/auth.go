package requests

type Signup struct {
	Username      string `json:"username" validate:"required,max=64"`
	Password      string `json:"password" validate:"required"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	VehicleModel  string `json:"vehicle_model" validate:"required"`
	AirFuelRatio  string `json:"air_fuel_ratio"`
}

// Login carries optional vehicle fields; any non-blank one is saved on successful login.
type Login struct {
	Username      string `json:"username" validate:"required"`
	Password      string `json:"password" validate:"required"`
	VehicleNumber string `json:"vehicle_number"`
	VehicleModel  string `json:"vehicle_model"`
	AirFuelRatio  string `json:"air_fuel_ratio"`
}
