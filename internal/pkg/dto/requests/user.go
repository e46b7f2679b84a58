package requests

type UpdateVehicle struct {
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	VehicleModel  string `json:"vehicle_model" validate:"required"`
	AirFuelRatio  string `json:"air_fuel_ratio"`
}

type PatchVehicle struct {
	VehicleNumber string `json:"vehicle_number"`
	VehicleModel  string `json:"vehicle_model"`
	AirFuelRatio  string `json:"air_fuel_ratio"`
}
