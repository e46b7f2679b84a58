package responses

type Profile struct {
	Username      string `json:"username"`
	VehicleNumber string `json:"vehicle_number"`
	VehicleModel  string `json:"vehicle_model"`
	AirFuelRatio  string `json:"air_fuel_ratio"`
}
