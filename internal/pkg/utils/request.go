package utils

import (
	"emission-service/internal/pkg/dto/requests"
	"emission-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
)

func DecodeJSONBody(r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

func BuildSignupRequestFromForm(r *http.Request) (*requests.Signup, error) {
	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}
	return &requests.Signup{
		Username:      r.PostForm.Get("username"),
		Password:      r.PostForm.Get("password"),
		VehicleNumber: r.PostForm.Get("vehicle_number"),
		VehicleModel:  r.PostForm.Get("vehicle_model"),
		AirFuelRatio:  r.PostForm.Get("air_fuel_ratio"),
	}, nil
}

func BuildLoginRequestFromForm(r *http.Request) (*requests.Login, error) {
	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}
	return &requests.Login{
		Username:      r.PostForm.Get("username"),
		Password:      r.PostForm.Get("password"),
		VehicleNumber: r.PostForm.Get("vehicle_number"),
		VehicleModel:  r.PostForm.Get("vehicle_model"),
		AirFuelRatio:  r.PostForm.Get("air_fuel_ratio"),
	}, nil
}

func BuildUpdateVehicleRequestFromForm(r *http.Request) (*requests.UpdateVehicle, error) {
	if err := r.ParseForm(); err != nil {
		return nil, exceptions.ErrCannotParseForm(err)
	}
	return &requests.UpdateVehicle{
		VehicleNumber: r.PostForm.Get("vehicle_number"),
		VehicleModel:  r.PostForm.Get("vehicle_model"),
		AirFuelRatio:  r.PostForm.Get("air_fuel_ratio"),
	}, nil
}
