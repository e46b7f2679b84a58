package models

import "strings"

type VehicleInfo struct {
	VehicleNumber string `json:"vehicle_number"`
	VehicleModel  string `json:"vehicle_model"`
	AirFuelRatio  string `json:"air_fuel_ratio"`
}

// PartialVehicleInfo holds vehicle fields as submitted by a form, blank meaning not given.
type PartialVehicleInfo struct {
	VehicleNumber string
	VehicleModel  string
	AirFuelRatio  string
}

func (p PartialVehicleInfo) IsEmpty() bool {
	return strings.TrimSpace(p.VehicleNumber) == "" &&
		strings.TrimSpace(p.VehicleModel) == "" &&
		strings.TrimSpace(p.AirFuelRatio) == ""
}

// MergeVehicleInfo keeps every existing field the submission leaves blank and takes the
// trimmed submitted value for the others.
func MergeVehicleInfo(existing VehicleInfo, submitted PartialVehicleInfo) VehicleInfo {
	return VehicleInfo{
		VehicleNumber: pickNonBlank(submitted.VehicleNumber, existing.VehicleNumber),
		VehicleModel:  pickNonBlank(submitted.VehicleModel, existing.VehicleModel),
		AirFuelRatio:  pickNonBlank(submitted.AirFuelRatio, existing.AirFuelRatio),
	}
}

func pickNonBlank(submitted, fallback string) string {
	if trimmed := strings.TrimSpace(submitted); trimmed != "" {
		return trimmed
	}
	return fallback
}
