package models

type User struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Password string      `json:"-"`
	Vehicle  VehicleInfo `json:"vehicle"`
}
