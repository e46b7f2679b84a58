package models

import "time"

// Session is the identity attached to a request once its token has been resolved.
type Session struct {
	SessionID string      `json:"session_id"`
	Username  string      `json:"username"`
	Vehicle   VehicleInfo `json:"vehicle"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}
