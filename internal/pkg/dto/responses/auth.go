package responses

import "time"

type Signup struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type Login struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Profile   Profile   `json:"profile"`
}
