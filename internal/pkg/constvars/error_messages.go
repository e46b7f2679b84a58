package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"excludes": "must not contain %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"excludes": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something wrong with application"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientInvalidCredentials            = "Invalid credentials"
	ErrClientUserAlreadyExists             = "User already exists"
	ErrClientVehicleInfoRequired           = "Vehicle number and model are required"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientServiceUnavailable            = "service is unavailable, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotParseForm        = "cannot parse form"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevInvalidCredentials     = "username or password does not match"
	ErrDevUsernameAlreadyExists  = "username already exists in users table"
	ErrDevVehicleInfoRequired    = "vehicle_number and vehicle_model must not be blank"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevTooManyRequests        = "rate limit exceeded for client ip"
	ErrDevPanicRecovered         = "panic recovered in handler"
	ErrDevTemplateRender         = "failed to render template %s"
	ErrDevHealthCheck            = "health check failed for %s"
	ErrDevAuthTokenMissing       = "session token missing from cookie and authorization header"
	ErrDevAuthTokenInvalid       = "session token is invalid"
	ErrDevAuthSigningMethod      = "unexpected signing method on session token"
	ErrDevAuthGenerateToken      = "failed to sign session token"
	ErrDevSessionNotFound        = "session not found or expired"
	ErrDevSessionStoreGet        = "failed to read session from store"
	ErrDevSessionStoreSet        = "failed to write session to store"
	ErrDevSessionStoreDelete     = "failed to delete session from store"
	ErrDevSQLiteFindData         = "failed to find data in sqlite"
	ErrDevSQLiteInsertData       = "failed to insert data into sqlite"
	ErrDevSQLiteUpdateData       = "failed to update data in sqlite"
	ErrDevSQLiteNoRowsAffected   = "no rows affected when updating user %s"
)
