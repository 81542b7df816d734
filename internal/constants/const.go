package constants

import "time"

const (
	DefaultRunAddr        = ":8080"
	DefaultMigrationsPath = "migrations"
	DefaultLogLevel       = "info"
	DefaultJWTSecret      = "supersecretkey"
	DefaultTokenTTL       = 24 * time.Hour
)

const (
	ClaimUserID  = "user_id"
	ClaimExpires = "exp"
)
