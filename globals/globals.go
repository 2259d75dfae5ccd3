package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(getenv("JWT_SECRET", "your_secret_key"))

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const RequestIDKey ContextKey = "requestId"

var Ctx = context.Background()
