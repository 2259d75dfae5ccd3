package rdx

import (
	"log"
	"os"
	"time"

	"mandap/globals"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Initialize Redis connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: os.Getenv("REDIS_PASSWORD"), // Empty if no password
		DB:       0,                           // Default DB
	})
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

func RdxSetTTL(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}

// RdxDelPrefix removes every key matching the given pattern, e.g.
// "search:venues:*". Errors are logged, not returned; cache eviction
// must never fail a request.
func RdxDelPrefix(pattern string) {
	keys, err := Conn.Keys(globals.Ctx, pattern).Result()
	if err != nil {
		log.Println("Redis scan error:", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := Conn.Del(globals.Ctx, keys...).Err(); err != nil {
		log.Println("Redis delete error:", err)
	}
}
