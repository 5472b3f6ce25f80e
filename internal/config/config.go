package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	MongoURI string
	MongoDB  string

	RedisAddr     string
	RedisPassword string

	// SessionTTL is the absolute session lifetime. There is no sliding
	// window; expired sessions are deleted on the next validation.
	SessionTTL time.Duration

	CookieSecure bool

	CORSOrigins []string
}

func Load() Config {

	// Missing .env is fine, real env vars still apply.
	_ = godotenv.Load()

	cfg := Config{

		AppPort: getEnv("APP_PORT", "3000"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "auctioneer"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionTTL: getDuration("SESSION_TTL", 24*time.Hour),

		CookieSecure: getBool("COOKIE_SECURE", false),

		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),
	}

	return cfg

}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
