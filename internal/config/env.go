package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds process configuration. Everything comes from environment
// variables, optionally seeded from a .env file.
type Env struct {
	AppAddr string
	GinMode string

	// Storage selects the backend: "memory" (seeded maps) or "mysql".
	Storage string
	DBDSN   string

	CORSOrigins []string

	RedisAddr    string
	CacheTTLSecs int
	JWTSecret    string
}

// LoadEnv reads configuration, loading .env first when present.
func LoadEnv() Env {
	_ = godotenv.Load()

	env := Env{
		AppAddr:      getenv("APP_ADDR", ":8080"),
		GinMode:      strings.TrimSpace(os.Getenv("GIN_MODE")),
		Storage:      getenv("STORAGE", "memory"),
		DBDSN:        strings.TrimSpace(os.Getenv("DB_DSN")),
		RedisAddr:    strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		JWTSecret:    getenv("JWT_SECRET", "dev-secret-change-me"),
		CacheTTLSecs: 30,
	}

	if v := strings.TrimSpace(os.Getenv("CACHE_TTL_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			env.CacheTTLSecs = n
		}
	}

	origins := getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			env.CORSOrigins = append(env.CORSOrigins, o)
		}
	}

	return env
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
