package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// ErrMissingJWTSecret is returned when JWT_SECRET is not set. Tokens signed
// with a baked-in default would be forgeable, so startup refuses instead.
var ErrMissingJWTSecret = errors.New("JWT_SECRET environment variable is required")

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	AllowedOrigins []string
	Env            string
	SwaggerHost    string
}

// Load builds Config from environment with sensible defaults. The JWT
// signing secret has no default and its absence is a startup error.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8000"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/ideadrop?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      secret,
		AllowedOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		Env:            getEnv("APP_ENV", "development"),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}, nil
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
