package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// AppConfig is the process configuration read from the environment.
type AppConfig struct {
	Port        string
	MongoURI    string
	MongoDB     string
	PostgresURI string
	RedisAddr   string
	JWTSecret   string
	JWTExpiry   time.Duration
	CacheTTL    time.Duration
	CORSOrigins []string
}

func LoadApp() (AppConfig, error) {
	cfg := AppConfig{
		Port:        getenv("PORT", "8080"),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDB:     getenv("MONGO_DB", "devconnect"),
		PostgresURI: os.Getenv("POSTGRES_URI"),
		RedisAddr:   redisAddr(),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "*")),
	}

	var err error
	if cfg.JWTExpiry, err = duration("JWT_EXPIRES_IN", 1000*time.Hour); err != nil {
		return AppConfig{}, err
	}
	if cfg.CacheTTL, err = duration("CACHE_TTL", 60*time.Second); err != nil {
		return AppConfig{}, err
	}

	if cfg.JWTSecret == "" {
		return AppConfig{}, errors.New("JWT_SECRET environment variable is not set")
	}
	if cfg.MongoURI == "" {
		return AppConfig{}, errors.New("MONGO_URI environment variable is not set")
	}
	if cfg.PostgresURI == "" {
		return AppConfig{}, errors.New("POSTGRES_URI environment variable is not set")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// redisAddr accepts any of the names hosting providers tend to inject.
func redisAddr() string {
	for _, key := range []string{"REDIS_ADDR", "REDIS_URI", "REDIS_URL"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}
