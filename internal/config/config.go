package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ShiftEnforcement controls what happens when a clinician has shifts on a
// date but none covers the requested window. The historical behavior is
// flexible: such a booking is still allowed behind the conflict checks.
type ShiftEnforcement string

const (
	ShiftFlexible ShiftEnforcement = "flexible"
	ShiftStrict   ShiftEnforcement = "strict"
)

type Config struct {
	DatabaseURL string
	HTTPAddr    string

	JWTSecret string
	TokenTTL  time.Duration

	ShiftEnforcement ShiftEnforcement

	// Working-day defaults for availability queries.
	DayStart    string
	DayEnd      string
	SlotMinutes int
}

func Load() (Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:      getEnv("DATABASE_URL", "clinicops.db"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		TokenTTL:         getEnvDuration("TOKEN_TTL", 24*time.Hour),
		ShiftEnforcement: ShiftEnforcement(getEnv("SHIFT_ENFORCEMENT", string(ShiftFlexible))),
		DayStart:         getEnv("DAY_START", "08:00"),
		DayEnd:           getEnv("DAY_END", "18:00"),
		SlotMinutes:      getEnvInt("SLOT_MINUTES", 30),
	}

	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is empty")
	}
	switch cfg.ShiftEnforcement {
	case ShiftFlexible, ShiftStrict:
	default:
		return cfg, fmt.Errorf("SHIFT_ENFORCEMENT must be %q or %q", ShiftFlexible, ShiftStrict)
	}
	if cfg.SlotMinutes <= 0 {
		return cfg, fmt.Errorf("SLOT_MINUTES must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
