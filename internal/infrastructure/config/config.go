package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the process reads from the environment. Loaded
// once at startup and passed down explicitly; nothing else reads os.Getenv
// for business settings.
type Config struct {
	Port        int
	Environment string
	CORSOrigins string

	// Warehouse (PostgreSQL).
	DatabaseURL       string
	QueryTimeout      time.Duration
	LargeQueryTimeout time.Duration

	// Traffic-light thresholds, as fractions (0.95 => 95%).
	GreenThreshold  float64
	YellowThreshold float64

	// Default lookback window for historical endpoints, in days.
	HistoryDays int

	// Identity verification (Firebase-style accounts:lookup endpoint).
	IdentityBaseURL string
	IdentityAPIKey  string

	// Push delivery (FCM HTTP endpoint).
	PushEndpoint  string
	PushServerKey string

	// DynamoDB profile sink.
	ProfilesTable string
}

func Load() Config {
	return Config{
		Port:              getenvInt("PORT", 8080),
		Environment:       getenvDefault("ENVIRONMENT", "development"),
		CORSOrigins:       getenvDefault("CORS_ORIGINS", "*"),
		DatabaseURL:       getenvDefault("DATABASE_URL", "postgres://localhost:5432/app_clientes?sslmode=disable"),
		QueryTimeout:      getenvDuration("QUERY_TIMEOUT", 2*time.Minute),
		LargeQueryTimeout: getenvDuration("LARGE_QUERY_TIMEOUT", 5*time.Minute),
		GreenThreshold:    getenvFloat("SEMAFORO_VERDE", 0.95),
		YellowThreshold:   getenvFloat("SEMAFORO_AMARILLO", 0.80),
		HistoryDays:       getenvInt("DIAS_HISTORICO_DEFAULT", 90),
		IdentityBaseURL:   getenvDefault("IDENTITY_BASE_URL", "https://identitytoolkit.googleapis.com"),
		IdentityAPIKey:    os.Getenv("IDENTITY_API_KEY"),
		PushEndpoint:      getenvDefault("PUSH_ENDPOINT", "https://fcm.googleapis.com/fcm/send"),
		PushServerKey:     os.Getenv("PUSH_SERVER_KEY"),
		ProfilesTable:     getenvDefault("PROFILES_TABLE", "user_profiles"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
