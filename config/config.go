package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Database settings
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSslMode string
	DbTz      string

	// Server settings
	Env     string
	Port    string
	AppUrl  string
	AppName string

	// Security settings
	PasetoSymmetricKey string
	CorsOrigins        []string
	AccessTokenTTL     int // minutes

	// Manager credentials (single administrative account)
	ManagerUsername string
	ManagerPassword string

	// YubiCloud OTP verification
	YubicoClientID string
	YubicoServers  []string
}

func LoadConfig() *Config {
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "*"
	}

	accessTokenTTL, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_TTL"))
	if err != nil || accessTokenTTL <= 0 {
		accessTokenTTL = 12 * 60 // default: one shift
	}

	yubicoServers := os.Getenv("YUBICO_SERVERS")
	if yubicoServers == "" {
		yubicoServers = strings.Join([]string{
			"https://api.yubico.com/wsapi/2.0/verify",
			"https://api2.yubico.com/wsapi/2.0/verify",
			"https://api3.yubico.com/wsapi/2.0/verify",
			"https://api4.yubico.com/wsapi/2.0/verify",
			"https://api5.yubico.com/wsapi/2.0/verify",
		}, ",")
	}

	return &Config{
		// Database settings
		DbHost:    getEnv("DB_HOST", "localhost"),
		DbPort:    getEnv("DB_PORT", "5432"),
		DbUser:    getEnv("DB_USER", "postgres"),
		DbPass:    getEnv("DB_PASSWORD", "password"),
		DbName:    getEnv("DB_NAME", "timetrack"),
		DbSslMode: getEnv("DB_SSLMODE", "disable"),
		DbTz:      getEnv("DB_TZ", "UTC"),

		// Server settings
		Env:     getEnv("ENV", "development"),
		Port:    getEnv("PORT", "8040"),
		AppUrl:  getEnv("APP_URL", "http://localhost:8040"),
		AppName: getEnv("APP_NAME", "TimeTrack"),

		// Security settings
		PasetoSymmetricKey: getEnv("PASETO_SYMMETRIC_KEY", "your-32-character-secret-key!!!!"), // Must be 32 chars
		CorsOrigins:        strings.Split(corsOrigins, ","),
		AccessTokenTTL:     accessTokenTTL,

		// Manager credentials
		ManagerUsername: getEnv("MANAGER_USERNAME", "manager"),
		ManagerPassword: getEnv("MANAGER_PASSWORD", "mgr123"),

		// YubiCloud settings
		YubicoClientID: getEnv("YUBICO_CLIENT_ID", "1"),
		YubicoServers:  strings.Split(yubicoServers, ","),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
