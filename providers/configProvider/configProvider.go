package configprovider

import (
	"ecotrack/providers"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type EnvConfigProvider struct {
	dbUser         string
	dbPassword     string
	dbHost         string
	dbPort         string
	dbName         string
	dbSSLMode      string
	serverPort     string
	migrationsPath string
	jwtSecret      string
	refreshSecret  string
	accessTTL      time.Duration
	refreshTTL     time.Duration
	redisAddr      string
	firebaseCreds  string
	allowedOrigins []string
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}

	e.dbUser = os.Getenv("DB_USER")
	e.dbPassword = os.Getenv("DB_PASSWORD")
	e.dbHost = os.Getenv("DB_HOST")
	e.dbPort = getEnv("DB_PORT", "5432")
	e.dbName = os.Getenv("DB_NAME")
	e.dbSSLMode = getEnv("DB_SSLMODE", "disable")
	e.serverPort = getEnv("SERVER_PORT", "8080")
	e.migrationsPath = getEnv("MIGRATIONS_PATH", "file://database/migrations")
	e.jwtSecret = os.Getenv("SECRET_KEY")
	e.refreshSecret = os.Getenv("REFRESH_TOKEN")
	e.redisAddr = os.Getenv("REDIS_ADDR")
	e.firebaseCreds = os.Getenv("FIREBASE_CREDENTIALS_FILE")
	e.allowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	var err error
	if e.accessTTL, err = time.ParseDuration(getEnv("ACCESS_TOKEN_TTL", "15m")); err != nil {
		return errors.Wrap(err, "invalid ACCESS_TOKEN_TTL")
	}
	if e.refreshTTL, err = time.ParseDuration(getEnv("REFRESH_TOKEN_TTL", "168h")); err != nil {
		return errors.Wrap(err, "invalid REFRESH_TOKEN_TTL")
	}

	if e.jwtSecret == "" || e.refreshSecret == "" {
		return errors.New("SECRET_KEY and REFRESH_TOKEN must be set")
	}
	return nil
}

func (e *EnvConfigProvider) GetServerPort() string {
	return e.serverPort
}

func (e *EnvConfigProvider) GetDatabaseString() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=%s",
		e.dbUser, e.dbPassword, e.dbHost, e.dbPort, e.dbName, e.dbSSLMode)
}

func (e *EnvConfigProvider) GetMigrationsPath() string {
	return e.migrationsPath
}

func (e *EnvConfigProvider) GetJWTSecret() string {
	return e.jwtSecret
}

func (e *EnvConfigProvider) GetRefreshSecret() string {
	return e.refreshSecret
}

func (e *EnvConfigProvider) GetAccessTokenTTL() time.Duration {
	return e.accessTTL
}

func (e *EnvConfigProvider) GetRefreshTokenTTL() time.Duration {
	return e.refreshTTL
}

func (e *EnvConfigProvider) GetRedisAddr() string {
	return e.redisAddr
}

func (e *EnvConfigProvider) GetFirebaseCredentialsFile() string {
	return e.firebaseCreds
}

func (e *EnvConfigProvider) GetAllowedOrigins() []string {
	return e.allowedOrigins
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
