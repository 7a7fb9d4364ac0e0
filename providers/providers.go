package providers

import (
	"context"
	"net/http"
	"time"

	"ecotrack/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type AuthMiddlewareService interface {
	JWTAuthMiddleware() func(http.Handler) http.Handler
	RequireRole(roles ...models.Role) func(http.Handler) http.Handler
	GetActorFromContext(r *http.Request) (models.Actor, error)
	GenerateSessionTokens(userID, sessionID string) (string, string, error)
}

type ConfigProvider interface {
	LoadEnv() error
	GetDatabaseString() string
	GetServerPort() string
	GetMigrationsPath() string
	GetJWTSecret() string
	GetRefreshSecret() string
	GetAccessTokenTTL() time.Duration
	GetRefreshTokenTTL() time.Duration
	GetRedisAddr() string
	GetFirebaseCredentialsFile() string
	GetAllowedOrigins() []string
}

type DBProvider interface {
	DB() *sqlx.DB
	Ping(ctx context.Context) error
	Close() error
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}

type RedisProvider interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	SAdd(ctx context.Context, key string, expiration time.Duration, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}

type FirebaseProvider interface {
	VerifyIDToken(ctx context.Context, idToken string) (models.Identity, error)
}
