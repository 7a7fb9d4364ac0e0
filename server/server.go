package server

import (
	"context"
	"ecotrack/providers"
	configprovider "ecotrack/providers/configProvider"
	"ecotrack/providers/databaseProvider"
	firebaseprovider "ecotrack/providers/firebaseProvider"
	"ecotrack/providers/loggerProvider"
	"ecotrack/providers/middlewareprovider"
	redisprovider "ecotrack/providers/redisProvider"
	accessservice "ecotrack/services/access"
	deviceservice "ecotrack/services/device"
	disposalservice "ecotrack/services/disposal"
	profileservice "ecotrack/services/profile"
	recyclingservice "ecotrack/services/recycling"
	roleservice "ecotrack/services/role"
	sessionservice "ecotrack/services/session"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type Server struct {
	Config     providers.ConfigProvider
	DB         providers.DBProvider
	Redis      providers.RedisProvider
	Logger     providers.ZapLoggerProvider
	Middleware providers.AuthMiddlewareService

	SessionHandler   *sessionservice.SessionHandler
	ProfileHandler   *profileservice.ProfileHandler
	RoleHandler      *roleservice.RoleHandler
	DeviceHandler    *deviceservice.DeviceHandler
	DisposalHandler  *disposalservice.DisposalHandler
	RecyclingHandler *recyclingservice.RecyclingHandler

	httpServer *http.Server
}

func ServerInit() *Server {
	logger := loggerProvider.NewLogProvider(true)
	logger.InitLogger()
	log := logger.GetLogger()

	cfg := configprovider.NewConfigProvider()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	db, err := databaseProvider.NewDBProvider(cfg.GetDatabaseString(), cfg.GetMigrationsPath(), log)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}

	firebase, err := firebaseprovider.NewFirebaseProvider(context.Background(), cfg.GetFirebaseCredentialsFile())
	if err != nil {
		log.Fatal("failed to initialize firebase", zap.Error(err))
	}

	// roles are cached per session; without redis each instance keeps its own
	var (
		redis     providers.RedisProvider
		roleCache roleservice.RoleCache
	)
	if addr := cfg.GetRedisAddr(); addr != "" {
		redis = redisprovider.NewRedisProvider(addr)
		if err := redis.Ping(context.Background()); err != nil {
			log.Fatal("failed to connect to redis", zap.String("addr", addr), zap.Error(err))
		}
		roleCache = roleservice.NewRedisCache(redis, cfg.GetRefreshTokenTTL())
		log.Info("role cache backed by redis", zap.String("addr", addr))
	} else {
		roleCache = roleservice.NewMemoryCache(cfg.GetRefreshTokenTTL())
		log.Warn("REDIS_ADDR not set, using in-process role cache")
	}

	gate := accessservice.NewGate()

	// repositories
	roleRepo := roleservice.NewRoleRepository(db.DB())
	profileRepo := profileservice.NewProfileRepository(db.DB())
	deviceRepo := deviceservice.NewDeviceRepository(db.DB())
	disposalRepo := disposalservice.NewDisposalRepository(db.DB())
	recyclingRepo := recyclingservice.NewRecyclingRepository(db.DB())

	// services
	roleService := roleservice.NewRoleService(roleRepo, roleCache, gate, logger)
	tokens := middlewareprovider.NewTokenIssuer(cfg.GetJWTSecret(), cfg.GetRefreshSecret(), cfg.GetAccessTokenTTL(), cfg.GetRefreshTokenTTL())
	middleware := middlewareprovider.NewAuthMiddlewareService(tokens, roleService, logger)

	profileService := profileservice.NewProfileService(profileRepo, gate, logger)
	sessionService := sessionservice.NewSessionService(firebase, profileService, roleService, middleware, logger)
	ledger := deviceservice.NewLedger(deviceRepo, logger)
	deviceService := deviceservice.NewDeviceService(deviceRepo, gate, db.DB(), logger)
	recyclingService := recyclingservice.NewRecyclingService(recyclingRepo, ledger, gate, db.DB(), logger)
	disposalService := disposalservice.NewDisposalService(disposalRepo, ledger, recyclingService, gate, db.DB(), logger)

	return &Server{
		Config:     cfg,
		DB:         db,
		Redis:      redis,
		Logger:     logger,
		Middleware: middleware,

		SessionHandler:   sessionservice.NewSessionHandler(sessionService, middleware),
		ProfileHandler:   profileservice.NewProfileHandler(profileService, middleware),
		RoleHandler:      roleservice.NewRoleHandler(roleService, middleware),
		DeviceHandler:    deviceservice.NewDeviceHandler(deviceService, middleware),
		DisposalHandler:  disposalservice.NewDisposalHandler(disposalService, middleware),
		RecyclingHandler: recyclingservice.NewRecyclingHandler(recyclingService, middleware),
	}
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	s.Logger.GetLogger().Info("server running", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.Logger.GetLogger().Fatal("server error", zap.Error(err))
	}
}

func (s *Server) Stop() {
	log := s.Logger.GetLogger()
	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error("error shutting down server", zap.Error(err))
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			log.Error("error closing redis", zap.Error(err))
		}
	}
	if err := s.DB.Close(); err != nil {
		log.Error("error closing DB", zap.Error(err))
	}

	log.Info("server shutdown complete")
	s.Logger.SyncLogger()
}
