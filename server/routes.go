package server

import (
	"context"
	"ecotrack/models"
	"ecotrack/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(srv.Logger.GetLogger()))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   srv.Config.GetAllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Refresh_token"},
		ExposedHeaders:   []string{"Authorization", "Refresh_token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", srv.Health)

	r.Route("/api", func(api chi.Router) {
		//public
		api.Post("/session", srv.SessionHandler.Login)

		//protected
		api.Group(func(protected chi.Router) {
			protected.Use(srv.Middleware.JWTAuthMiddleware())

			protected.Post("/session/logout", srv.SessionHandler.Logout)

			protected.Get("/profile/me", srv.ProfileHandler.GetMyProfile)
			protected.Put("/profile/me", srv.ProfileHandler.UpdateMyProfile)

			protected.Route("/devices", func(devices chi.Router) {
				devices.Get("/", srv.DeviceHandler.ListDevices)
				devices.Post("/", srv.DeviceHandler.RegisterDevice)
				devices.Get("/summary", srv.DeviceHandler.StatusSummary)
				devices.Get("/{id}", srv.DeviceHandler.GetDevice)
				devices.Patch("/{id}", srv.DeviceHandler.UpdateDevice)
				devices.Delete("/{id}", srv.DeviceHandler.DeleteDevice)
			})

			protected.Route("/disposals", func(disposals chi.Router) {
				disposals.Get("/", srv.DisposalHandler.ListDisposals)
				disposals.Post("/", srv.DisposalHandler.CreateDisposal)
				disposals.Get("/{id}", srv.DisposalHandler.GetDisposal)
				disposals.Post("/{id}/approve", srv.DisposalHandler.ApproveDisposal)
				disposals.Post("/{id}/reject", srv.DisposalHandler.RejectDisposal)
				disposals.Post("/{id}/complete", srv.DisposalHandler.CompleteDisposal)
			})

			protected.Route("/recycling", func(recycling chi.Router) {
				recycling.Get("/", srv.RecyclingHandler.ListRecords)
				recycling.Post("/", srv.RecyclingHandler.RecordOutcome)
				recycling.Get("/impact", srv.RecyclingHandler.ImpactSummary)
				recycling.Get("/{id}", srv.RecyclingHandler.GetRecord)
			})

			// admin only; the services check again through the access gate
			protected.Route("/admin", func(admin chi.Router) {
				admin.Use(srv.Middleware.RequireRole(models.AdminRole))
				admin.Post("/roles", srv.RoleHandler.AssignRole)
				admin.Delete("/roles", srv.RoleHandler.RevokeRole)
			})
		})
	})

	return r
}

// Health reports whether the database answers within two seconds.
func (srv *Server) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := srv.DB.Ping(ctx); err != nil {
		utils.RespondError(w, http.StatusServiceUnavailable, err, "database unavailable")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
