package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplehub/hrms-backend-go/internal/config"
	"github.com/peoplehub/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peoplehub/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	permissionHandler PermissionHandler,
	leaveHandler LeaveHandler,
	timeTrackingHandler TimeTrackingHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/register", authHandler.Register)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Post("/", userHandler.Create)
				r.Get("/", userHandler.List)
				r.Get("/roles", userHandler.ListRoles)
			})

			r.Route("/permissions", func(r chi.Router) {
				r.Get("/", permissionHandler.List)
				r.Post("/", permissionHandler.Create)
				r.Route("/role/{roleId}", func(r chi.Router) {
					r.Get("/", permissionHandler.GetRolePermissions)
					r.Put("/", permissionHandler.UpdateRolePermissions)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/types", leaveHandler.ListTypes)
				r.Get("/balance", leaveHandler.GetBalances)
				r.Post("/apply", leaveHandler.Apply)
				r.Get("/my-leaves", leaveHandler.MyLeaves)
				r.Get("/all", leaveHandler.AllLeaves)
				r.Get("/report", leaveHandler.Report)
				r.Post("/{id}/approve", leaveHandler.Approve)
				r.Post("/{id}/reject", leaveHandler.Reject)
				r.Post("/{id}/cancel", leaveHandler.Cancel)
			})

			r.Route("/time-tracking", func(r chi.Router) {
				r.Post("/clock-in", timeTrackingHandler.ClockIn)
				r.Post("/clock-out", timeTrackingHandler.ClockOut)
				r.Post("/break-in", timeTrackingHandler.BreakIn)
				r.Post("/break-out", timeTrackingHandler.BreakOut)
				r.Get("/today", timeTrackingHandler.TodayStatus)
				r.Get("/attendance", timeTrackingHandler.Attendance)
			})
		})
	})
	return r
}
