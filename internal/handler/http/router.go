package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/leavedesk/leave-backend-go/internal/handler/http/middleware"
	"github.com/leavedesk/leave-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	FrontendURL string
	Env         string
	OAuthGoogle bool
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, authHandler AuthHandler, profileHandler ProfileHandler, leaveHandler LeaveHandler, holidayHandler HolidayHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leavedesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)

			if cfg.OAuthGoogle {
				r.Get("/login/oauth/google", authHandler.LoginWithGoogle)
				r.Get("/oauth/callback/google", authHandler.OAuthCallbackGoogle)
			}
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.Get)
				r.Put("/", profileHandler.Update)
			})

			r.Get("/holidays", holidayHandler.ListForYear)

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", leaveHandler.Summary)
				r.Post("/", leaveHandler.Submit)
				r.Get("/preview", leaveHandler.Preview)
				r.Delete("/{id}", leaveHandler.Withdraw)
			})

			// Manager only
			r.Route("/approvals", func(r chi.Router) {
				r.Use(middleware.ManagerOnly)
				r.Get("/", leaveHandler.ListPending)
				r.Post("/{userID}/{id}/approve", leaveHandler.Approve)
				r.Post("/{userID}/{id}/reject", leaveHandler.Reject)
			})
		})
	})
	return r
}
