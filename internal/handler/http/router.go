package http

import (
	"log/slog"
	"os"

	"github.com/MotionPhix/workhub-backend-go/internal/config"
	"github.com/MotionPhix/workhub-backend-go/internal/handler/http/middleware"
	"github.com/MotionPhix/workhub-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	workEntryHandler WorkEntryHandler,
	insightHandler InsightHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workhub-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/work-entries", func(r chi.Router) {
				r.Post("/", workEntryHandler.Create)
				r.Get("/", workEntryHandler.List)
				r.Get("/{id}", workEntryHandler.Get)
			})

			r.Route("/insights", func(r chi.Router) {
				r.Get("/productivity", insightHandler.GetProductivity)
				r.Get("/trend", insightHandler.GetTrend)
				r.Get("/burnout-risk", insightHandler.GetBurnoutRisk)
				r.Get("/dashboard", insightHandler.GetPersonalDashboard)

				r.Route("/team", func(r chi.Router) {
					r.Get("/workload", insightHandler.GetTeamWorkload)
					r.Get("/collaboration", insightHandler.GetCollaboration)
					r.Get("/departments", insightHandler.GetDepartmentRollups)
					r.Get("/projects", insightHandler.GetProjectRollups)
					r.Get("/dashboard", insightHandler.GetTeamDashboard)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/productivity", reportHandler.GetProductivityReport)
			})
		})
	})
	return r
}
