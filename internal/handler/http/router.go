package http

import (
	"log/slog"
	"os"

	"github.com/cronos-hq/attendance-compliance-go/internal/handler/http/middleware"
	"github.com/cronos-hq/attendance-compliance-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env string

	// Nil JWTService leaves the API open; set one to require service
	// bearer tokens on every endpoint.
	JWTService jwt.Service
}

func NewRouter(cfg RouterConfig, employeeHandler EmployeeHandler, complianceHandler ComplianceHandler, analyticsHandler AnalyticsHandler, reportHandler ReportHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-compliance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Report-ID"},
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
		if cfg.JWTService != nil {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(cfg.JWTService.JWTAuth()))
		}

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Get("/{id}", employeeHandler.GetByID)
		})

		r.Route("/compliance", func(r chi.Router) {
			r.Get("/employees/{id}", complianceHandler.Check)
			r.Post("/batch", complianceHandler.BatchCheck)
			r.Get("/rules", complianceHandler.Rules)
			r.Get("/periods", complianceHandler.Periods)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/monthly/{year}/{month}", analyticsHandler.MonthlyReport)
			r.Get("/dashboard", analyticsHandler.Dashboard)
			r.Get("/departments/{year}/{month}", analyticsHandler.Departments)
			r.Get("/data-quality", analyticsHandler.DataQuality)

			r.Route("/employees/{id}", func(r chi.Router) {
				r.Get("/trends", analyticsHandler.Trends)
				r.Get("/weekly-patterns/{year}/{month}", analyticsHandler.WeeklyPatterns)
				r.Get("/{year}/{month}", analyticsHandler.EmployeeMonth)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/monthly/{year}/{month}.xlsx", reportHandler.MonthlyXLSX)
			r.Get("/monthly/{year}/{month}.csv", reportHandler.MonthlyCSV)
		})
	})
	return r
}
