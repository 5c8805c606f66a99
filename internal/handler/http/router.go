package http

import (
	"log/slog"
	"os"

	"github.com/edusuite/school-backend-go/internal/config"
	"github.com/edusuite/school-backend-go/internal/handler/http/middleware"
	"github.com/edusuite/school-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	salaryHandler SalaryHandler,
	attendanceHandler AttendanceHandler,
	ledgerHandler LedgerHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "school-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/salaries", func(r chi.Router) {
				r.Use(middleware.RequirePayrollAccess)
				r.Get("/", salaryHandler.ListActive)
				r.Post("/", salaryHandler.SetSalary)
				r.Get("/teachers/{teacherID}/history", salaryHandler.GetHistory)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/absences", attendanceHandler.ListAbsences)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAttendanceAccess)
					r.Post("/absences", attendanceHandler.MarkAbsence)
					r.Delete("/absences/{id}", attendanceHandler.DeleteAbsence)
					r.Get("/settings", attendanceHandler.GetSettings)
					r.Put("/settings", attendanceHandler.UpdateSettings)
				})
			})

			r.Route("/ledgers", func(r chi.Router) {
				r.Use(middleware.RequirePayrollAccess)

				r.Route("/deposits", func(r chi.Router) {
					r.Get("/", ledgerHandler.ListDeposits)
					r.Post("/", ledgerHandler.CreateDeposit)
				})

				r.Route("/advances", func(r chi.Router) {
					r.Get("/", ledgerHandler.ListAdvances)
					r.Post("/", ledgerHandler.CreateAdvance)
					r.Patch("/{id}/approve", ledgerHandler.ApproveAdvance)
				})

				r.Route("/loans", func(r chi.Router) {
					r.Get("/", ledgerHandler.ListLoans)
					r.Post("/", ledgerHandler.CreateLoan)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Use(middleware.RequirePayrollAccess)
				r.Get("/", payrollHandler.List)
				r.Post("/generate", payrollHandler.Generate)
				r.Get("/summary", payrollHandler.GetSummary)
				r.Get("/{id}", payrollHandler.Get)
				r.Patch("/{id}/pay", payrollHandler.MarkPaid)
			})
		})
	})
	return r
}
