package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	rosterHandler RosterHandler,
	attendanceHandler AttendanceHandler,
	vacationHandler VacationHandler,
	exportHandler ExportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presenca-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {
		r.Route("/collaboradores", func(r chi.Router) {
			r.Get("/", rosterHandler.List)
			r.Post("/", rosterHandler.Create)
			r.Put("/{id}", rosterHandler.Update)
			r.Delete("/{id}", rosterHandler.Delete)
		})

		r.Post("/status", attendanceHandler.BulkSet)
		r.Post("/logado/{id}/{val}", attendanceHandler.SetLoggedIn)
		r.Get("/ativos", attendanceHandler.Snapshot)

		r.Route("/ferias", func(r chi.Router) {
			r.Get("/", vacationHandler.List)
			r.Post("/", vacationHandler.Create)
			r.Delete("/{id}", vacationHandler.Delete)
		})

		r.Get("/export-all.csv", exportHandler.ExportCSV)
	})

	return r
}
