package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/painel-equipe/presenca-backend-go/internal/config"
	appHTTP "github.com/painel-equipe/presenca-backend-go/internal/handler/http"
	"github.com/painel-equipe/presenca-backend-go/internal/pkg/clock"
	"github.com/painel-equipe/presenca-backend-go/internal/pkg/cron"
	"github.com/painel-equipe/presenca-backend-go/internal/pkg/database"
	"github.com/painel-equipe/presenca-backend-go/internal/repository/sqlite"
	attendanceService "github.com/painel-equipe/presenca-backend-go/internal/service/attendance"
	"github.com/painel-equipe/presenca-backend-go/internal/service/export"
	"github.com/painel-equipe/presenca-backend-go/internal/service/roster"
	vacationService "github.com/painel-equipe/presenca-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewSQLiteDB(cfg.Database.Path)
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		fmt.Println("Error migrating database:", err)
		return
	}

	employeeRepo := sqlite.NewEmployeeRepository(db)
	vacationRepo := sqlite.NewVacationRepository(db)

	rosterSvc := roster.NewRosterService(employeeRepo)
	vacationSvc := vacationService.NewVacationService(vacationRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, employeeRepo, clock.System())
	exportSvc := export.NewExportService(employeeRepo)

	// The rollover job baselines the current date on its first run, then
	// clears attendance flags when the local day changes.
	scheduler := cron.NewScheduler()
	scheduler.AddJob("attendance_daily_rollover", time.Minute, attendanceSvc.RunRolloverCheck)
	scheduler.Start()
	defer scheduler.Stop()

	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	vacationHandler := appHTTP.NewVacationHandler(vacationSvc)
	exportHandler := appHTTP.NewExportHandler(exportSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		rosterHandler,
		attendanceHandler,
		vacationHandler,
		exportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
