package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/painel-equipe/presenca-backend-go/internal/domain/attendance"
	"github.com/painel-equipe/presenca-backend-go/internal/domain/employee"
	"github.com/painel-equipe/presenca-backend-go/internal/pkg/clock"
	"github.com/painel-equipe/presenca-backend-go/internal/pkg/database"
	"github.com/painel-equipe/presenca-backend-go/internal/repository/sqlite"
)

type attendanceServiceImpl struct {
	db           *database.DB
	employeeRepo employee.Repository
	clock        clock.Clock

	// Rollover state. lastResetDate is empty until the first check after
	// boot, which baselines the date without resetting anything.
	mu            sync.Mutex
	lastResetDate string
}

func NewAttendanceService(db *database.DB, employeeRepo employee.Repository, clk clock.Clock) attendance.Service {
	return &attendanceServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		clock:        clk,
	}
}

// SetLoggedIn implements attendance.Service.
func (s *attendanceServiceImpl) SetLoggedIn(ctx context.Context, id int64, loggedIn bool) error {
	return s.employeeRepo.SetLoggedIn(ctx, id, loggedIn)
}

// BulkSet implements attendance.Service. Clear-all and mark-selected run
// inside one transaction so a concurrent Count or List never observes the
// half-applied state.
func (s *attendanceServiceImpl) BulkSet(ctx context.Context, ids []int64) (int, error) {
	err := sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.ResetLoggedIn(txCtx); err != nil {
			return err
		}
		return s.employeeRepo.MarkLoggedIn(txCtx, ids)
	})
	if err != nil {
		return 0, err
	}

	return s.employeeRepo.CountLoggedIn(ctx)
}

// Count implements attendance.Service.
func (s *attendanceServiceImpl) Count(ctx context.Context) (int, error) {
	return s.employeeRepo.CountLoggedIn(ctx)
}

// List implements attendance.Service.
func (s *attendanceServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	list, err := s.employeeRepo.ListLoggedIn(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []employee.Employee{}
	}
	return list, nil
}

// Snapshot implements attendance.Service.
func (s *attendanceServiceImpl) Snapshot(ctx context.Context) (attendance.Snapshot, error) {
	list, err := s.List(ctx)
	if err != nil {
		return attendance.Snapshot{}, err
	}

	return attendance.Snapshot{
		Total: len(list),
		List:  list,
	}, nil
}

// DailyReset implements attendance.Service.
func (s *attendanceServiceImpl) DailyReset(ctx context.Context) error {
	return s.employeeRepo.ResetLoggedIn(ctx)
}

// RunRolloverCheck implements attendance.Service. Wired to the cron
// scheduler on a one-minute interval; a failed reset keeps the marker on
// the previous day so the next tick retries.
func (s *attendanceServiceImpl) RunRolloverCheck(ctx context.Context) error {
	today := clock.LocalDate(s.clock.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastResetDate == "" {
		s.lastResetDate = today
		return nil
	}
	if s.lastResetDate == today {
		return nil
	}

	if err := s.employeeRepo.ResetLoggedIn(ctx); err != nil {
		return fmt.Errorf("daily attendance reset: %w", err)
	}

	slog.Info("Attendance flags reset for new day", "date", today)
	s.lastResetDate = today
	return nil
}
