package usecase

import (
	"context"
	"errors"
	"log/slog"

	"renobooking/internal/domain/schedule"
	"renobooking/internal/infra/db"
	"renobooking/internal/pkg/clock"
	"renobooking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidTemplate = errors.New("invalid weekly template")
	ErrInvalidOverride = errors.New("invalid date override")
)

type TemplateWriter interface {
	TemplateRepository
	Replace(ctx context.Context, tx db.DBTX, tpl *schedule.WeeklyTemplate) error
}

type OverrideWriter interface {
	OverrideRepository
	Upsert(ctx context.Context, tx db.DBTX, override *schedule.DateOverride) error
	Delete(ctx context.Context, tx db.DBTX, date schedule.Date) error
}

// TemplateEntryParams carries one weekday of the admin's template submission
// before domain validation.
type TemplateEntryParams struct {
	Weekday  int
	IsActive bool
	Slots    []string
}

type OverrideParams struct {
	Date         schedule.Date
	IsOpen       bool
	BlockedTimes []string
	Reason       string
}

type ScheduleAdminUseCase interface {
	GetTemplate(ctx context.Context) (*schedule.WeeklyTemplate, error)
	ReplaceTemplate(ctx context.Context, entries []TemplateEntryParams) error
	ListOverrides(ctx context.Context) ([]*schedule.DateOverride, error)
	AddOverride(ctx context.Context, params OverrideParams) (*schedule.DateOverride, error)
	RemoveOverride(ctx context.Context, date schedule.Date) error
}

type scheduleAdminUseCaseImpl struct {
	pool         *pgxpool.Pool
	templateRepo TemplateWriter
	overrideRepo OverrideWriter
	clock        clock.Clock
	policy       SchedulePolicy
}

func NewScheduleAdminUseCase(
	pool *pgxpool.Pool,
	templateRepo TemplateWriter,
	overrideRepo OverrideWriter,
	clk clock.Clock,
	policy SchedulePolicy,
) ScheduleAdminUseCase {
	return &scheduleAdminUseCaseImpl{
		pool:         pool,
		templateRepo: templateRepo,
		overrideRepo: overrideRepo,
		clock:        clk,
		policy:       policy,
	}
}

func (s *scheduleAdminUseCaseImpl) GetTemplate(ctx context.Context) (*schedule.WeeklyTemplate, error) {
	entries, err := s.templateRepo.Load(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load weekly template")
	}

	tpl, err := schedule.NewWeeklyTemplate(entries)
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleNotConfigured)
	}

	return tpl, nil
}

// ReplaceTemplate swaps the whole weekly template in one transaction. The
// submission must cover all seven weekdays; a partial set is rejected before
// any row is touched.
func (s *scheduleAdminUseCaseImpl) ReplaceTemplate(ctx context.Context, params []TemplateEntryParams) error {
	entries := make([]schedule.TemplateEntry, 0, len(params))
	for _, p := range params {
		slots, err := parseSlotTimes(p.Slots)
		if err != nil {
			return errs.Mark(err, ErrInvalidTemplate)
		}

		entry, err := schedule.NewTemplateEntry(p.Weekday, p.IsActive, slots, s.policy.Grid)
		if err != nil {
			return errs.Mark(err, ErrInvalidTemplate)
		}
		entries = append(entries, entry)
	}

	tpl, err := schedule.NewWeeklyTemplate(entries)
	if err != nil {
		return errs.Mark(err, ErrInvalidTemplate)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to begin transaction"), ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := s.templateRepo.Replace(ctx, tx, tpl); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to replace weekly template"), ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to commit transaction"), ErrDatabaseOperationFailed)
	}

	slog.Info("weekly template replaced", "entries", len(params))
	return nil
}

func (s *scheduleAdminUseCaseImpl) ListOverrides(ctx context.Context) ([]*schedule.DateOverride, error) {
	overrides, err := s.overrideRepo.ListFrom(ctx, s.policy.Today(s.clock))
	if err != nil {
		return nil, errs.Wrap(err, "failed to list overrides")
	}
	return overrides, nil
}

// AddOverride upserts: submitting the same date twice replaces the stored
// override rather than erroring.
func (s *scheduleAdminUseCaseImpl) AddOverride(ctx context.Context, params OverrideParams) (*schedule.DateOverride, error) {
	if params.Date.Before(s.policy.Today(s.clock)) {
		return nil, errs.Mark(ErrPastDate, ErrInvalidOverride)
	}

	blocked, err := parseSlotTimes(params.BlockedTimes)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOverride)
	}

	override, err := schedule.NewDateOverride(params.Date, params.IsOpen, blocked, params.Reason, s.policy.Grid)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOverride)
	}

	if err := s.overrideRepo.Upsert(ctx, s.pool, override); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to upsert override"), ErrDatabaseOperationFailed)
	}

	return override, nil
}

// RemoveOverride is idempotent. Deleting a date without an override succeeds.
func (s *scheduleAdminUseCaseImpl) RemoveOverride(ctx context.Context, date schedule.Date) error {
	if err := s.overrideRepo.Delete(ctx, s.pool, date); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to delete override"), ErrDatabaseOperationFailed)
	}
	return nil
}

func parseSlotTimes(raw []string) ([]schedule.TimeOfDay, error) {
	times := make([]schedule.TimeOfDay, 0, len(raw))
	for _, v := range raw {
		t, err := schedule.ParseTimeOfDay(v)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, nil
}
