package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"renobooking/internal/domain/schedule"
	"renobooking/internal/infra"
	"renobooking/internal/pkg/clock"
	"renobooking/internal/pkg/errs"
)

var (
	ErrMonthOutOfRange       = errors.New("month outside browsable horizon")
	ErrScheduleNotConfigured = errors.New("weekly schedule is not configured")
)

// SchedulePolicy bundles the configured booking policy: the canonical slot
// vocabulary, the browse horizon, and the civil timezone "today" lives in.
type SchedulePolicy struct {
	Grid          schedule.SlotGrid
	HorizonMonths int
	Location      *time.Location
}

func (p SchedulePolicy) Today(c clock.Clock) schedule.Date {
	return schedule.DateOf(c.Now().In(p.Location))
}

type TemplateRepository interface {
	Load(ctx context.Context) ([]schedule.TemplateEntry, error)
}

type OverrideRepository interface {
	FindByDate(ctx context.Context, date schedule.Date) (*schedule.DateOverride, error)
	FindInRange(ctx context.Context, from, to schedule.Date) (map[string]*schedule.DateOverride, error)
	ListFrom(ctx context.Context, from schedule.Date) ([]*schedule.DateOverride, error)
}

type BookedTimesRepository interface {
	TimesByDate(ctx context.Context, date schedule.Date) ([]schedule.TimeOfDay, error)
	TimesInRange(ctx context.Context, from, to schedule.Date) (map[string][]schedule.TimeOfDay, error)
}

// MonthAvailability is one calendar month resolved day by day, keyed by ISO
// date string.
type MonthAvailability struct {
	Year  int
	Month time.Month
	Days  map[string]schedule.DayAvailability
}

type AvailabilityUseCase interface {
	ResolveDay(ctx context.Context, date schedule.Date) (schedule.DayAvailability, error)
	ResolveMonth(ctx context.Context, year int, month time.Month) (*MonthAvailability, error)
	HorizonMonths() int
}

type availabilityUseCaseImpl struct {
	templateRepo TemplateRepository
	overrideRepo OverrideRepository
	bookedRepo   BookedTimesRepository
	clock        clock.Clock
	policy       SchedulePolicy
}

func NewAvailabilityUseCase(
	templateRepo TemplateRepository,
	overrideRepo OverrideRepository,
	bookedRepo BookedTimesRepository,
	clk clock.Clock,
	policy SchedulePolicy,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		templateRepo: templateRepo,
		overrideRepo: overrideRepo,
		bookedRepo:   bookedRepo,
		clock:        clk,
		policy:       policy,
	}
}

func (a *availabilityUseCaseImpl) ResolveDay(ctx context.Context, date schedule.Date) (schedule.DayAvailability, error) {
	tpl, err := a.loadTemplate(ctx)
	if err != nil {
		return schedule.DayAvailability{}, err
	}

	override, err := a.overrideRepo.FindByDate(ctx, date)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return schedule.DayAvailability{}, errs.Wrap(err, "failed to load override")
	}

	booked, err := a.bookedRepo.TimesByDate(ctx, date)
	if err != nil {
		return schedule.DayAvailability{}, errs.Wrap(err, "failed to load booked times")
	}

	return schedule.ResolveDay(a.policy.Today(a.clock), date, tpl, override, booked), nil
}

func (a *availabilityUseCaseImpl) ResolveMonth(ctx context.Context, year int, month time.Month) (*MonthAvailability, error) {
	today := a.policy.Today(a.clock)

	first, err := schedule.NewDate(year, month, 1)
	if err != nil {
		return nil, errs.Mark(err, ErrMonthOutOfRange)
	}

	// Rejected, not clamped, so the client can disable navigation controls.
	idx := first.MonthIndex()
	if idx < today.MonthIndex() || idx > today.MonthIndex()+a.policy.HorizonMonths {
		return nil, ErrMonthOutOfRange
	}

	tpl, err := a.loadTemplate(ctx)
	if err != nil {
		return nil, err
	}

	last := schedule.DateOf(time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC))

	overrides, err := a.overrideRepo.FindInRange(ctx, first, last)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load overrides for month")
	}

	booked, err := a.bookedRepo.TimesInRange(ctx, first, last)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load booked times for month")
	}

	days := make(map[string]schedule.DayAvailability, last.Day())
	for d := first; !last.Before(d); d = d.AddDays(1) {
		key := d.String()
		days[key] = schedule.ResolveDay(today, d, tpl, overrides[key], booked[key])
	}

	return &MonthAvailability{Year: year, Month: month, Days: days}, nil
}

func (a *availabilityUseCaseImpl) HorizonMonths() int {
	return a.policy.HorizonMonths
}

// loadTemplate assembles the stored entries into the complete weekly
// template. A set that cannot pass the all-seven invariant means the seed
// or an admin write went wrong; bookings for the affected weekday stay
// blocked until it is fixed.
func (a *availabilityUseCaseImpl) loadTemplate(ctx context.Context) (*schedule.WeeklyTemplate, error) {
	entries, err := a.templateRepo.Load(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load weekly template")
	}

	tpl, err := schedule.NewWeeklyTemplate(entries)
	if err != nil {
		slog.Error("weekly template failed invariant check, blocking availability",
			"entries", len(entries), "error", err.Error())
		return nil, errs.Mark(err, ErrScheduleNotConfigured)
	}

	return tpl, nil
}
