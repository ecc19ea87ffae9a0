package components

import (
	"time"

	"renobooking/internal/domain/schedule"
	"renobooking/internal/pkg/clock"
	"renobooking/internal/pkg/config"
	"renobooking/internal/pkg/errs"
	"renobooking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewSchedulePolicy,
		usecase.NewAvailabilityUseCase,
		usecase.NewBookingUseCase,
		usecase.NewScheduleAdminUseCase,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)

func NewSchedulePolicy(cfg config.Config) (usecase.SchedulePolicy, error) {
	grid, err := schedule.NewSlotGrid(cfg.Schedule.SlotTimes)
	if err != nil {
		return usecase.SchedulePolicy{}, errs.Wrap(err, "invalid SCHEDULE_SLOT_TIMES")
	}

	loc, err := time.LoadLocation(cfg.Schedule.TimeZone)
	if err != nil {
		return usecase.SchedulePolicy{}, errs.Wrap(err, "invalid SCHEDULE_TIMEZONE")
	}

	return usecase.SchedulePolicy{
		Grid:          grid,
		HorizonMonths: cfg.Schedule.HorizonMonths,
		Location:      loc,
	}, nil
}
