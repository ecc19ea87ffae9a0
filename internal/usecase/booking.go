package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	domainbooking "renobooking/internal/domain/booking"
	"renobooking/internal/domain/schedule"
	"renobooking/internal/infra"
	"renobooking/internal/infra/db"
	"renobooking/internal/pkg/clock"
	"renobooking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPastDate         = errors.New("date is in the past")
	ErrTimeOutsideGrid  = errors.New("time is not a bookable slot")
	ErrInvalidContact   = errors.New("invalid contact details")
	ErrSlotUnavailable  = errors.New("slot is unavailable")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidDateRange = errors.New("invalid date range")

	// Error marker for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *domainbooking.Booking) (time.Time, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domainbooking.Booking, error)
	ListByDateRange(ctx context.Context, from, to schedule.Date) ([]*domainbooking.Booking, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type BookSlotParams struct {
	Date         schedule.Date
	Time         schedule.TimeOfDay
	Name         string
	Email        string
	Phone        string
	Municipality string
	Note         string
}

type BookingUseCase interface {
	BookSlot(ctx context.Context, params BookSlotParams) (*domainbooking.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*domainbooking.Booking, error)
	ListBookings(ctx context.Context, from, to schedule.Date) ([]*domainbooking.Booking, error)
}

type bookingUseCaseImpl struct {
	bookingRepo      BookingRepository
	notificationRepo NotificationRepository
	availability     AvailabilityUseCase
	pool             *pgxpool.Pool
	clock            clock.Clock
	policy           SchedulePolicy
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	notificationRepo NotificationRepository,
	availability AvailabilityUseCase,
	pool *pgxpool.Pool,
	clk clock.Clock,
	policy SchedulePolicy,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		availability:     availability,
		pool:             pool,
		clock:            clk,
		policy:           policy,
	}
}

// BookSlot validates the requested slot against freshly resolved
// availability and then commits the booking. The availability pre-check
// fails fast with a precise error; the (date, time) unique constraint is
// the actual arbiter under concurrency, so losing a race after passing the
// pre-check still comes back as ErrSlotUnavailable.
func (b *bookingUseCaseImpl) BookSlot(ctx context.Context, params BookSlotParams) (*domainbooking.Booking, error) {
	if params.Date.Before(b.policy.Today(b.clock)) {
		return nil, ErrPastDate
	}
	if !b.policy.Grid.Contains(params.Time) {
		return nil, ErrTimeOutsideGrid
	}

	contact, err := domainbooking.NewContact(params.Name, params.Email, params.Phone, params.Municipality)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidContact)
	}

	// Never trust a stale calendar from the client; resolve again now.
	day, err := b.availability.ResolveDay(ctx, params.Date)
	if err != nil {
		return nil, err
	}
	if !day.Offers(params.Time) {
		return nil, ErrSlotUnavailable
	}

	entity := domainbooking.NewBooking(params.Date, params.Time, contact, domainbooking.NewNote(params.Note))

	return b.executeBookingTransaction(ctx, entity)
}

func (b *bookingUseCaseImpl) executeBookingTransaction(ctx context.Context, entity *domainbooking.Booking) (*domainbooking.Booking, error) {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	createdAt, err := b.bookingRepo.Create(ctx, tx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// Lost the race after the pre-check passed.
			return nil, ErrSlotUnavailable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if notifyErr := b.createConfirmationJob(ctx, tx, entity); notifyErr != nil {
		return nil, errs.Mark(notifyErr, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	return domainbooking.ReconstructBooking(
		entity.ID(), entity.Date(), entity.Time(), entity.Contact(), entity.Note(), createdAt,
	), nil
}

func (b *bookingUseCaseImpl) createConfirmationJob(ctx context.Context, tx db.DBTX, entity *domainbooking.Booking) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id":     entity.ID(),
		"date":           entity.Date().String(),
		"time":           entity.Time().String(),
		"customer_name":  entity.Contact().Name(),
		"customer_email": entity.Contact().Email(),
	})
	if err != nil {
		return err
	}

	return b.notificationRepo.CreateJob(ctx, tx, "email", "booking_confirmed", payload, b.clock.Now())
}

func (b *bookingUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID) (*domainbooking.Booking, error) {
	found, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	return found, nil
}

func (b *bookingUseCaseImpl) ListBookings(ctx context.Context, from, to schedule.Date) ([]*domainbooking.Booking, error) {
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	bookings, err := b.bookingRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}
