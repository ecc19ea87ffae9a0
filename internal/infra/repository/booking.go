package repository

import (
	"context"
	"time"

	"renobooking/internal/domain/booking"
	"renobooking/internal/domain/schedule"
	"renobooking/internal/infra"
	"renobooking/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// Create inserts the booking under the (booking_date, booking_time) unique
// constraint. A concurrent insert for the same pair surfaces as
// KindDuplicateKey; the use case translates that into SlotUnavailable.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (time.Time, error) {
	const query = `
		INSERT INTO bookings (id, booking_date, booking_time, customer_name, email, phone, municipality, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))
		RETURNING created_at`

	var createdAt time.Time
	err := tx.QueryRow(ctx, query,
		b.ID(),
		b.Date().ToTime(),
		b.Time().String(),
		b.Contact().Name(),
		b.Contact().Email(),
		b.Contact().Phone(),
		b.Contact().Municipality(),
		b.Note().String(),
	).Scan(&createdAt)
	if err != nil {
		return time.Time{}, infra.WrapRepoErr("failed to create booking", err, kindFromPgError(err))
	}

	return createdAt, nil
}

// TimesByDate returns the booked times of one date, ascending.
func (r *BookingRepository) TimesByDate(ctx context.Context, date schedule.Date) ([]schedule.TimeOfDay, error) {
	const query = `
		SELECT booking_time
		FROM bookings
		WHERE booking_date = $1
		ORDER BY booking_time`

	rows, err := r.db.Query(ctx, query, date.ToTime())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booked times by date", err)
	}
	defer rows.Close()

	var times []schedule.TimeOfDay
	for rows.Next() {
		var t scanTimeOfDay
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked time", err)
		}
		times = append(times, t.value)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked times", err)
	}

	return times, nil
}

// TimesInRange returns booked times grouped by ISO date string for
// [from, to] inclusive, the shape month resolution folds over.
func (r *BookingRepository) TimesInRange(ctx context.Context, from, to schedule.Date) (map[string][]schedule.TimeOfDay, error) {
	const query = `
		SELECT booking_date, booking_time
		FROM bookings
		WHERE booking_date BETWEEN $1 AND $2
		ORDER BY booking_date, booking_time`

	rows, err := r.db.Query(ctx, query, from.ToTime(), to.ToTime())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booked times in range", err)
	}
	defer rows.Close()

	result := make(map[string][]schedule.TimeOfDay)
	for rows.Next() {
		var (
			date scanDate
			t    scanTimeOfDay
		)
		if err := rows.Scan(&date, &t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked time row", err)
		}
		key := date.value.String()
		result[key] = append(result[key], t.value)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked time rows", err)
	}

	return result, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, booking_date, booking_time, customer_name, email, phone, municipality, COALESCE(note, ''), created_at
		FROM bookings
		WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return b, nil
}

// ListByDateRange returns full bookings for the back-office agenda.
func (r *BookingRepository) ListByDateRange(ctx context.Context, from, to schedule.Date) ([]*booking.Booking, error) {
	const query = `
		SELECT id, booking_date, booking_time, customer_name, email, phone, municipality, COALESCE(note, ''), created_at
		FROM bookings
		WHERE booking_date BETWEEN $1 AND $2
		ORDER BY booking_date, booking_time`

	rows, err := r.db.Query(ctx, query, from.ToTime(), to.ToTime())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by date range", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id           uuid.UUID
		date         scanDate
		timeOfDay    scanTimeOfDay
		name         string
		email        string
		phone        string
		municipality string
		note         string
		createdAt    time.Time
	)
	if err := row.Scan(&id, &date, &timeOfDay, &name, &email, &phone, &municipality, &note, &createdAt); err != nil {
		return nil, err
	}

	contact, err := booking.NewContact(name, email, phone, municipality)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(id, date.value, timeOfDay.value, contact, booking.NewNote(note), createdAt), nil
}
