package booking

import (
	"time"

	"renobooking/internal/domain/schedule"

	"github.com/google/uuid"
)

// Booking pins one contact to exactly one (date, time) pair. Uniqueness of
// the pair across all bookings is enforced by the storage layer, not here;
// the entity only guarantees its own fields are well formed.
type Booking struct {
	id        uuid.UUID
	date      schedule.Date
	time      schedule.TimeOfDay
	contact   Contact
	note      Note
	createdAt time.Time
}

func NewBooking(date schedule.Date, timeOfDay schedule.TimeOfDay, contact Contact, note Note) *Booking {
	return &Booking{
		id:      uuid.New(),
		date:    date,
		time:    timeOfDay,
		contact: contact,
		note:    note,
	}
}

func ReconstructBooking(
	id uuid.UUID,
	date schedule.Date,
	timeOfDay schedule.TimeOfDay,
	contact Contact,
	note Note,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		date:      date,
		time:      timeOfDay,
		contact:   contact,
		note:      note,
		createdAt: createdAt,
	}
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) Date() schedule.Date      { return b.date }
func (b *Booking) Time() schedule.TimeOfDay { return b.time }
func (b *Booking) Contact() Contact         { return b.contact }
func (b *Booking) Note() Note               { return b.note }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
