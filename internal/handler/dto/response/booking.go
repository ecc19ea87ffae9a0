package response

import (
	"time"

	"renobooking/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Municipality string    `json:"municipality"`
	Note         string    `json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromBooking(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID(),
		Date:         b.Date().String(),
		Time:         b.Time().String(),
		Name:         b.Contact().Name(),
		Email:        b.Contact().Email(),
		Phone:        b.Contact().Phone(),
		Municipality: b.Contact().Municipality(),
		Note:         b.Note().String(),
		CreatedAt:    b.CreatedAt(),
	}
}

func FromBookings(bookings []*booking.Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, FromBooking(b))
	}
	return responses
}
