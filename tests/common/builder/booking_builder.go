//go:build unit || e2e

package builder

import (
	domainbooking "renobooking/internal/domain/booking"
	reqdto "renobooking/internal/handler/dto/request"
	"renobooking/internal/usecase"
)

type BookingBuilder struct {
	Date         string
	Time         string
	Name         string
	Email        string
	Phone        string
	Municipality string
	Note         string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Date:         "2026-09-15",
		Time:         "10:00",
		Name:         "Jan Peeters",
		Email:        "jan.peeters@example.com",
		Phone:        "+32 475 12 34 56",
		Municipality: "Leuven",
		Note:         "Bathroom renovation, second floor",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildParams() usecase.BookSlotParams {
	return usecase.BookSlotParams{
		Date:         MustDate(b.Date),
		Time:         MustTimes(b.Time)[0],
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		Municipality: b.Municipality,
		Note:         b.Note,
	}
}

func (b *BookingBuilder) BuildContact() (domainbooking.Contact, error) {
	return domainbooking.NewContact(b.Name, b.Email, b.Phone, b.Municipality)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	note := b.Note
	return reqdto.CreateBookingRequest{
		Date:         b.Date,
		Time:         b.Time,
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		Municipality: b.Municipality,
		Note:         &note,
	}
}

func (b *BookingBuilder) BuildDomain() (*domainbooking.Booking, error) {
	contact, err := b.BuildContact()
	if err != nil {
		return nil, err
	}
	return domainbooking.NewBooking(MustDate(b.Date), MustTimes(b.Time)[0], contact, domainbooking.NewNote(b.Note)), nil
}
