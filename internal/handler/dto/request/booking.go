package request

import (
	"strings"

	"renobooking/internal/domain/schedule"
	"renobooking/internal/pkg/patch"
	"renobooking/internal/usecase"
)

type CreateBookingRequest struct {
	Date         string  `json:"date" binding:"required"`
	Time         string  `json:"time" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	Municipality string  `json:"municipality" binding:"required"`
	Note         *string `json:"note,omitempty"`
}

// ToParams parses the wire formats; contact validation stays in the domain.
func (r CreateBookingRequest) ToParams() (usecase.BookSlotParams, error) {
	date, err := schedule.ParseDate(r.Date)
	if err != nil {
		return usecase.BookSlotParams{}, err
	}

	timeOfDay, err := schedule.ParseTimeOfDay(r.Time)
	if err != nil {
		return usecase.BookSlotParams{}, err
	}

	return usecase.BookSlotParams{
		Date:         date,
		Time:         timeOfDay,
		Name:         strings.TrimSpace(r.Name),
		Email:        strings.TrimSpace(r.Email),
		Phone:        strings.TrimSpace(r.Phone),
		Municipality: strings.TrimSpace(r.Municipality),
		Note:         strings.TrimSpace(patch.Coalesce(r.Note, "")),
	}, nil
}
