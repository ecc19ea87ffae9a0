package response

import (
	"renobooking/internal/domain/schedule"
	"renobooking/internal/usecase"
)

type DayAvailabilityResponse struct {
	Date           string   `json:"date"`
	Status         string   `json:"status"`
	IsOpen         bool     `json:"isOpen"`
	AvailableTimes []string `json:"availableTimes"`
	BookedTimes    []string `json:"bookedTimes"`
}

type MonthAvailabilityResponse struct {
	Year          int                                `json:"year"`
	Month         int                                `json:"month"`
	HorizonMonths int                                `json:"horizonMonths"`
	Days          map[string]DayAvailabilityResponse `json:"days"`
}

func FromDayAvailability(day schedule.DayAvailability) DayAvailabilityResponse {
	return DayAvailabilityResponse{
		Date:           day.Date.String(),
		Status:         string(day.Status),
		IsOpen:         day.IsOpen(),
		AvailableTimes: schedule.FormatTimes(day.Available),
		BookedTimes:    schedule.FormatTimes(day.Booked),
	}
}

func FromMonthAvailability(month *usecase.MonthAvailability, horizonMonths int) MonthAvailabilityResponse {
	days := make(map[string]DayAvailabilityResponse, len(month.Days))
	for key, day := range month.Days {
		days[key] = FromDayAvailability(day)
	}
	return MonthAvailabilityResponse{
		Year:          month.Year,
		Month:         int(month.Month),
		HorizonMonths: horizonMonths,
		Days:          days,
	}
}
