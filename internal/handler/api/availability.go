package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"renobooking/internal/domain/schedule"
	resdto "renobooking/internal/handler/dto/response"
	"renobooking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
	}
}

// @Summary Month availability
// @Description Resolve the bookable state of every day in a calendar month
// @Tags availability
// @Produce json
// @Param year query int true "Calendar year"
// @Param month query int true "Calendar month (1-12)"
// @Success 200 {object} resdto.MonthAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid year parameter",
		})
		return
	}

	monthNum, err := strconv.Atoi(c.Query("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid month parameter",
		})
		return
	}

	month, err := h.availabilityUseCase.ResolveMonth(c.Request.Context(), year, time.Month(monthNum))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMonthOutOfRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":         "Month is outside the browsable horizon",
				"horizonMonths": h.availabilityUseCase.HorizonMonths(),
			})
		case errors.Is(err, usecase.ErrScheduleNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Schedule is not configured",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMonthAvailability(month, h.availabilityUseCase.HorizonMonths()))
}

// @Summary Day availability
// @Description Resolve the bookable slots of a single date
// @Tags availability
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /availability/{date} [get]
func (h *AvailabilityHandler) GetDay(c *gin.Context) {
	date, err := schedule.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date",
		})
		return
	}

	day, err := h.availabilityUseCase.ResolveDay(c.Request.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrScheduleNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Schedule is not configured",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayAvailability(day))
}
