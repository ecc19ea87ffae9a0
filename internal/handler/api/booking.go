package api

import (
	"errors"
	"net/http"

	"renobooking/internal/domain/schedule"
	reqdto "renobooking/internal/handler/dto/request"
	resdto "renobooking/internal/handler/dto/response"
	"renobooking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Book a slot
// @Description Book an appointment slot for a visitor
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date or time format",
		})
		return
	}

	booking, err := h.bookingUseCase.BookSlot(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "The selected slot is no longer available",
			})
		case errors.Is(err, usecase.ErrPastDate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cannot book a date in the past",
			})
		case errors.Is(err, usecase.ErrTimeOutsideGrid):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Requested time is not a bookable slot",
			})
		case errors.Is(err, usecase.ErrInvalidContact):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid contact details",
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

	c.JSON(http.StatusCreated, resdto.FromBooking(booking))
}

// @Summary Get booking
// @Description Fetch one booking by id
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID",
		})
		return
	}

	booking, err := h.bookingUseCase.GetBooking(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(booking))
}

// @Summary List bookings
// @Description List bookings in a date range
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	from, err := schedule.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid from date",
		})
		return
	}

	to, err := schedule.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid to date",
		})
		return
	}

	bookings, err := h.bookingUseCase.ListBookings(c.Request.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookings(bookings))
}
