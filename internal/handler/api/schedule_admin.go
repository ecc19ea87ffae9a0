package api

import (
	"errors"
	"net/http"

	"renobooking/internal/domain/schedule"
	reqdto "renobooking/internal/handler/dto/request"
	resdto "renobooking/internal/handler/dto/response"
	"renobooking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ScheduleAdminHandler struct {
	scheduleAdminUseCase usecase.ScheduleAdminUseCase
}

func NewScheduleAdminHandler(scheduleAdminUseCase usecase.ScheduleAdminUseCase) *ScheduleAdminHandler {
	return &ScheduleAdminHandler{
		scheduleAdminUseCase: scheduleAdminUseCase,
	}
}

// @Summary Get weekly template
// @Description Fetch the weekly schedule template
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TemplateResponse
// @Failure 401 {object} map[string]string
// @Router /admin/schedule/template [get]
func (h *ScheduleAdminHandler) GetTemplate(c *gin.Context) {
	tpl, err := h.scheduleAdminUseCase.GetTemplate(c.Request.Context())
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

	c.JSON(http.StatusOK, resdto.FromTemplate(tpl))
}

// @Summary Replace weekly template
// @Description Replace the full weekly template with all seven weekdays
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReplaceTemplateRequest true "Template"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/schedule/template [put]
func (h *ScheduleAdminHandler) ReplaceTemplate(c *gin.Context) {
	var req reqdto.ReplaceTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.scheduleAdminUseCase.ReplaceTemplate(c.Request.Context(), req.ToParams()); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTemplate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid weekly template",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	tpl, err := h.scheduleAdminUseCase.GetTemplate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTemplate(tpl))
}

// @Summary List overrides
// @Description List date overrides from today onward
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OverrideResponse
// @Failure 401 {object} map[string]string
// @Router /admin/schedule/overrides [get]
func (h *ScheduleAdminHandler) ListOverrides(c *gin.Context) {
	overrides, err := h.scheduleAdminUseCase.ListOverrides(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOverrides(overrides))
}

// @Summary Upsert override
// @Description Add or replace the override for one date
// @Tags schedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertOverrideRequest true "Override"
// @Success 200 {object} resdto.OverrideResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/schedule/overrides [put]
func (h *ScheduleAdminHandler) UpsertOverride(c *gin.Context) {
	var req reqdto.UpsertOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	override, err := h.scheduleAdminUseCase.AddOverride(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidOverride):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid date override",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOverride(override))
}

// @Summary Remove override
// @Description Remove the override for one date; removing a date without one succeeds
// @Tags schedule
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/schedule/overrides/{date} [delete]
func (h *ScheduleAdminHandler) RemoveOverride(c *gin.Context) {
	date, err := schedule.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date",
		})
		return
	}

	if err := h.scheduleAdminUseCase.RemoveOverride(c.Request.Context(), date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
