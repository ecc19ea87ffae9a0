package request

import (
	"strings"

	"renobooking/internal/domain/schedule"
	"renobooking/internal/pkg/patch"
	"renobooking/internal/usecase"
)

type TemplateEntryRequest struct {
	Weekday  int      `json:"weekday" binding:"min=0,max=6"`
	IsActive bool     `json:"isActive"`
	Slots    []string `json:"slots"`
}

type ReplaceTemplateRequest struct {
	Entries []TemplateEntryRequest `json:"entries" binding:"required"`
}

func (r ReplaceTemplateRequest) ToParams() []usecase.TemplateEntryParams {
	params := make([]usecase.TemplateEntryParams, 0, len(r.Entries))
	for _, e := range r.Entries {
		params = append(params, usecase.TemplateEntryParams{
			Weekday:  e.Weekday,
			IsActive: e.IsActive,
			Slots:    e.Slots,
		})
	}
	return params
}

type UpsertOverrideRequest struct {
	Date         string   `json:"date" binding:"required"`
	IsOpen       bool     `json:"isOpen"`
	BlockedTimes []string `json:"blockedTimes,omitempty"`
	Reason       *string  `json:"reason,omitempty"`
}

func (r UpsertOverrideRequest) ToParams() (usecase.OverrideParams, error) {
	date, err := schedule.ParseDate(r.Date)
	if err != nil {
		return usecase.OverrideParams{}, err
	}

	return usecase.OverrideParams{
		Date:         date,
		IsOpen:       r.IsOpen,
		BlockedTimes: r.BlockedTimes,
		Reason:       strings.TrimSpace(patch.Coalesce(r.Reason, "")),
	}, nil
}
