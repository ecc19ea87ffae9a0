package response

import (
	"renobooking/internal/domain/schedule"
)

type TemplateEntryResponse struct {
	Weekday  int      `json:"weekday"`
	IsActive bool     `json:"isActive"`
	Slots    []string `json:"slots"`
}

type TemplateResponse struct {
	Entries []TemplateEntryResponse `json:"entries"`
}

type OverrideResponse struct {
	Date         string   `json:"date"`
	IsOpen       bool     `json:"isOpen"`
	BlockedTimes []string `json:"blockedTimes"`
	Reason       string   `json:"reason,omitempty"`
}

func FromTemplate(tpl *schedule.WeeklyTemplate) TemplateResponse {
	entries := tpl.Entries()
	out := make([]TemplateEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, TemplateEntryResponse{
			Weekday:  int(e.Weekday()),
			IsActive: e.IsActive(),
			Slots:    schedule.FormatTimes(e.Slots()),
		})
	}
	return TemplateResponse{Entries: out}
}

func FromOverride(o *schedule.DateOverride) OverrideResponse {
	return OverrideResponse{
		Date:         o.Date().String(),
		IsOpen:       o.IsOpen(),
		BlockedTimes: schedule.FormatTimes(o.BlockedTimes()),
		Reason:       o.Reason(),
	}
}

func FromOverrides(overrides []*schedule.DateOverride) []OverrideResponse {
	out := make([]OverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		out = append(out, FromOverride(o))
	}
	return out
}
