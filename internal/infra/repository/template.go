package repository

import (
	"context"
	"time"

	"renobooking/internal/domain/schedule"
	"renobooking/internal/infra"
	"renobooking/internal/infra/db"
)

type TemplateRepository struct {
	db db.DBTX
}

func NewTemplateRepository(dbtx db.DBTX) *TemplateRepository {
	return &TemplateRepository{db: dbtx}
}

// Load returns the stored weekday entries without asserting completeness;
// the caller assembles them into a WeeklyTemplate, which is where a short
// or duplicated set becomes a configuration error.
func (r *TemplateRepository) Load(ctx context.Context) ([]schedule.TemplateEntry, error) {
	const query = `
		SELECT weekday, is_active, slot_times
		FROM schedule_template
		ORDER BY weekday`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load weekly template", err)
	}
	defer rows.Close()

	var entries []schedule.TemplateEntry
	for rows.Next() {
		var (
			weekday  int
			isActive bool
			rawSlots []string
		)
		if err := rows.Scan(&weekday, &isActive, &rawSlots); err != nil {
			return nil, infra.WrapRepoErr("failed to scan template entry", err)
		}

		slots, err := parseStoredTimes(rawSlots)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt slot time in template row", err)
		}
		entries = append(entries, schedule.ReconstructTemplateEntry(time.Weekday(weekday), isActive, slots))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate template rows", err)
	}

	return entries, nil
}

// Replace swaps the full seven-entry set inside the caller's transaction so
// readers never observe a partially applied template.
func (r *TemplateRepository) Replace(ctx context.Context, tx db.DBTX, tpl *schedule.WeeklyTemplate) error {
	if _, err := tx.Exec(ctx, `DELETE FROM schedule_template`); err != nil {
		return infra.WrapRepoErr("failed to clear weekly template", err)
	}

	const insert = `
		INSERT INTO schedule_template (weekday, is_active, slot_times, updated_at)
		VALUES ($1, $2, $3, now())`

	for _, entry := range tpl.Entries() {
		_, err := tx.Exec(ctx, insert,
			int(entry.Weekday()),
			entry.IsActive(),
			schedule.FormatTimes(entry.Slots()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert template entry", err, kindFromPgError(err))
		}
	}

	return nil
}

func parseStoredTimes(raw []string) ([]schedule.TimeOfDay, error) {
	times := make([]schedule.TimeOfDay, 0, len(raw))
	for _, s := range raw {
		t, err := schedule.ParseTimeOfDay(s)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, nil
}
