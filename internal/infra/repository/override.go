package repository

import (
	"context"

	"renobooking/internal/domain/schedule"
	"renobooking/internal/infra"
	"renobooking/internal/infra/db"
)

type OverrideRepository struct {
	db db.DBTX
}

func NewOverrideRepository(dbtx db.DBTX) *OverrideRepository {
	return &OverrideRepository{db: dbtx}
}

func (r *OverrideRepository) FindByDate(ctx context.Context, date schedule.Date) (*schedule.DateOverride, error) {
	const query = `
		SELECT override_date, is_open, blocked_times, COALESCE(reason, '')
		FROM schedule_overrides
		WHERE override_date = $1`

	row := r.db.QueryRow(ctx, query, date.ToTime())
	override, err := scanOverride(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("override not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find override by date", err)
	}

	return override, nil
}

// FindInRange returns overrides keyed by their ISO date string, covering
// [from, to] inclusive.
func (r *OverrideRepository) FindInRange(ctx context.Context, from, to schedule.Date) (map[string]*schedule.DateOverride, error) {
	const query = `
		SELECT override_date, is_open, blocked_times, COALESCE(reason, '')
		FROM schedule_overrides
		WHERE override_date BETWEEN $1 AND $2
		ORDER BY override_date`

	rows, err := r.db.Query(ctx, query, from.ToTime(), to.ToTime())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overrides in range", err)
	}
	defer rows.Close()

	result := make(map[string]*schedule.DateOverride)
	for rows.Next() {
		override, err := scanOverride(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan override row", err)
		}
		result[override.Date().String()] = override
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate override rows", err)
	}

	return result, nil
}

func (r *OverrideRepository) ListFrom(ctx context.Context, from schedule.Date) ([]*schedule.DateOverride, error) {
	const query = `
		SELECT override_date, is_open, blocked_times, COALESCE(reason, '')
		FROM schedule_overrides
		WHERE override_date >= $1
		ORDER BY override_date`

	rows, err := r.db.Query(ctx, query, from.ToTime())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overrides", err)
	}
	defer rows.Close()

	var result []*schedule.DateOverride
	for rows.Next() {
		override, err := scanOverride(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan override row", err)
		}
		result = append(result, override)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate override rows", err)
	}

	return result, nil
}

// Upsert stores the override, replacing any existing one for the same date.
// The date is the natural key; add-then-add is replace, not duplicate.
func (r *OverrideRepository) Upsert(ctx context.Context, tx db.DBTX, override *schedule.DateOverride) error {
	const query = `
		INSERT INTO schedule_overrides (override_date, is_open, blocked_times, reason)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		ON CONFLICT (override_date) DO UPDATE
		SET is_open = EXCLUDED.is_open,
		    blocked_times = EXCLUDED.blocked_times,
		    reason = EXCLUDED.reason`

	_, err := tx.Exec(ctx, query,
		override.Date().ToTime(),
		override.IsOpen(),
		schedule.FormatTimes(override.BlockedTimes()),
		override.Reason(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert override", err, kindFromPgError(err))
	}

	return nil
}

// Delete is idempotent: removing an absent override is a no-op.
func (r *OverrideRepository) Delete(ctx context.Context, tx db.DBTX, date schedule.Date) error {
	_, err := tx.Exec(ctx, `DELETE FROM schedule_overrides WHERE override_date = $1`, date.ToTime())
	if err != nil {
		return infra.WrapRepoErr("failed to delete override", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOverride(row rowScanner) (*schedule.DateOverride, error) {
	var (
		date    scanDate
		isOpen  bool
		blocked []string
		reason  string
	)
	if err := row.Scan(&date, &isOpen, &blocked, &reason); err != nil {
		return nil, err
	}

	times, err := parseStoredTimes(blocked)
	if err != nil {
		return nil, err
	}

	return schedule.ReconstructDateOverride(date.value, isOpen, times, reason), nil
}
