//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt("password123"), precomputed so tests don't pay the hashing cost.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestAdmin(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO admin_users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM admin_users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestBooking(t *testing.T, db DBLike, date, timeOfDay string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO bookings (id, booking_date, booking_time, customer_name, email, phone, municipality, note)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		bookingID, date, timeOfDay, "Seed Customer", "seed@example.com", "+32 475 00 00 00", "Leuven", "")
	require.NoError(t, err)

	return bookingID
}

func CreateClosedOverride(t *testing.T, db DBLike, date, reason string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO schedule_overrides (override_date, is_open, blocked_times, reason)
		 VALUES ($1, false, '{}', $2)
		 ON CONFLICT (override_date) DO UPDATE SET is_open = false, blocked_times = '{}', reason = $2, updated_at = now()`,
		date, reason)
	require.NoError(t, err)
}

// inserts the weekly template and a default admin, matching the initial migration seed
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO schedule_template (weekday, is_active, slot_times) VALUES
		    (0, FALSE, '{}'),
		    (1, TRUE, '{09:00,10:00,11:00,12:00,13:00,14:00,15:00,16:00,17:00,18:00}'),
		    (2, TRUE, '{09:00,10:00,11:00,12:00,13:00,14:00,15:00,16:00,17:00,18:00}'),
		    (3, TRUE, '{09:00,10:00,11:00,12:00,13:00,14:00,15:00,16:00,17:00,18:00}'),
		    (4, TRUE, '{09:00,10:00,11:00,12:00,13:00,14:00,15:00,16:00,17:00,18:00}'),
		    (5, TRUE, '{09:00,10:00,11:00,12:00,13:00,14:00,15:00,16:00,17:00,18:00}'),
		    (6, TRUE, '{09:00,10:00,11:00,12:00,13:00,14:00,15:00,16:00,17:00,18:00}')
		ON CONFLICT (weekday) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO admin_users (email, password_hash, role) VALUES
		    ('admin@example.com', $1, 'admin')
		ON CONFLICT (email) DO NOTHING;
	`, testPasswordHash)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
