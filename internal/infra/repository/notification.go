package repository

import (
	"context"
	"time"

	"renobooking/internal/infra"
	"renobooking/internal/infra/db"

	"github.com/google/uuid"
)

// NotificationRepository writes outbox rows for the external mail dispatcher.
// Jobs are inserted in the same transaction as the booking they announce so
// a committed booking always has its notification queued.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, uuid.New(), kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}
