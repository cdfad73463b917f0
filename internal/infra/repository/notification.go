package repository

import (
	"context"

	"github.com/google/uuid"

	"bookwise/internal/infra"
	"bookwise/internal/infra/db"
	"bookwise/internal/usecase/commands"
)

// NotificationRepository is the outbox writer. Jobs are picked up by a
// delivery worker polling pending rows ordered by run_at.
type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, job commands.NotificationJob) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO notification_jobs (id, booking_id, kind, payload, run_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, 'pending', now())`,
		job.ID, job.BookingID, job.Kind, job.Payload, job.RunAt,
	)
	if err != nil {
		return wrapWriteErr("failed to insert notification job", err)
	}
	return nil
}

func (r *NotificationRepository) DeletePendingByBooking(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM notification_jobs
		WHERE booking_id = $1 AND status = 'pending'`,
		bookingID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pending notification jobs", err)
	}
	return nil
}
