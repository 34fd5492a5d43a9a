package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
	"github.com/mesconnect/backend/internal/pkg/helpers"
)

// insertNotification appends one inbox row inside the caller's transaction.
// Fan-out writes always ride the transaction of the operation that caused
// them, so a rolled-back operation leaves no notification behind.
func insertNotification(ctx context.Context, tx pgx.Tx, userID int64, title, message string, ntype models.NotificationType, referenceID *int64) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO notifications (user_id, title, message, type, reference_id)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, title, message, ntype, referenceID)
	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

// NotificationRepository handles database operations for the notification inbox
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// ListForUser retrieves the user's notifications, newest first, optionally
// restricted to unread ones
func (r *NotificationRepository) ListForUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]*models.Notification, error) {
	if limit <= 0 {
		limit = helpers.DefaultPageSize
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, message, type, is_read, reference_id, created_at
		FROM notifications
		WHERE user_id = $1 AND (NOT $2 OR is_read = FALSE)
		ORDER BY created_at DESC
		LIMIT $3
	`, userID, unreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.ReferenceID, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification: %w", err)
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks one notification as read. The update is scoped to the
// owner, so a user cannot mark another user's notification.
func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID, userID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2
	`, notificationID, userID)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead marks every unread notification of the user as read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE
	`, userID)
	if err != nil {
		return 0, fmt.Errorf("error marking notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UnreadCount returns the number of unread notifications for a user
func (r *NotificationRepository) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}
	return count, nil
}
