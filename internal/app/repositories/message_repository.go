package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/db"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
)

// MessageRepository handles database operations for direct messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// Send persists a message and notifies the receiver in one transaction
func (r *MessageRepository) Send(ctx context.Context, senderID, receiverID int64, body string) (*models.Message, error) {
	var message *models.Message
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var sender models.User
		err := tx.QueryRow(ctx, `SELECT first_name, last_name FROM users WHERE id = $1`, senderID).
			Scan(&sender.FirstName, &sender.LastName)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("error loading sender: %w", err)
		}

		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, receiverID).Scan(&exists); err != nil {
			return fmt.Errorf("error checking receiver: %w", err)
		}
		if !exists {
			return apperrors.ErrUserNotFound
		}

		message = &models.Message{SenderID: senderID, ReceiverID: receiverID, Body: body}
		err = tx.QueryRow(ctx, `
			INSERT INTO messages (sender_id, receiver_id, message)
			VALUES ($1, $2, $3)
			RETURNING id, is_read, created_at
		`, senderID, receiverID, body).Scan(&message.ID, &message.IsRead, &message.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating message: %w", err)
		}

		return insertNotification(ctx, tx, receiverID,
			"New Message",
			"New message from "+sender.FullName(),
			models.NotificationMessage, &senderID)
	})
	if err != nil {
		return nil, err
	}
	return message, nil
}

// GetThread retrieves the conversation between two users, oldest first, and
// marks the messages addressed to the viewer as read in the same
// transaction. Reading the thread is what flips the unread flags.
func (r *MessageRepository) GetThread(ctx context.Context, viewerID, otherID int64, limit int) ([]*models.Message, error) {
	var messages []*models.Message
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT m.id, m.sender_id, m.receiver_id, m.message, m.is_read, m.created_at,
				u.first_name, u.last_name, u.profile_pic
			FROM messages m
			JOIN users u ON u.id = m.sender_id
			WHERE (m.sender_id = $1 AND m.receiver_id = $2)
			   OR (m.sender_id = $2 AND m.receiver_id = $1)
			ORDER BY m.created_at DESC
			LIMIT $3
		`, viewerID, otherID, limit)
		if err != nil {
			return fmt.Errorf("error retrieving thread: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var m models.Message
			var sender models.User
			err := rows.Scan(
				&m.ID, &m.SenderID, &m.ReceiverID, &m.Body, &m.IsRead, &m.CreatedAt,
				&sender.FirstName, &sender.LastName, &sender.ProfilePic,
			)
			if err != nil {
				return fmt.Errorf("error scanning message: %w", err)
			}
			sender.ID = m.SenderID
			m.Sender = &sender
			messages = append(messages, &m)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating messages: %w", err)
		}

		// fetched newest-first to honor the limit, returned oldest-first
		for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
			messages[i], messages[j] = messages[j], messages[i]
		}

		_, err = tx.Exec(ctx, `
			UPDATE messages SET is_read = TRUE
			WHERE sender_id = $2 AND receiver_id = $1 AND is_read = FALSE
		`, viewerID, otherID)
		if err != nil {
			return fmt.Errorf("error marking thread read: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// ListConversations aggregates one row per counterpart the viewer has
// exchanged messages with, most recent activity first, with unread counts
func (r *MessageRepository) ListConversations(ctx context.Context, viewerID int64) ([]*models.Conversation, error) {
	query := `
		SELECT
			u.id, u.first_name, u.last_name, u.role, u.department, u.profile_pic,
			last.message, last.created_at,
			COALESCE(unread.count, 0)
		FROM (
			SELECT
				CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS counterpart_id,
				MAX(created_at) AS last_time
			FROM messages
			WHERE sender_id = $1 OR receiver_id = $1
			GROUP BY counterpart_id
		) conv
		JOIN users u ON u.id = conv.counterpart_id
		JOIN LATERAL (
			SELECT message, created_at
			FROM messages
			WHERE (sender_id = $1 AND receiver_id = conv.counterpart_id)
			   OR (sender_id = conv.counterpart_id AND receiver_id = $1)
			ORDER BY created_at DESC
			LIMIT 1
		) last ON TRUE
		LEFT JOIN (
			SELECT sender_id, COUNT(*) AS count
			FROM messages
			WHERE receiver_id = $1 AND is_read = FALSE
			GROUP BY sender_id
		) unread ON unread.sender_id = conv.counterpart_id
		ORDER BY last.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, viewerID)
	if err != nil {
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}
	defer rows.Close()

	var conversations []*models.Conversation
	for rows.Next() {
		var c models.Conversation
		var u models.User
		err := rows.Scan(
			&u.ID, &u.FirstName, &u.LastName, &u.Role, &u.Department, &u.ProfilePic,
			&c.LastMessage, &c.LastMessageTime, &c.UnreadCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning conversation: %w", err)
		}
		c.Counterpart = &u
		conversations = append(conversations, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conversations: %w", err)
	}
	return conversations, nil
}

// UnreadTotal returns the viewer's total unread message count
func (r *MessageRepository) UnreadTotal(ctx context.Context, viewerID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM messages WHERE receiver_id = $1 AND is_read = FALSE
	`, viewerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting unread messages: %w", err)
	}
	return count, nil
}
