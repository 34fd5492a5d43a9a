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

// ConfessionRepository handles database operations for confessions and their
// likes
type ConfessionRepository struct {
	db *pgxpool.Pool
}

// NewConfessionRepository creates a new ConfessionRepository
func NewConfessionRepository(db *pgxpool.Pool) *ConfessionRepository {
	return &ConfessionRepository{db: db}
}

// Submit stores a confession pending moderation and notifies every admin in
// the same transaction. For anonymous confessions the author column is
// written as NULL: the link to the submitter is never stored.
func (r *ConfessionRepository) Submit(ctx context.Context, authorID int64, content string, isAnonymous bool, tags *string) (*models.Confession, error) {
	confession := &models.Confession{
		Content:     content,
		IsAnonymous: isAnonymous,
		Status:      models.ConfessionPending,
		Tags:        tags,
	}
	if !isAnonymous {
		confession.UserID = &authorID
	}

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO confessions (user_id, content, is_anonymous, tags)
			VALUES ($1, $2, $3, $4)
			RETURNING id, status, likes, created_at
		`, confession.UserID, content, isAnonymous, tags).
			Scan(&confession.ID, &confession.Status, &confession.Likes, &confession.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating confession: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO notifications (user_id, title, message, type, reference_id)
			SELECT id, 'Confession Pending Review', 'A new confession is awaiting moderation', 'confession', $1
			FROM users
			WHERE role = 'admin' AND is_verified = TRUE
		`, confession.ID)
		if err != nil {
			return fmt.Errorf("error notifying admins: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return confession, nil
}

const confessionSelect = `
	SELECT c.id, c.user_id, c.content, c.is_anonymous, c.status, c.likes, c.tags, c.created_at,
		u.first_name, u.last_name, u.profile_pic,
		EXISTS (SELECT 1 FROM confession_likes cl WHERE cl.confession_id = c.id AND cl.user_id = $1)
	FROM confessions c
	LEFT JOIN users u ON u.id = c.user_id
`

func scanConfessions(rows pgx.Rows) ([]*models.Confession, error) {
	var confessions []*models.Confession
	for rows.Next() {
		var c models.Confession
		var firstName, lastName, profilePic *string
		err := rows.Scan(
			&c.ID, &c.UserID, &c.Content, &c.IsAnonymous, &c.Status, &c.Likes,
			&c.Tags, &c.CreatedAt,
			&firstName, &lastName, &profilePic,
			&c.ViewerLiked,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning confession: %w", err)
		}
		if c.UserID != nil && firstName != nil && lastName != nil {
			c.Author = &models.User{
				ID:         *c.UserID,
				FirstName:  *firstName,
				LastName:   *lastName,
				ProfilePic: profilePic,
			}
		}
		confessions = append(confessions, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating confessions: %w", err)
	}
	return confessions, nil
}

// List retrieves confessions, newest first, optionally filtered by status.
// An empty status returns every confession.
func (r *ConfessionRepository) List(ctx context.Context, viewerID int64, status models.ConfessionStatus, page, pageSize int) ([]*models.Confession, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM confessions WHERE ($1::text = '' OR status = $1)
	`, string(status)).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting confessions: %w", err)
	}

	offset := (page - 1) * pageSize
	rows, err := r.db.Query(ctx, confessionSelect+`
		WHERE ($2::text = '' OR c.status = $2)
		ORDER BY c.created_at DESC
		LIMIT $3 OFFSET $4
	`, viewerID, string(status), pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing confessions: %w", err)
	}
	defer rows.Close()

	confessions, err := scanConfessions(rows)
	if err != nil {
		return nil, 0, err
	}
	return confessions, total, nil
}

// ListPending retrieves confessions awaiting moderation, oldest first
func (r *ConfessionRepository) ListPending(ctx context.Context, viewerID int64) ([]*models.Confession, error) {
	rows, err := r.db.Query(ctx, confessionSelect+`
		WHERE c.status = 'pending'
		ORDER BY c.created_at
	`, viewerID)
	if err != nil {
		return nil, fmt.Errorf("error listing pending confessions: %w", err)
	}
	defer rows.Close()
	return scanConfessions(rows)
}

// ToggleLike inserts or deletes the viewer's like and recomputes the
// confession's like counter from the likes table, all in one transaction.
// The counter is always the count of like rows, never an increment.
func (r *ConfessionRepository) ToggleLike(ctx context.Context, confessionID, userID int64) (liked bool, likes int, err error) {
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `
			SELECT id FROM confessions WHERE id = $1 FOR UPDATE
		`, confessionID).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrConfessionNotFound
			}
			return fmt.Errorf("error loading confession: %w", err)
		}

		tag, err := tx.Exec(ctx, `
			DELETE FROM confession_likes WHERE confession_id = $1 AND user_id = $2
		`, confessionID, userID)
		if err != nil {
			return fmt.Errorf("error removing like: %w", err)
		}
		if tag.RowsAffected() == 0 {
			_, err = tx.Exec(ctx, `
				INSERT INTO confession_likes (confession_id, user_id)
				VALUES ($1, $2)
			`, confessionID, userID)
			if err != nil {
				return fmt.Errorf("error adding like: %w", err)
			}
			liked = true
		}

		err = tx.QueryRow(ctx, `
			UPDATE confessions
			SET likes = (SELECT COUNT(*) FROM confession_likes WHERE confession_id = $1)
			WHERE id = $1
			RETURNING likes
		`, confessionID).Scan(&likes)
		if err != nil {
			return fmt.Errorf("error recounting likes: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return liked, likes, nil
}

// Moderate moves a pending confession to approved or rejected. Identified
// authors are notified of the outcome in the same transaction; anonymous
// submissions have no author to notify.
func (r *ConfessionRepository) Moderate(ctx context.Context, confessionID int64, status models.ConfessionStatus) error {
	if status != models.ConfessionApproved && status != models.ConfessionRejected {
		return apperrors.ErrInvalidStatusTransition
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var current models.ConfessionStatus
		var authorID *int64
		err := tx.QueryRow(ctx, `
			SELECT status, user_id FROM confessions WHERE id = $1 FOR UPDATE
		`, confessionID).Scan(&current, &authorID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrConfessionNotFound
			}
			return fmt.Errorf("error loading confession: %w", err)
		}
		// approved is terminal; rejected may only be restored to approved
		switch current {
		case models.ConfessionApproved:
			return apperrors.ErrInvalidStatusTransition
		case models.ConfessionRejected:
			if status != models.ConfessionApproved {
				return apperrors.ErrInvalidStatusTransition
			}
		}

		if _, err := tx.Exec(ctx, `UPDATE confessions SET status = $2 WHERE id = $1`, confessionID, status); err != nil {
			return fmt.Errorf("error moderating confession: %w", err)
		}

		if authorID == nil {
			return nil
		}
		title := "Confession Approved"
		message := "Your confession has been approved and is now visible"
		if status == models.ConfessionRejected {
			title = "Confession Rejected"
			message = "Your confession was not approved"
		}
		return insertNotification(ctx, tx, *authorID, title, message, models.NotificationConfession, &confessionID)
	})
}
