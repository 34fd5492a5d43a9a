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
	"github.com/mesconnect/backend/internal/pkg/dberrors"
)

// FriendRepository handles database operations for the friend graph.
// A single row represents the edge between two users regardless of which
// side created it, so every lookup matches both orientations.
type FriendRepository struct {
	db *pgxpool.Pool
}

// NewFriendRepository creates a new FriendRepository
func NewFriendRepository(db *pgxpool.Pool) *FriendRepository {
	return &FriendRepository{db: db}
}

// getEdge locks and returns the edge between two users in either
// orientation, or pgx.ErrNoRows
func getEdge(ctx context.Context, tx pgx.Tx, userID, otherID int64) (*models.FriendEdge, error) {
	query := `
		SELECT id, user_id, friend_id, status, created_at
		FROM friends
		WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1)
		FOR UPDATE
	`
	var edge models.FriendEdge
	err := tx.QueryRow(ctx, query, userID, otherID).Scan(
		&edge.ID, &edge.UserID, &edge.FriendID, &edge.Status, &edge.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

// SendRequest creates a pending edge and notifies the recipient. The
// existence check, insert and notification run in one transaction, so two
// concurrent requests for the same pair cannot both succeed.
func (r *FriendRepository) SendRequest(ctx context.Context, senderID, recipientID int64) (*models.FriendEdge, error) {
	if senderID == recipientID {
		return nil, apperrors.ErrSelfFriendship
	}

	var edge *models.FriendEdge
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		existing, err := getEdge(ctx, tx, senderID, recipientID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("error checking friend edge: %w", err)
		}
		if existing != nil {
			switch existing.Status {
			case models.FriendAccepted:
				return apperrors.ErrAlreadyFriends
			case models.FriendBlocked:
				return apperrors.ErrUserBlocked
			default:
				return apperrors.ErrFriendRequestPending
			}
		}

		var sender models.User
		err = tx.QueryRow(ctx, `SELECT first_name, last_name FROM users WHERE id = $1`, senderID).
			Scan(&sender.FirstName, &sender.LastName)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("error loading sender: %w", err)
		}

		edge = &models.FriendEdge{UserID: senderID, FriendID: recipientID, Status: models.FriendPending}
		err = tx.QueryRow(ctx, `
			INSERT INTO friends (user_id, friend_id, status)
			VALUES ($1, $2, 'pending')
			RETURNING id, created_at
		`, senderID, recipientID).Scan(&edge.ID, &edge.CreatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "friends_pair_key") {
				return apperrors.ErrFriendRequestPending
			}
			return fmt.Errorf("error creating friend request: %w", err)
		}

		return insertNotification(ctx, tx, recipientID,
			"New Friend Request",
			sender.FullName()+" sent you a friend request",
			models.NotificationFriendRequest, &senderID)
	})
	if err != nil {
		return nil, err
	}
	return edge, nil
}

// AcceptRequest flips a pending edge to accepted. Only the recipient of the
// request may accept it. The requester is notified in the same transaction.
func (r *FriendRepository) AcceptRequest(ctx context.Context, edgeID, userID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var edge models.FriendEdge
		err := tx.QueryRow(ctx, `
			SELECT id, user_id, friend_id, status
			FROM friends
			WHERE id = $1
			FOR UPDATE
		`, edgeID).Scan(&edge.ID, &edge.UserID, &edge.FriendID, &edge.Status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrFriendEdgeNotFound
			}
			return fmt.Errorf("error loading friend edge: %w", err)
		}

		if edge.FriendID != userID {
			return apperrors.ErrPermissionDenied
		}
		if edge.Status != models.FriendPending {
			return apperrors.NewConflictError("friend request is not pending")
		}

		if _, err := tx.Exec(ctx, `UPDATE friends SET status = 'accepted' WHERE id = $1`, edgeID); err != nil {
			return fmt.Errorf("error accepting friend request: %w", err)
		}

		var accepter models.User
		err = tx.QueryRow(ctx, `SELECT first_name, last_name FROM users WHERE id = $1`, userID).
			Scan(&accepter.FirstName, &accepter.LastName)
		if err != nil {
			return fmt.Errorf("error loading accepter: %w", err)
		}

		return insertNotification(ctx, tx, edge.UserID,
			"Friend Request Accepted",
			accepter.FullName()+" accepted your friend request",
			models.NotificationFriendRequest, &userID)
	})
}

// RejectRequest deletes a pending edge. Only the recipient may reject.
func (r *FriendRepository) RejectRequest(ctx context.Context, edgeID, userID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var edge models.FriendEdge
		err := tx.QueryRow(ctx, `
			SELECT id, user_id, friend_id, status
			FROM friends
			WHERE id = $1
			FOR UPDATE
		`, edgeID).Scan(&edge.ID, &edge.UserID, &edge.FriendID, &edge.Status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrFriendEdgeNotFound
			}
			return fmt.Errorf("error loading friend edge: %w", err)
		}

		if edge.FriendID != userID {
			return apperrors.ErrPermissionDenied
		}
		if edge.Status != models.FriendPending {
			return apperrors.NewConflictError("friend request is not pending")
		}

		if _, err := tx.Exec(ctx, `DELETE FROM friends WHERE id = $1`, edgeID); err != nil {
			return fmt.Errorf("error rejecting friend request: %w", err)
		}
		return nil
	})
}

// Remove deletes an accepted edge between the viewer and another user,
// matching either orientation
func (r *FriendRepository) Remove(ctx context.Context, userID, friendID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM friends
		WHERE status = 'accepted'
		  AND ((user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1))
	`, userID, friendID)
	if err != nil {
		return fmt.Errorf("error removing friend: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFriendEdgeNotFound
	}
	return nil
}

// Block marks the edge between the viewer and another user as blocked,
// creating the edge if none exists. Blocker becomes the edge owner.
func (r *FriendRepository) Block(ctx context.Context, userID, otherID int64) error {
	if userID == otherID {
		return apperrors.ErrSelfFriendship
	}
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		existing, err := getEdge(ctx, tx, userID, otherID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("error checking friend edge: %w", err)
		}

		if existing != nil {
			_, err = tx.Exec(ctx, `
				UPDATE friends SET status = 'blocked', user_id = $2, friend_id = $3 WHERE id = $1
			`, existing.ID, userID, otherID)
			if err != nil {
				return fmt.Errorf("error blocking user: %w", err)
			}
			return nil
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO friends (user_id, friend_id, status)
			VALUES ($1, $2, 'blocked')
		`, userID, otherID)
		if err != nil {
			return fmt.Errorf("error blocking user: %w", err)
		}
		return nil
	})
}

const friendSelect = `
	SELECT f.id, f.status, f.created_at, f.user_id = $1 AS outgoing,
		u.id, u.email, u.password, u.role, u.first_name, u.last_name, u.phone,
		u.student_id, u.department, u.year, u.skills, u.about, u.current_position,
		u.company, u.linkedin, u.profile_pic, u.is_verified, u.created_at, u.last_login
	FROM friends f
	JOIN users u ON u.id = CASE WHEN f.user_id = $1 THEN f.friend_id ELSE f.user_id END
`

func scanFriends(rows pgx.Rows) ([]*models.Friend, error) {
	var friends []*models.Friend
	for rows.Next() {
		var f models.Friend
		var u models.User
		err := rows.Scan(
			&f.EdgeID, &f.Status, &f.FriendsSince, &f.Outgoing,
			&u.ID, &u.Email, &u.Password, &u.Role, &u.FirstName, &u.LastName,
			&u.Phone, &u.StudentID, &u.Department, &u.Year, &u.Skills, &u.About,
			&u.CurrentPosition, &u.Company, &u.LinkedIn, &u.ProfilePic,
			&u.IsVerified, &u.CreatedAt, &u.LastLogin,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning friend: %w", err)
		}
		f.User = &u
		friends = append(friends, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating friends: %w", err)
	}
	return friends, nil
}

// ListFriends retrieves the viewer's accepted friends ordered by name
func (r *FriendRepository) ListFriends(ctx context.Context, userID int64) ([]*models.Friend, error) {
	query := friendSelect + `
		WHERE f.status = 'accepted' AND (f.user_id = $1 OR f.friend_id = $1)
		ORDER BY u.first_name, u.last_name
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing friends: %w", err)
	}
	defer rows.Close()
	return scanFriends(rows)
}

// ListPendingRequests retrieves incoming pending requests, newest first
func (r *FriendRepository) ListPendingRequests(ctx context.Context, userID int64) ([]*models.Friend, error) {
	query := friendSelect + `
		WHERE f.status = 'pending' AND f.friend_id = $1
		ORDER BY f.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing friend requests: %w", err)
	}
	defer rows.Close()
	return scanFriends(rows)
}

// AreFriends reports whether an accepted edge exists between two users
func (r *FriendRepository) AreFriends(ctx context.Context, userID, otherID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM friends
			WHERE status = 'accepted'
			  AND ((user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1))
		)
	`, userID, otherID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking friendship: %w", err)
	}
	return exists, nil
}

// IsBlocked reports whether a blocked edge exists between two users
func (r *FriendRepository) IsBlocked(ctx context.Context, userID, otherID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM friends
			WHERE status = 'blocked'
			  AND ((user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1))
		)
	`, userID, otherID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking block: %w", err)
	}
	return exists, nil
}
