package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/db"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create inserts an announcement and fans a notification out to every user
// in the target audience, all in one transaction. TargetRole nil or "all"
// reaches everyone.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO announcements (title, content, created_by, target_role, priority)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, is_active, created_at
		`,
			announcement.Title, announcement.Content, announcement.CreatedBy,
			announcement.TargetRole, announcement.Priority,
		).Scan(&announcement.ID, &announcement.IsActive, &announcement.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating announcement: %w", err)
		}

		fanout := `
			INSERT INTO notifications (user_id, title, message, type, reference_id)
			SELECT id, $1, $2, 'announcement', $3
			FROM users
			WHERE is_verified = TRUE AND id <> $4
		`
		args := []any{announcement.Title, announcement.Content, announcement.ID, announcement.CreatedBy}
		if announcement.TargetRole != nil && *announcement.TargetRole != "all" {
			fanout += ` AND role = $5`
			args = append(args, *announcement.TargetRole)
		}

		if _, err := tx.Exec(ctx, fanout, args...); err != nil {
			return fmt.Errorf("error fanning out announcement: %w", err)
		}
		return nil
	})
}

// ListForRole retrieves active announcements visible to the given role,
// most urgent first, then newest first
func (r *AnnouncementRepository) ListForRole(ctx context.Context, role models.Role, limit int) ([]*models.Announcement, error) {
	query := `
		SELECT a.id, a.title, a.content, a.created_by, a.target_role, a.priority,
			a.is_active, a.created_at,
			u.first_name, u.last_name
		FROM announcements a
		JOIN users u ON u.id = a.created_by
		WHERE a.is_active = TRUE
		  AND (a.target_role IS NULL OR a.target_role = 'all' OR a.target_role = $1)
		ORDER BY
			CASE a.priority
				WHEN 'urgent' THEN 0
				WHEN 'high' THEN 1
				WHEN 'normal' THEN 2
				ELSE 3
			END,
			a.created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, role, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		var a models.Announcement
		var author models.User
		err := rows.Scan(
			&a.ID, &a.Title, &a.Content, &a.CreatedBy, &a.TargetRole, &a.Priority,
			&a.IsActive, &a.CreatedAt,
			&author.FirstName, &author.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning announcement: %w", err)
		}
		author.ID = a.CreatedBy
		a.Author = &author
		announcements = append(announcements, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating announcements: %w", err)
	}
	return announcements, nil
}

// Deactivate hides an announcement from listings without deleting it
func (r *AnnouncementRepository) Deactivate(ctx context.Context, announcementID int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE announcements SET is_active = FALSE WHERE id = $1`, announcementID)
	if err != nil {
		return fmt.Errorf("error deactivating announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}
