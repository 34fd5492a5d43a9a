package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/db"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
)

// ContributionRepository handles database operations for alumni
// contributions
type ContributionRepository struct {
	db *pgxpool.Pool
}

// NewContributionRepository creates a new ContributionRepository
func NewContributionRepository(db *pgxpool.Pool) *ContributionRepository {
	return &ContributionRepository{db: db}
}

// Create inserts a contribution offer pending review and notifies every
// admin in the same transaction
func (r *ContributionRepository) Create(ctx context.Context, contribution *models.Contribution) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO contributions (
				alumni_id, type, title, description, amount, hours, skills_required, deadline
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, status, created_at
		`,
			contribution.AlumniID, contribution.Type, contribution.Title,
			contribution.Description, contribution.Amount, contribution.Hours,
			contribution.SkillsRequired, contribution.Deadline,
		).Scan(&contribution.ID, &contribution.Status, &contribution.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating contribution: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO notifications (user_id, title, message, type, reference_id)
			SELECT id, 'New Contribution Offer', $1, 'system', $2
			FROM users
			WHERE role = 'admin'
		`, "A new contribution offer is awaiting review: "+contribution.Title, contribution.ID)
		if err != nil {
			return fmt.Errorf("error notifying admins: %w", err)
		}
		return nil
	})
}

const contributionSelect = `
	SELECT c.id, c.alumni_id, c.type, c.title, c.description, c.amount, c.hours,
		c.status, c.skills_required, c.deadline, c.created_at,
		u.first_name, u.last_name, u.company, u.current_position
	FROM contributions c
	JOIN users u ON u.id = c.alumni_id
`

func scanContributions(rows pgx.Rows) ([]*models.Contribution, error) {
	var contributions []*models.Contribution
	for rows.Next() {
		var c models.Contribution
		var alumni models.User
		err := rows.Scan(
			&c.ID, &c.AlumniID, &c.Type, &c.Title, &c.Description, &c.Amount,
			&c.Hours, &c.Status, &c.SkillsRequired, &c.Deadline, &c.CreatedAt,
			&alumni.FirstName, &alumni.LastName, &alumni.Company, &alumni.CurrentPosition,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning contribution: %w", err)
		}
		alumni.ID = c.AlumniID
		c.Alumni = &alumni
		contributions = append(contributions, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contributions: %w", err)
	}
	return contributions, nil
}

// List retrieves contributions newest first, optionally filtered by type
// and status
func (r *ContributionRepository) List(ctx context.Context, ctype models.ContributionType, status models.ContributionStatus, limit int) ([]*models.Contribution, error) {
	builder := squirrel.Select(
		"c.id", "c.alumni_id", "c.type", "c.title", "c.description", "c.amount",
		"c.hours", "c.status", "c.skills_required", "c.deadline", "c.created_at",
		"u.first_name", "u.last_name", "u.company", "u.current_position",
	).
		From("contributions c").
		Join("users u ON u.id = c.alumni_id").
		OrderBy("c.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if ctype != "" {
		builder = builder.Where("c.type = ?", ctype)
	}
	if status != "" {
		builder = builder.Where("c.status = ?", status)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing contributions: %w", err)
	}
	defer rows.Close()
	return scanContributions(rows)
}

// ListByAlumni retrieves one alumnus's contributions, newest first
func (r *ContributionRepository) ListByAlumni(ctx context.Context, alumniID int64) ([]*models.Contribution, error) {
	rows, err := r.db.Query(ctx, contributionSelect+`
		WHERE c.alumni_id = $1
		ORDER BY c.created_at DESC
	`, alumniID)
	if err != nil {
		return nil, fmt.Errorf("error listing contributions: %w", err)
	}
	defer rows.Close()
	return scanContributions(rows)
}

// UpdateStatus moves a contribution through its review lifecycle and
// notifies the alumnus in the same transaction. Pending may be approved or
// rejected, approved may be completed or rejected, and completed and
// rejected are terminal.
func (r *ContributionRepository) UpdateStatus(ctx context.Context, contributionID int64, status models.ContributionStatus) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var current models.ContributionStatus
		var alumniID int64
		var title string
		err := tx.QueryRow(ctx, `
			SELECT status, alumni_id, title FROM contributions WHERE id = $1 FOR UPDATE
		`, contributionID).Scan(&current, &alumniID, &title)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrResourceNotFound
			}
			return fmt.Errorf("error loading contribution: %w", err)
		}

		valid := false
		switch current {
		case models.ContributionPending:
			valid = status == models.ContributionApproved || status == models.ContributionRejected
		case models.ContributionApproved:
			valid = status == models.ContributionCompleted || status == models.ContributionRejected
		}
		if !valid {
			return apperrors.ErrInvalidStatusTransition
		}

		if _, err := tx.Exec(ctx, `UPDATE contributions SET status = $2 WHERE id = $1`, contributionID, status); err != nil {
			return fmt.Errorf("error updating contribution status: %w", err)
		}

		return insertNotification(ctx, tx, alumniID,
			"Contribution "+statusLabel(status),
			"Your contribution '"+title+"' is now "+string(status),
			models.NotificationSystem, &contributionID)
	})
}

func statusLabel(status models.ContributionStatus) string {
	switch status {
	case models.ContributionApproved:
		return "Approved"
	case models.ContributionCompleted:
		return "Completed"
	case models.ContributionRejected:
		return "Rejected"
	default:
		return "Updated"
	}
}
