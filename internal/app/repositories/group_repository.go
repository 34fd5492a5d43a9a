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
	"github.com/mesconnect/backend/internal/pkg/dberrors"
)

// GroupRepository handles database operations for groups, memberships and
// group messages
type GroupRepository struct {
	db *pgxpool.Pool
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create inserts a group and its creator's admin membership atomically.
// A group never exists without at least one admin.
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO groups (name, description, created_by, is_public, category, cover_pic)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`, group.Name, group.Description, group.CreatedBy, group.IsPublic, group.Category, group.CoverPic).
			Scan(&group.ID, &group.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating group: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO group_members (group_id, user_id, role)
			VALUES ($1, $2, 'admin')
		`, group.ID, group.CreatedBy)
		if err != nil {
			return fmt.Errorf("error adding group creator: %w", err)
		}
		group.MemberCount = 1
		return nil
	})
}

// GetByID retrieves a group with its creator and member count
func (r *GroupRepository) GetByID(ctx context.Context, groupID int64) (*models.Group, error) {
	query := `
		SELECT g.id, g.name, g.description, g.created_by, g.is_public, g.category,
			g.cover_pic, g.created_at,
			u.first_name, u.last_name,
			(SELECT COUNT(*) FROM group_members gm WHERE gm.group_id = g.id)
		FROM groups g
		JOIN users u ON u.id = g.created_by
		WHERE g.id = $1
	`
	var g models.Group
	var creator models.User
	err := r.db.QueryRow(ctx, query, groupID).Scan(
		&g.ID, &g.Name, &g.Description, &g.CreatedBy, &g.IsPublic, &g.Category,
		&g.CoverPic, &g.CreatedAt,
		&creator.FirstName, &creator.LastName,
		&g.MemberCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}
	creator.ID = g.CreatedBy
	g.Creator = &creator
	return &g, nil
}

// List retrieves the groups visible to the viewer, newest first, optionally
// filtered by category. Private groups appear only to their members.
func (r *GroupRepository) List(ctx context.Context, viewerID int64, category string, limit int) ([]*models.Group, error) {
	builder := squirrel.Select(
		"g.id", "g.name", "g.description", "g.created_by", "g.is_public",
		"g.category", "g.cover_pic", "g.created_at",
		"u.first_name", "u.last_name",
		"(SELECT COUNT(*) FROM group_members gm WHERE gm.group_id = g.id) AS member_count",
	).
		From("groups g").
		Join("users u ON u.id = g.created_by").
		Where("(g.is_public = TRUE OR EXISTS (SELECT 1 FROM group_members gm WHERE gm.group_id = g.id AND gm.user_id = ?))", viewerID).
		OrderBy("g.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if category != "" {
		builder = builder.Where("g.category = ?", category)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		var g models.Group
		var creator models.User
		err := rows.Scan(
			&g.ID, &g.Name, &g.Description, &g.CreatedBy, &g.IsPublic,
			&g.Category, &g.CoverPic, &g.CreatedAt,
			&creator.FirstName, &creator.LastName,
			&g.MemberCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning group: %w", err)
		}
		creator.ID = g.CreatedBy
		g.Creator = &creator
		groups = append(groups, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating groups: %w", err)
	}
	return groups, nil
}

// Join adds a user to a group as a plain member
func (r *GroupRepository) Join(ctx context.Context, groupID, userID int64) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, groupID).Scan(&exists); err != nil {
		return fmt.Errorf("error checking group: %w", err)
	}
	if !exists {
		return apperrors.ErrGroupNotFound
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO group_members (group_id, user_id, role)
		VALUES ($1, $2, 'member')
	`, groupID, userID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "group_members_group_user_key") {
			return apperrors.ErrAlreadyMember
		}
		return fmt.Errorf("error joining group: %w", err)
	}
	return nil
}

// Leave removes a user's membership
func (r *GroupRepository) Leave(ctx context.Context, groupID, userID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM group_members WHERE group_id = $1 AND user_id = $2
	`, groupID, userID)
	if err != nil {
		return fmt.Errorf("error leaving group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("membership not found")
	}
	return nil
}

// ListMembers retrieves the group roster: admins first, then moderators,
// then members, each cohort by join time
func (r *GroupRepository) ListMembers(ctx context.Context, groupID int64) ([]*models.GroupMember, error) {
	query := `
		SELECT gm.id, gm.group_id, gm.user_id, gm.role, gm.joined_at,
			u.first_name, u.last_name, u.role, u.department, u.profile_pic
		FROM group_members gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY
			CASE gm.role WHEN 'admin' THEN 0 WHEN 'moderator' THEN 1 ELSE 2 END,
			gm.joined_at
	`
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("error listing members: %w", err)
	}
	defer rows.Close()

	var members []*models.GroupMember
	for rows.Next() {
		var m models.GroupMember
		var u models.User
		err := rows.Scan(
			&m.ID, &m.GroupID, &m.UserID, &m.Role, &m.JoinedAt,
			&u.FirstName, &u.LastName, &u.Role, &u.Department, &u.ProfilePic,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning member: %w", err)
		}
		u.ID = m.UserID
		m.User = &u
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}
	return members, nil
}

// PostMessage appends a message to the group's history
func (r *GroupRepository) PostMessage(ctx context.Context, message *models.GroupMessage) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO group_messages (group_id, sender_id, message, attachment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, message.GroupID, message.SenderID, message.Body, message.Attachment).
		Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrGroupNotFound
		}
		return fmt.Errorf("error posting group message: %w", err)
	}
	return nil
}

// ListMessages retrieves the group's message history, oldest first
func (r *GroupRepository) ListMessages(ctx context.Context, groupID int64, limit int) ([]*models.GroupMessage, error) {
	query := `
		SELECT gm.id, gm.group_id, gm.sender_id, gm.message, gm.attachment, gm.created_at,
			u.first_name, u.last_name, u.profile_pic
		FROM group_messages gm
		JOIN users u ON u.id = gm.sender_id
		WHERE gm.group_id = $1
		ORDER BY gm.created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, groupID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing group messages: %w", err)
	}
	defer rows.Close()

	var messages []*models.GroupMessage
	for rows.Next() {
		var m models.GroupMessage
		var sender models.User
		err := rows.Scan(
			&m.ID, &m.GroupID, &m.SenderID, &m.Body, &m.Attachment, &m.CreatedAt,
			&sender.FirstName, &sender.LastName, &sender.ProfilePic,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning group message: %w", err)
		}
		sender.ID = m.SenderID
		m.Sender = &sender
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group messages: %w", err)
	}

	// fetched newest-first to honor the limit, returned oldest-first
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
