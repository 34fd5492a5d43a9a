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

const userColumns = `id, email, password, role, first_name, last_name, phone, student_id,
		department, year, skills, about, current_position, company, linkedin,
		profile_pic, is_verified, created_at, last_login`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.Role, &u.FirstName, &u.LastName,
		&u.Phone, &u.StudentID, &u.Department, &u.Year, &u.Skills, &u.About,
		&u.CurrentPosition, &u.Company, &u.LinkedIn, &u.ProfilePic,
		&u.IsVerified, &u.CreatedAt, &u.LastLogin,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and a welcome notification in one transaction,
// returning the new user's ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO users (
				email, password, role, first_name, last_name, phone, student_id, year, is_verified
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query,
			user.Email,
			user.Password,
			user.Role,
			user.FirstName,
			user.LastName,
			user.Phone,
			user.StudentID,
			user.Year,
			user.IsVerified,
		).Scan(&user.ID, &user.CreatedAt)

		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating user: %w", err)
		}

		return insertNotification(ctx, tx, user.ID,
			"Welcome to MES-Connect!",
			"Your account has been created successfully.",
			models.NotificationSystem, nil)
	})
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}
	return user, nil
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// UpdateLastLogin stamps the user's last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = NOW() WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// UpdateProfile applies the non-nil fields to the user's profile
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, req *models.ProfileUpdate) error {
	builder := squirrel.Update("users").
		Where("id = ?", userID).
		PlaceholderFormat(squirrel.Dollar)

	set := 0
	apply := func(column string, value *string) {
		if value != nil {
			builder = builder.Set(column, *value)
			set++
		}
	}
	apply("first_name", req.FirstName)
	apply("last_name", req.LastName)
	apply("phone", req.Phone)
	apply("department", req.Department)
	apply("year", req.Year)
	apply("skills", req.Skills)
	apply("about", req.About)
	apply("current_position", req.CurrentPosition)
	apply("company", req.Company)
	apply("linkedin", req.LinkedIn)
	apply("profile_pic", req.ProfilePic)

	if set == 0 {
		return nil
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Search retrieves users matching the query and role filter, excluding the
// viewer, ordered by name
func (r *UserRepository) Search(ctx context.Context, viewerID int64, query string, role models.Role, page, pageSize int) ([]*models.User, int64, error) {
	builder := squirrel.Select(userColumns).
		From("users").
		Where("id <> ?", viewerID).
		Where("is_verified = TRUE").
		OrderBy("first_name", "last_name").
		PlaceholderFormat(squirrel.Dollar)

	countBuilder := squirrel.Select("COUNT(*)").
		From("users").
		Where("id <> ?", viewerID).
		Where("is_verified = TRUE").
		PlaceholderFormat(squirrel.Dollar)

	if query != "" {
		pattern := "%" + query + "%"
		cond := squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"department": pattern},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}
	if role != "" {
		builder = builder.Where("role = ?", role)
		countBuilder = countBuilder.Where("role = ?", role)
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting users: %w", err)
	}

	offset := (page - 1) * pageSize
	builder = builder.Limit(uint64(pageSize)).Offset(uint64(offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error searching users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating users: %w", err)
	}

	return users, total, nil
}

// Deactivate clears the user's verified flag and revokes their refresh
// tokens in one transaction. A deactivated user cannot log in or refresh,
// and drops out of search results.
func (r *UserRepository) Deactivate(ctx context.Context, userID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE users SET is_verified = FALSE WHERE id = $1`, userID)
		if err != nil {
			return fmt.Errorf("error deactivating user: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		_, err = tx.Exec(ctx, `UPDATE refresh_tokens SET revoked = TRUE WHERE user_id = $1`, userID)
		if err != nil {
			return fmt.Errorf("error revoking tokens: %w", err)
		}
		return nil
	})
}

// PlatformStats aggregates platform-wide counters
func (r *UserRepository) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	stats := &models.PlatformStats{}

	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM friends WHERE status = 'accepted'),
			(SELECT COUNT(*) FROM messages),
			(SELECT COUNT(*) FROM groups),
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM confessions)
	`
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.TotalFriendships,
		&stats.TotalMessages,
		&stats.TotalGroups,
		&stats.TotalEvents,
		&stats.TotalConfessions,
	)
	if err != nil {
		return nil, fmt.Errorf("error aggregating platform stats: %w", err)
	}

	roleRows, err := r.db.Query(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role ORDER BY role`)
	if err != nil {
		return nil, fmt.Errorf("error counting users by role: %w", err)
	}
	defer roleRows.Close()
	for roleRows.Next() {
		var rc models.RoleCount
		if err := roleRows.Scan(&rc.Role, &rc.Count); err != nil {
			return nil, fmt.Errorf("error scanning role count: %w", err)
		}
		stats.UsersByRole = append(stats.UsersByRole, rc)
	}
	if err := roleRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role counts: %w", err)
	}

	growthRows, err := r.db.Query(ctx, `
		SELECT TO_CHAR(created_at, 'YYYY-MM') AS month, COUNT(*)
		FROM users
		WHERE created_at >= NOW() - INTERVAL '12 months'
		GROUP BY month
		ORDER BY month
	`)
	if err != nil {
		return nil, fmt.Errorf("error aggregating user growth: %w", err)
	}
	defer growthRows.Close()
	for growthRows.Next() {
		var gp models.GrowthPoint
		if err := growthRows.Scan(&gp.Month, &gp.Count); err != nil {
			return nil, fmt.Errorf("error scanning growth point: %w", err)
		}
		stats.UserGrowth = append(stats.UserGrowth, gp)
	}
	if err := growthRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating growth points: %w", err)
	}

	return stats, nil
}
