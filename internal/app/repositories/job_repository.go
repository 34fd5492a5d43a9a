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

// JobRepository handles database operations for job postings and
// applications
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a job posting and fans a notification out to every student
// in the same transaction
func (r *JobRepository) Create(ctx context.Context, job *models.JobPosting) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO job_postings (
				posted_by, company, position, description, requirements, location,
				salary_range, job_type, application_link, deadline
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, is_active, created_at
		`,
			job.PostedBy, job.Company, job.Position, job.Description,
			job.Requirements, job.Location, job.SalaryRange, job.JobType,
			job.ApplicationLink, job.Deadline,
		).Scan(&job.ID, &job.IsActive, &job.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating job posting: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO notifications (user_id, title, message, type, reference_id)
			SELECT id, 'New Job Opportunity', $1, 'system', $2
			FROM users
			WHERE role = 'student' AND is_verified = TRUE
		`, job.Position+" at "+job.Company, job.ID)
		if err != nil {
			return fmt.Errorf("error notifying students: %w", err)
		}
		return nil
	})
}

const jobSelect = `
	SELECT j.id, j.posted_by, j.company, j.position, j.description, j.requirements,
		j.location, j.salary_range, j.job_type, j.application_link, j.is_active,
		j.deadline, j.created_at,
		u.first_name, u.last_name, u.company, u.current_position
	FROM job_postings j
	JOIN users u ON u.id = j.posted_by
`

func scanJobs(rows pgx.Rows) ([]*models.JobPosting, error) {
	var jobs []*models.JobPosting
	for rows.Next() {
		var j models.JobPosting
		var poster models.User
		err := rows.Scan(
			&j.ID, &j.PostedBy, &j.Company, &j.Position, &j.Description,
			&j.Requirements, &j.Location, &j.SalaryRange, &j.JobType,
			&j.ApplicationLink, &j.IsActive, &j.Deadline, &j.CreatedAt,
			&poster.FirstName, &poster.LastName, &poster.Company, &poster.CurrentPosition,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning job posting: %w", err)
		}
		poster.ID = j.PostedBy
		j.Poster = &poster
		jobs = append(jobs, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job postings: %w", err)
	}
	return jobs, nil
}

// ListActive retrieves active postings whose deadline has not passed,
// newest first
func (r *JobRepository) ListActive(ctx context.Context, limit int) ([]*models.JobPosting, error) {
	rows, err := r.db.Query(ctx, jobSelect+`
		WHERE j.is_active = TRUE AND (j.deadline IS NULL OR j.deadline >= NOW())
		ORDER BY j.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing job postings: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

// GetByID retrieves one job posting
func (r *JobRepository) GetByID(ctx context.Context, jobID int64) (*models.JobPosting, error) {
	rows, err := r.db.Query(ctx, jobSelect+` WHERE j.id = $1`, jobID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving job posting: %w", err)
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, apperrors.ErrJobNotFound
	}
	return jobs[0], nil
}

// Apply records an application and notifies the poster in one transaction.
// A user can apply to a posting once.
func (r *JobRepository) Apply(ctx context.Context, application *models.JobApplication) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var job models.JobPosting
		err := tx.QueryRow(ctx, `
			SELECT posted_by, position, company
			FROM job_postings
			WHERE id = $1
			  AND is_active = TRUE
			  AND (deadline IS NULL OR deadline >= NOW())
		`, application.JobID).Scan(&job.PostedBy, &job.Position, &job.Company)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrJobNotFound
			}
			return fmt.Errorf("error loading job posting: %w", err)
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO job_applications (job_id, applicant_id, cover_letter, resume)
			VALUES ($1, $2, $3, $4)
			RETURNING id, status, applied_at
		`,
			application.JobID, application.ApplicantID,
			application.CoverLetter, application.Resume,
		).Scan(&application.ID, &application.Status, &application.AppliedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "job_applications_job_applicant_key") {
				return apperrors.ErrAlreadyApplied
			}
			return fmt.Errorf("error creating application: %w", err)
		}

		var applicant models.User
		err = tx.QueryRow(ctx, `SELECT first_name, last_name FROM users WHERE id = $1`, application.ApplicantID).
			Scan(&applicant.FirstName, &applicant.LastName)
		if err != nil {
			return fmt.Errorf("error loading applicant: %w", err)
		}

		return insertNotification(ctx, tx, job.PostedBy,
			"New Job Application",
			applicant.FullName()+" applied for "+job.Position+" at "+job.Company,
			models.NotificationSystem, &application.JobID)
	})
}

// ListApplications retrieves the applications for a posting, newest first
func (r *JobRepository) ListApplications(ctx context.Context, jobID int64) ([]*models.JobApplication, error) {
	query := `
		SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.resume, a.status, a.applied_at,
			u.first_name, u.last_name, u.email, u.department, u.year, u.skills
		FROM job_applications a
		JOIN users u ON u.id = a.applicant_id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC
	`
	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.JobApplication
	for rows.Next() {
		var a models.JobApplication
		var applicant models.User
		err := rows.Scan(
			&a.ID, &a.JobID, &a.ApplicantID, &a.CoverLetter, &a.Resume, &a.Status, &a.AppliedAt,
			&applicant.FirstName, &applicant.LastName, &applicant.Email,
			&applicant.Department, &applicant.Year, &applicant.Skills,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}
		applicant.ID = a.ApplicantID
		a.Applicant = &applicant
		applications = append(applications, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}
	return applications, nil
}

// UpdateApplicationStatus moves one application through review and notifies
// the applicant in the same transaction. Only the job's poster may review.
func (r *JobRepository) UpdateApplicationStatus(ctx context.Context, applicationID, reviewerID int64, status models.ApplicationStatus) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var applicantID, postedBy int64
		var position, company string
		err := tx.QueryRow(ctx, `
			SELECT a.applicant_id, j.posted_by, j.position, j.company
			FROM job_applications a
			JOIN job_postings j ON j.id = a.job_id
			WHERE a.id = $1
			FOR UPDATE OF a
		`, applicationID).Scan(&applicantID, &postedBy, &position, &company)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrResourceNotFound
			}
			return fmt.Errorf("error loading application: %w", err)
		}
		if postedBy != reviewerID {
			return apperrors.ErrPermissionDenied
		}

		if _, err := tx.Exec(ctx, `UPDATE job_applications SET status = $2 WHERE id = $1`, applicationID, status); err != nil {
			return fmt.Errorf("error updating application status: %w", err)
		}

		return insertNotification(ctx, tx, applicantID,
			"Application Update",
			"Your application for "+position+" at "+company+" is now "+string(status),
			models.NotificationSystem, &applicationID)
	})
}

// Deactivate closes a posting to new applications. Only the poster may
// close it.
func (r *JobRepository) Deactivate(ctx context.Context, jobID, posterID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE job_postings SET is_active = FALSE WHERE id = $1 AND posted_by = $2
	`, jobID, posterID)
	if err != nil {
		return fmt.Errorf("error deactivating job posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}
