package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
)

type fakeJobStore struct {
	createFn                  func(context.Context, *models.JobPosting) error
	listActiveFn              func(context.Context, int) ([]*models.JobPosting, error)
	getByIDFn                 func(context.Context, int64) (*models.JobPosting, error)
	applyFn                   func(context.Context, *models.JobApplication) error
	listApplicationsFn        func(context.Context, int64) ([]*models.JobApplication, error)
	updateApplicationStatusFn func(context.Context, int64, int64, models.ApplicationStatus) error
	deactivateFn              func(context.Context, int64, int64) error
}

func (f *fakeJobStore) Create(ctx context.Context, job *models.JobPosting) error {
	if f.createFn == nil {
		job.ID = 1
		return nil
	}
	return f.createFn(ctx, job)
}

func (f *fakeJobStore) ListActive(ctx context.Context, limit int) ([]*models.JobPosting, error) {
	if f.listActiveFn == nil {
		return nil, nil
	}
	return f.listActiveFn(ctx, limit)
}

func (f *fakeJobStore) GetByID(ctx context.Context, jobID int64) (*models.JobPosting, error) {
	if f.getByIDFn == nil {
		return nil, apperrors.ErrJobNotFound
	}
	return f.getByIDFn(ctx, jobID)
}

func (f *fakeJobStore) Apply(ctx context.Context, application *models.JobApplication) error {
	if f.applyFn == nil {
		application.ID = 1
		return nil
	}
	return f.applyFn(ctx, application)
}

func (f *fakeJobStore) ListApplications(ctx context.Context, jobID int64) ([]*models.JobApplication, error) {
	if f.listApplicationsFn == nil {
		return nil, nil
	}
	return f.listApplicationsFn(ctx, jobID)
}

func (f *fakeJobStore) UpdateApplicationStatus(ctx context.Context, applicationID, reviewerID int64, status models.ApplicationStatus) error {
	if f.updateApplicationStatusFn == nil {
		return nil
	}
	return f.updateApplicationStatusFn(ctx, applicationID, reviewerID, status)
}

func (f *fakeJobStore) Deactivate(ctx context.Context, jobID, posterID int64) error {
	if f.deactivateFn == nil {
		return nil
	}
	return f.deactivateFn(ctx, jobID, posterID)
}

func alumniUserStore() *fakeUserStore {
	return &fakeUserStore{
		getByIDFn: func(_ context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleAlumni}, nil
		},
	}
}

func TestJobServiceCreate(t *testing.T) {
	t.Run("students_cannot_post", func(t *testing.T) {
		svc := NewJobService(&fakeJobStore{}, &fakeUserStore{
			getByIDFn: func(_ context.Context, id int64) (*models.User, error) {
				return &models.User{ID: id, Role: models.RoleStudent}, nil
			},
		}, zerolog.Nop())

		_, err := svc.Create(context.Background(), 3, &dto.CreateJobRequest{
			Company: "Acme", Position: "Engineer", Description: "Build things",
		})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("defaults_to_full_time", func(t *testing.T) {
		var created *models.JobPosting
		svc := NewJobService(&fakeJobStore{
			createFn: func(_ context.Context, job *models.JobPosting) error {
				created = job
				job.ID = 9
				return nil
			},
		}, alumniUserStore(), zerolog.Nop())

		job, err := svc.Create(context.Background(), 3, &dto.CreateJobRequest{
			Company: "Acme", Position: "Engineer", Description: "Build things",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(9), job.ID)
		assert.Equal(t, models.JobFullTime, created.JobType)
		assert.Equal(t, int64(3), created.PostedBy)
	})

	t.Run("keeps_explicit_job_type", func(t *testing.T) {
		var created *models.JobPosting
		svc := NewJobService(&fakeJobStore{
			createFn: func(_ context.Context, job *models.JobPosting) error {
				created = job
				return nil
			},
		}, alumniUserStore(), zerolog.Nop())

		_, err := svc.Create(context.Background(), 3, &dto.CreateJobRequest{
			Company: "Acme", Position: "Intern", Description: "Learn things", JobType: "internship",
		})
		require.NoError(t, err)
		assert.Equal(t, models.JobInternship, created.JobType)
	})
}

func TestJobServiceApply(t *testing.T) {
	t.Run("propagates_duplicate_application", func(t *testing.T) {
		svc := NewJobService(&fakeJobStore{
			applyFn: func(_ context.Context, _ *models.JobApplication) error {
				return apperrors.ErrAlreadyApplied
			},
		}, alumniUserStore(), zerolog.Nop())

		_, err := svc.Apply(context.Background(), 9, 3, &dto.ApplyJobRequest{})
		assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
	})

	t.Run("records_applicant", func(t *testing.T) {
		svc := NewJobService(&fakeJobStore{
			applyFn: func(_ context.Context, application *models.JobApplication) error {
				assert.Equal(t, int64(9), application.JobID)
				assert.Equal(t, int64(3), application.ApplicantID)
				application.ID = 15
				return nil
			},
		}, alumniUserStore(), zerolog.Nop())

		app, err := svc.Apply(context.Background(), 9, 3, &dto.ApplyJobRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(15), app.ID)
	})
}

func TestJobServiceListApplications(t *testing.T) {
	job := &models.JobPosting{ID: 9, PostedBy: 3, Company: "Acme"}

	t.Run("only_poster_may_view", func(t *testing.T) {
		svc := NewJobService(&fakeJobStore{
			getByIDFn: func(_ context.Context, _ int64) (*models.JobPosting, error) { return job, nil },
		}, alumniUserStore(), zerolog.Nop())

		_, err := svc.ListApplications(context.Background(), 9, 4)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("poster_sees_applications", func(t *testing.T) {
		svc := NewJobService(&fakeJobStore{
			getByIDFn: func(_ context.Context, _ int64) (*models.JobPosting, error) { return job, nil },
			listApplicationsFn: func(_ context.Context, jobID int64) ([]*models.JobApplication, error) {
				assert.Equal(t, int64(9), jobID)
				return []*models.JobApplication{{ID: 1, JobID: 9, ApplicantID: 5}}, nil
			},
		}, alumniUserStore(), zerolog.Nop())

		apps, err := svc.ListApplications(context.Background(), 9, 3)
		require.NoError(t, err)
		require.Len(t, apps, 1)
	})
}
