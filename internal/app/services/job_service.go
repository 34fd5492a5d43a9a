package services

import (
	"context"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// JobService handles job postings and applications
type JobService struct {
	jobRepo  JobStore
	userRepo UserStore
	logger   zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobRepo JobStore, userRepo UserStore, logger zerolog.Logger) *JobService {
	return &JobService{jobRepo: jobRepo, userRepo: userRepo, logger: logger}
}

// Create publishes a job posting. Alumni and admins may post.
func (s *JobService) Create(ctx context.Context, posterID int64, req *dto.CreateJobRequest) (*models.JobPosting, error) {
	user, err := s.userRepo.GetByID(ctx, posterID)
	if err != nil {
		return nil, err
	}
	if user.Role == models.RoleStudent {
		return nil, apperrors.NewForbiddenError("students cannot post jobs")
	}

	jobType := models.JobType(req.JobType)
	if jobType == "" {
		jobType = models.JobFullTime
	}

	job := &models.JobPosting{
		PostedBy:        posterID,
		Company:         req.Company,
		Position:        req.Position,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		SalaryRange:     req.SalaryRange,
		JobType:         jobType,
		ApplicationLink: req.ApplicationLink,
		Deadline:        req.Deadline,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("jobId", job.ID).Str("company", job.Company).Msg("Job posted")
	return job, nil
}

// ListActive retrieves open postings, newest first
func (s *JobService) ListActive(ctx context.Context, limit int) ([]*models.JobPosting, error) {
	return s.jobRepo.ListActive(ctx, limit)
}

// GetByID retrieves one posting
func (s *JobService) GetByID(ctx context.Context, jobID int64) (*models.JobPosting, error) {
	return s.jobRepo.GetByID(ctx, jobID)
}

// Apply records the user's application to a posting
func (s *JobService) Apply(ctx context.Context, jobID, applicantID int64, req *dto.ApplyJobRequest) (*models.JobApplication, error) {
	application := &models.JobApplication{
		JobID:       jobID,
		ApplicantID: applicantID,
		CoverLetter: req.CoverLetter,
		Resume:      req.Resume,
	}
	if err := s.jobRepo.Apply(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

// ListApplications retrieves a posting's applications. Only the poster may
// view them.
func (s *JobService) ListApplications(ctx context.Context, jobID, viewerID int64) ([]*models.JobApplication, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedBy != viewerID {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.jobRepo.ListApplications(ctx, jobID)
}

// UpdateApplicationStatus moves an application through review
func (s *JobService) UpdateApplicationStatus(ctx context.Context, applicationID, reviewerID int64, status models.ApplicationStatus) error {
	return s.jobRepo.UpdateApplicationStatus(ctx, applicationID, reviewerID, status)
}

// Deactivate closes a posting to new applications
func (s *JobService) Deactivate(ctx context.Context, jobID, posterID int64) error {
	return s.jobRepo.Deactivate(ctx, jobID, posterID)
}
