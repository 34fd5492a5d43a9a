package dto

import (
	"time"

	"github.com/mesconnect/backend/internal/app/models"
)

// CreateJobRequest represents the request body for posting a job
type CreateJobRequest struct {
	Company         string     `json:"company" binding:"required,min=2,max=200"`
	Position        string     `json:"position" binding:"required,min=2,max=200"`
	Description     string     `json:"description" binding:"required,max=4000"`
	Requirements    *string    `json:"requirements,omitempty" binding:"omitempty,max=2000"`
	Location        *string    `json:"location,omitempty"`
	SalaryRange     *string    `json:"salaryRange,omitempty"`
	JobType         string     `json:"jobType" binding:"omitempty,oneof=full_time part_time internship contract" example:"full_time"`
	ApplicationLink *string    `json:"applicationLink,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
}

// ApplyJobRequest represents the request body for applying to a job
type ApplyJobRequest struct {
	CoverLetter *string `json:"coverLetter,omitempty" binding:"omitempty,max=4000"`
	Resume      *string `json:"resume,omitempty"`
}

// UpdateApplicationStatusRequest represents the request body for reviewing an application
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=reviewed accepted rejected" example:"reviewed"`
}

// JobResponse represents a job posting as exposed by the API
type JobResponse struct {
	ID              int64          `json:"id"`
	PostedBy        int64          `json:"postedBy"`
	Company         string         `json:"company"`
	Position        string         `json:"position"`
	Description     string         `json:"description"`
	Requirements    *string        `json:"requirements,omitempty"`
	Location        *string        `json:"location,omitempty"`
	SalaryRange     *string        `json:"salaryRange,omitempty"`
	JobType         models.JobType `json:"jobType"`
	ApplicationLink *string        `json:"applicationLink,omitempty"`
	IsActive        bool           `json:"isActive"`
	Deadline        *time.Time     `json:"deadline,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	Poster          *UserResponse  `json:"poster,omitempty"`
}

// JobFromModel maps a job posting to its API representation
func JobFromModel(j *models.JobPosting) *JobResponse {
	return &JobResponse{
		ID:              j.ID,
		PostedBy:        j.PostedBy,
		Company:         j.Company,
		Position:        j.Position,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Location:        j.Location,
		SalaryRange:     j.SalaryRange,
		JobType:         j.JobType,
		ApplicationLink: j.ApplicationLink,
		IsActive:        j.IsActive,
		Deadline:        j.Deadline,
		CreatedAt:       j.CreatedAt,
		Poster:          UserFromModel(j.Poster),
	}
}

// JobListResponse represents a list of job postings
type JobListResponse struct {
	Jobs []*JobResponse `json:"jobs"`
}

// JobApplicationResponse represents a job application as exposed by the API
type JobApplicationResponse struct {
	ID          int64                    `json:"id"`
	JobID       int64                    `json:"jobId"`
	ApplicantID int64                    `json:"applicantId"`
	CoverLetter *string                  `json:"coverLetter,omitempty"`
	Resume      *string                  `json:"resume,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedAt   time.Time                `json:"appliedAt"`
	Applicant   *UserResponse            `json:"applicant,omitempty"`
}

// JobApplicationFromModel maps a job application to its API representation
func JobApplicationFromModel(a *models.JobApplication) *JobApplicationResponse {
	return &JobApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		CoverLetter: a.CoverLetter,
		Resume:      a.Resume,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt,
		Applicant:   UserFromModel(a.Applicant),
	}
}

// JobApplicationListResponse represents the applications for a job posting
type JobApplicationListResponse struct {
	Applications []*JobApplicationResponse `json:"applications"`
}
