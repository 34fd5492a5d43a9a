package models

import "time"

// JobPosting defines a job opening based on the 'job_postings' table
type JobPosting struct {
	ID              int64      `json:"id" db:"id"`
	PostedBy        int64      `json:"postedBy" db:"posted_by"`
	Company         string     `json:"company" db:"company"`
	Position        string     `json:"position" db:"position"`
	Description     string     `json:"description" db:"description"`
	Requirements    *string    `json:"requirements,omitempty" db:"requirements"`
	Location        *string    `json:"location,omitempty" db:"location"`
	SalaryRange     *string    `json:"salaryRange,omitempty" db:"salary_range"`
	JobType         JobType    `json:"jobType" db:"job_type"`
	ApplicationLink *string    `json:"applicationLink,omitempty" db:"application_link"`
	IsActive        bool       `json:"isActive" db:"is_active"`
	Deadline        *time.Time `json:"deadline,omitempty" db:"deadline"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	Poster          *User      `json:"poster,omitempty"`
}

// JobApplication defines an application row based on the 'job_applications'
// table; (job_id, applicant_id) is unique.
type JobApplication struct {
	ID          int64             `json:"id" db:"id"`
	JobID       int64             `json:"jobId" db:"job_id"`
	ApplicantID int64             `json:"applicantId" db:"applicant_id"`
	CoverLetter *string           `json:"coverLetter,omitempty" db:"cover_letter"`
	Resume      *string           `json:"resume,omitempty" db:"resume"` // opaque blob reference
	Status      ApplicationStatus `json:"status" db:"status"`
	AppliedAt   time.Time         `json:"appliedAt" db:"applied_at"`
	Applicant   *User             `json:"applicant,omitempty"`
}
