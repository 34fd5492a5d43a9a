package models

import "time"

// Contribution defines an alumni offer based on the 'contributions' table
type Contribution struct {
	ID             int64              `json:"id" db:"id"`
	AlumniID       int64              `json:"alumniId" db:"alumni_id"`
	Type           ContributionType   `json:"type" db:"type"`
	Title          string             `json:"title" db:"title"`
	Description    *string            `json:"description,omitempty" db:"description"`
	Amount         *float64           `json:"amount,omitempty" db:"amount"`
	Hours          *int               `json:"hours,omitempty" db:"hours"`
	Status         ContributionStatus `json:"status" db:"status"`
	SkillsRequired *string            `json:"skillsRequired,omitempty" db:"skills_required"`
	Deadline       *time.Time         `json:"deadline,omitempty" db:"deadline"`
	CreatedAt      time.Time          `json:"createdAt" db:"created_at"`
	Alumni         *User              `json:"alumni,omitempty"`
}
