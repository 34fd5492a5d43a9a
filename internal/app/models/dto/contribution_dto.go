package dto

import (
	"time"

	"github.com/mesconnect/backend/internal/app/models"
)

// CreateContributionRequest represents the request body for offering a contribution
type CreateContributionRequest struct {
	Type           string     `json:"type" binding:"required,oneof=mentorship donation workshop job_posting internship other" example:"mentorship"`
	Title          string     `json:"title" binding:"required,min=3,max=200"`
	Description    *string    `json:"description,omitempty" binding:"omitempty,max=4000"`
	Amount         *float64   `json:"amount,omitempty" binding:"omitempty,min=0"`
	Hours          *int       `json:"hours,omitempty" binding:"omitempty,min=0"`
	SkillsRequired *string    `json:"skillsRequired,omitempty" binding:"omitempty,max=500"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

// UpdateContributionStatusRequest represents the request body for reviewing a contribution
type UpdateContributionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved completed rejected" example:"approved"`
}

// ContributionResponse represents a contribution as exposed by the API
type ContributionResponse struct {
	ID             int64                     `json:"id"`
	AlumniID       int64                     `json:"alumniId"`
	Type           models.ContributionType   `json:"type"`
	Title          string                    `json:"title"`
	Description    *string                   `json:"description,omitempty"`
	Amount         *float64                  `json:"amount,omitempty"`
	Hours          *int                      `json:"hours,omitempty"`
	Status         models.ContributionStatus `json:"status"`
	SkillsRequired *string                   `json:"skillsRequired,omitempty"`
	Deadline       *time.Time                `json:"deadline,omitempty"`
	CreatedAt      time.Time                 `json:"createdAt"`
	Alumni         *UserResponse             `json:"alumni,omitempty"`
}

// ContributionFromModel maps a contribution model to its API representation
func ContributionFromModel(c *models.Contribution) *ContributionResponse {
	return &ContributionResponse{
		ID:             c.ID,
		AlumniID:       c.AlumniID,
		Type:           c.Type,
		Title:          c.Title,
		Description:    c.Description,
		Amount:         c.Amount,
		Hours:          c.Hours,
		Status:         c.Status,
		SkillsRequired: c.SkillsRequired,
		Deadline:       c.Deadline,
		CreatedAt:      c.CreatedAt,
		Alumni:         UserFromModel(c.Alumni),
	}
}

// ContributionListResponse represents a list of contributions
type ContributionListResponse struct {
	Contributions []*ContributionResponse `json:"contributions"`
}
