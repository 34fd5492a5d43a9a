package dto

import (
	"time"

	"github.com/mesconnect/backend/internal/app/models"
)

// UserResponse represents a user as exposed by the API
type UserResponse struct {
	ID              int64       `json:"id" example:"1"`
	Email           string      `json:"email" example:"jane@mes.edu"`
	Role            models.Role `json:"role" example:"student"`
	FirstName       string      `json:"firstName" example:"Jane"`
	LastName        string      `json:"lastName" example:"Doe"`
	Phone           *string     `json:"phone,omitempty"`
	StudentID       *string     `json:"studentId,omitempty"`
	Department      *string     `json:"department,omitempty"`
	Year            *string     `json:"year,omitempty"`
	Skills          *string     `json:"skills,omitempty"`
	About           *string     `json:"about,omitempty"`
	CurrentPosition *string     `json:"currentPosition,omitempty"`
	Company         *string     `json:"company,omitempty"`
	LinkedIn        *string     `json:"linkedin,omitempty"`
	ProfilePic      *string     `json:"profilePic,omitempty"`
	IsVerified      bool        `json:"isVerified"`
	CreatedAt       time.Time   `json:"createdAt"`
	LastLogin       *time.Time  `json:"lastLogin,omitempty"`
}

// UserFromModel maps a user model to its API representation
func UserFromModel(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Role:            u.Role,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Phone:           u.Phone,
		StudentID:       u.StudentID,
		Department:      u.Department,
		Year:            u.Year,
		Skills:          u.Skills,
		About:           u.About,
		CurrentPosition: u.CurrentPosition,
		Company:         u.Company,
		LinkedIn:        u.LinkedIn,
		ProfilePic:      u.ProfilePic,
		IsVerified:      u.IsVerified,
		CreatedAt:       u.CreatedAt,
		LastLogin:       u.LastLogin,
	}
}

// UpdateProfileRequest represents the request body for profile updates.
// Only the provided fields are changed.
type UpdateProfileRequest struct {
	FirstName       *string `json:"firstName,omitempty" binding:"omitempty,min=2,max=50"`
	LastName        *string `json:"lastName,omitempty" binding:"omitempty,min=2,max=50"`
	Phone           *string `json:"phone,omitempty"`
	Department      *string `json:"department,omitempty"`
	Year            *string `json:"year,omitempty"`
	Skills          *string `json:"skills,omitempty"`
	About           *string `json:"about,omitempty"`
	CurrentPosition *string `json:"currentPosition,omitempty"`
	Company         *string `json:"company,omitempty"`
	LinkedIn        *string `json:"linkedin,omitempty"`
	ProfilePic      *string `json:"profilePic,omitempty"`
}

// UserSearchRequest represents query parameters for user search
type UserSearchRequest struct {
	Query string `form:"q" binding:"omitempty,max=100"`
	Role  string `form:"role" binding:"omitempty,oneof=student alumni admin"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []*UserResponse `json:"users"`
	Pagination PaginationInfo  `json:"pagination"`
}

// RoleCount is a per-role user tally
type RoleCount struct {
	Role  models.Role `json:"role"`
	Count int64       `json:"count"`
}

// GrowthPoint is a per-month registration tally
type GrowthPoint struct {
	Month string `json:"month" example:"2026-08"`
	Count int64  `json:"count"`
}

// PlatformStatsResponse aggregates platform-wide counters for the admin dashboard
type PlatformStatsResponse struct {
	TotalUsers       int64         `json:"totalUsers"`
	UsersByRole      []RoleCount   `json:"usersByRole"`
	TotalFriendships int64         `json:"totalFriendships"`
	TotalMessages    int64         `json:"totalMessages"`
	TotalGroups      int64         `json:"totalGroups"`
	TotalEvents      int64         `json:"totalEvents"`
	TotalConfessions int64         `json:"totalConfessions"`
	UserGrowth       []GrowthPoint `json:"userGrowth"`
}
