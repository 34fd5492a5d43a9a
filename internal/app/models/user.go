package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID              int64      `json:"id" db:"id" example:"1"`
	Email           string     `json:"email" db:"email" example:"jane@mes.edu"`
	Password        string     `json:"-" db:"password"` // hashed, never serialized
	Role            Role       `json:"role" db:"role" example:"student"`
	FirstName       string     `json:"firstName" db:"first_name" example:"Jane"`
	LastName        string     `json:"lastName" db:"last_name" example:"Doe"`
	Phone           *string    `json:"phone,omitempty" db:"phone"`
	StudentID       *string    `json:"studentId,omitempty" db:"student_id"`
	Department      *string    `json:"department,omitempty" db:"department"`
	Year            *string    `json:"year,omitempty" db:"year"` // study year for students, graduation year for alumni
	Skills          *string    `json:"skills,omitempty" db:"skills"`
	About           *string    `json:"about,omitempty" db:"about"`
	CurrentPosition *string    `json:"currentPosition,omitempty" db:"current_position"`
	Company         *string    `json:"company,omitempty" db:"company"`
	LinkedIn        *string    `json:"linkedin,omitempty" db:"linkedin"`
	ProfilePic      *string    `json:"profilePic,omitempty" db:"profile_pic"` // opaque blob reference
	IsVerified      bool       `json:"isVerified" db:"is_verified"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	LastLogin       *time.Time `json:"lastLogin,omitempty" db:"last_login"`
}

// FullName returns the display name used in notification messages.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RefreshToken defines a persisted refresh token based on the 'refresh_tokens' table
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ProfileUpdate carries the profile fields a user may change; nil fields are
// left untouched
type ProfileUpdate struct {
	FirstName       *string
	LastName        *string
	Phone           *string
	Department      *string
	Year            *string
	Skills          *string
	About           *string
	CurrentPosition *string
	Company         *string
	LinkedIn        *string
	ProfilePic      *string
}

// RoleCount is a per-role user tally
type RoleCount struct {
	Role  Role
	Count int64
}

// GrowthPoint is a per-month registration tally
type GrowthPoint struct {
	Month string
	Count int64
}

// PlatformStats aggregates platform-wide counters
type PlatformStats struct {
	TotalUsers       int64
	UsersByRole      []RoleCount
	TotalFriendships int64
	TotalMessages    int64
	TotalGroups      int64
	TotalEvents      int64
	TotalConfessions int64
	UserGrowth       []GrowthPoint
}
