package models

import "time"

// Announcement defines a broadcast item based on the 'announcements' table.
// TargetRole nil (or "all") means the announcement is visible to every role.
type Announcement struct {
	ID         int64                `json:"id" db:"id"`
	Title      string               `json:"title" db:"title"`
	Content    string               `json:"content" db:"content"`
	CreatedBy  int64                `json:"createdBy" db:"created_by"`
	TargetRole *string              `json:"targetRole,omitempty" db:"target_role"`
	Priority   AnnouncementPriority `json:"priority" db:"priority"`
	IsActive   bool                 `json:"isActive" db:"is_active"`
	CreatedAt  time.Time            `json:"createdAt" db:"created_at"`
	Author     *User                `json:"author,omitempty"`
}
