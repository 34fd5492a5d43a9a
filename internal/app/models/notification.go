package models

import "time"

// Notification defines a per-user inbox row based on the 'notifications'
// table. Rows are purely additive; marking read is the only mutation.
type Notification struct {
	ID          int64            `json:"id" db:"id"`
	UserID      int64            `json:"userId" db:"user_id"`
	Title       string           `json:"title" db:"title"`
	Message     string           `json:"message" db:"message"`
	Type        NotificationType `json:"type" db:"type"`
	IsRead      bool             `json:"isRead" db:"is_read"`
	ReferenceID *int64           `json:"referenceId,omitempty" db:"reference_id"` // id of the triggering entity
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
}
