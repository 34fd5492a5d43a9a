package models

import "time"

// Group defines a named group based on the 'groups' table
type Group struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedBy   int64     `json:"createdBy" db:"created_by"`
	IsPublic    bool      `json:"isPublic" db:"is_public"`
	Category    string    `json:"category" db:"category"`
	CoverPic    *string   `json:"coverPic,omitempty" db:"cover_pic"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Creator     *User     `json:"creator,omitempty"`
	MemberCount int       `json:"memberCount"`
}

// GroupMember defines a membership row based on the 'group_members' table.
// The creator is inserted as admin atomically with the group row.
type GroupMember struct {
	ID       int64     `json:"id" db:"id"`
	GroupID  int64     `json:"groupId" db:"group_id"`
	UserID   int64     `json:"userId" db:"user_id"`
	Role     GroupRole `json:"role" db:"role"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
	User     *User     `json:"user,omitempty"`
}

// GroupMessage defines an append-only group message based on the
// 'group_messages' table
type GroupMessage struct {
	ID         int64     `json:"id" db:"id"`
	GroupID    int64     `json:"groupId" db:"group_id"`
	SenderID   int64     `json:"senderId" db:"sender_id"`
	Body       string    `json:"body" db:"message"`
	Attachment *string   `json:"attachment,omitempty" db:"attachment"` // opaque blob reference
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	Sender     *User     `json:"sender,omitempty"`
}
