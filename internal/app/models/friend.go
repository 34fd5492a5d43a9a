package models

import "time"

// FriendEdge defines a single relationship row based on the 'friends' table.
// One row represents the relationship between two users regardless of
// direction: UserID is the requester, FriendID the recipient, and lookups
// must match either orientation.
type FriendEdge struct {
	ID        int64        `json:"id" db:"id"`
	UserID    int64        `json:"userId" db:"user_id"`
	FriendID  int64        `json:"friendId" db:"friend_id"`
	Status    FriendStatus `json:"status" db:"status"`
	CreatedAt time.Time    `json:"createdAt" db:"created_at"`
}

// Friend is a counterpart on an edge, as returned by list queries.
type Friend struct {
	User         *User        `json:"user"`
	EdgeID       int64        `json:"edgeId"`
	Status       FriendStatus `json:"status"`
	FriendsSince time.Time    `json:"friendsSince"`
	// Outgoing is true when the viewer created the edge
	Outgoing bool `json:"outgoing"`
}
