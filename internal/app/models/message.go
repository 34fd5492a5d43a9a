package models

import "time"

// Message defines a direct message based on the 'messages' table.
// Rows are immutable once created except IsRead, which flips when the
// receiver fetches the thread.
type Message struct {
	ID         int64     `json:"id" db:"id"`
	SenderID   int64     `json:"senderId" db:"sender_id"`
	ReceiverID int64     `json:"receiverId" db:"receiver_id"`
	Body       string    `json:"body" db:"message"`
	IsRead     bool      `json:"isRead" db:"is_read"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	Sender     *User     `json:"sender,omitempty"`
}

// Conversation is a derived row, recomputed from messages on every read:
// one per distinct counterpart the viewer has exchanged messages with.
type Conversation struct {
	Counterpart     *User     `json:"counterpart"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
	UnreadCount     int       `json:"unreadCount"`
}
