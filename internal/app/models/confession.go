package models

import "time"

// Confession defines a moderated content item based on the 'confessions'
// table. When IsAnonymous is set the author reference is stored as NULL:
// the original author cannot be recovered from the record, not even by an
// admin.
type Confession struct {
	ID          int64            `json:"id" db:"id"`
	UserID      *int64           `json:"userId,omitempty" db:"user_id"`
	Content     string           `json:"content" db:"content"`
	IsAnonymous bool             `json:"isAnonymous" db:"is_anonymous"`
	Status      ConfessionStatus `json:"status" db:"status"`
	Likes       int              `json:"likes" db:"likes"` // recomputed from confession_likes on every toggle
	Tags        *string          `json:"tags,omitempty" db:"tags"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
	Author      *User            `json:"author,omitempty"`
	// ViewerLiked reports whether the requesting user has liked this confession
	ViewerLiked bool `json:"viewerLiked"`
}

// ConfessionLike defines a like row based on the 'confession_likes' table;
// presence denotes liked, deletion denotes unliked.
type ConfessionLike struct {
	ID           int64     `json:"id" db:"id"`
	ConfessionID int64     `json:"confessionId" db:"confession_id"`
	UserID       int64     `json:"userId" db:"user_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
