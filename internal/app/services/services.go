// Package services holds the business logic between the HTTP controllers and
// the repositories. Each service depends on narrow repository interfaces so
// the logic can be tested against fakes.
package services

import (
	"context"
	"time"

	"github.com/mesconnect/backend/internal/app/models"
)

// UserStore is the user persistence surface the services depend on
type UserStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
	UpdateProfile(ctx context.Context, userID int64, req *models.ProfileUpdate) error
	Search(ctx context.Context, viewerID int64, query string, role models.Role, page, pageSize int) ([]*models.User, int64, error)
	Deactivate(ctx context.Context, userID int64) error
	PlatformStats(ctx context.Context) (*models.PlatformStats, error)
}

// TokenStore is the refresh token persistence surface
type TokenStore interface {
	Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}

// FriendStore is the friend graph persistence surface
type FriendStore interface {
	SendRequest(ctx context.Context, senderID, recipientID int64) (*models.FriendEdge, error)
	AcceptRequest(ctx context.Context, edgeID, userID int64) error
	RejectRequest(ctx context.Context, edgeID, userID int64) error
	Remove(ctx context.Context, userID, friendID int64) error
	Block(ctx context.Context, userID, otherID int64) error
	ListFriends(ctx context.Context, userID int64) ([]*models.Friend, error)
	ListPendingRequests(ctx context.Context, userID int64) ([]*models.Friend, error)
	IsBlocked(ctx context.Context, userID, otherID int64) (bool, error)
}

// MessageStore is the direct message persistence surface
type MessageStore interface {
	Send(ctx context.Context, senderID, receiverID int64, body string) (*models.Message, error)
	GetThread(ctx context.Context, viewerID, otherID int64, limit int) ([]*models.Message, error)
	ListConversations(ctx context.Context, viewerID int64) ([]*models.Conversation, error)
	UnreadTotal(ctx context.Context, viewerID int64) (int64, error)
}

// GroupStore is the group persistence surface
type GroupStore interface {
	Create(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, groupID int64) (*models.Group, error)
	List(ctx context.Context, viewerID int64, category string, limit int) ([]*models.Group, error)
	Join(ctx context.Context, groupID, userID int64) error
	Leave(ctx context.Context, groupID, userID int64) error
	ListMembers(ctx context.Context, groupID int64) ([]*models.GroupMember, error)
	PostMessage(ctx context.Context, message *models.GroupMessage) error
	ListMessages(ctx context.Context, groupID int64, limit int) ([]*models.GroupMessage, error)
}

// ConfessionStore is the confession persistence surface
type ConfessionStore interface {
	Submit(ctx context.Context, authorID int64, content string, isAnonymous bool, tags *string) (*models.Confession, error)
	List(ctx context.Context, viewerID int64, status models.ConfessionStatus, page, pageSize int) ([]*models.Confession, int64, error)
	ListPending(ctx context.Context, viewerID int64) ([]*models.Confession, error)
	ToggleLike(ctx context.Context, confessionID, userID int64) (bool, int, error)
	Moderate(ctx context.Context, confessionID int64, status models.ConfessionStatus) error
}

// EventStore is the event persistence surface
type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, eventID, viewerID int64) (*models.Event, error)
	Register(ctx context.Context, eventID, userID int64) error
	CancelRegistration(ctx context.Context, eventID, userID int64) error
	ListUpcoming(ctx context.Context, viewerID int64, limit int) ([]*models.Event, error)
	ListPast(ctx context.Context, viewerID int64, limit int) ([]*models.Event, error)
	ListRegistered(ctx context.Context, viewerID int64) ([]*models.Event, error)
}

// AnnouncementStore is the announcement persistence surface
type AnnouncementStore interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	ListForRole(ctx context.Context, role models.Role, limit int) ([]*models.Announcement, error)
	Deactivate(ctx context.Context, announcementID int64) error
}

// ContributionStore is the contribution persistence surface
type ContributionStore interface {
	Create(ctx context.Context, contribution *models.Contribution) error
	List(ctx context.Context, ctype models.ContributionType, status models.ContributionStatus, limit int) ([]*models.Contribution, error)
	ListByAlumni(ctx context.Context, alumniID int64) ([]*models.Contribution, error)
	UpdateStatus(ctx context.Context, contributionID int64, status models.ContributionStatus) error
}

// JobStore is the job posting persistence surface
type JobStore interface {
	Create(ctx context.Context, job *models.JobPosting) error
	ListActive(ctx context.Context, limit int) ([]*models.JobPosting, error)
	GetByID(ctx context.Context, jobID int64) (*models.JobPosting, error)
	Apply(ctx context.Context, application *models.JobApplication) error
	ListApplications(ctx context.Context, jobID int64) ([]*models.JobApplication, error)
	UpdateApplicationStatus(ctx context.Context, applicationID, reviewerID int64, status models.ApplicationStatus) error
	Deactivate(ctx context.Context, jobID, posterID int64) error
}

// NotificationStore is the notification inbox persistence surface
type NotificationStore interface {
	ListForUser(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
}
