package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	FriendRepository       *FriendRepository
	MessageRepository      *MessageRepository
	GroupRepository        *GroupRepository
	ConfessionRepository   *ConfessionRepository
	EventRepository        *EventRepository
	AnnouncementRepository *AnnouncementRepository
	ContributionRepository *ContributionRepository
	JobRepository          *JobRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		FriendRepository:       NewFriendRepository(db),
		MessageRepository:      NewMessageRepository(db),
		GroupRepository:        NewGroupRepository(db),
		ConfessionRepository:   NewConfessionRepository(db),
		EventRepository:        NewEventRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		ContributionRepository: NewContributionRepository(db),
		JobRepository:          NewJobRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
