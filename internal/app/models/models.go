package models

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleAdmin:
		return true
	}
	return false
}

// FriendStatus is the lifecycle state of a friend edge
type FriendStatus string

const (
	FriendPending  FriendStatus = "pending"
	FriendAccepted FriendStatus = "accepted"
	FriendBlocked  FriendStatus = "blocked"
)

// GroupRole is a member's role within a group
type GroupRole string

const (
	GroupRoleAdmin     GroupRole = "admin"
	GroupRoleModerator GroupRole = "moderator"
	GroupRoleMember    GroupRole = "member"
)

// ConfessionStatus is the moderation state of a confession
type ConfessionStatus string

const (
	ConfessionPending  ConfessionStatus = "pending"
	ConfessionApproved ConfessionStatus = "approved"
	ConfessionRejected ConfessionStatus = "rejected"
)

// ParticipantStatus is the registration state of an event participant
type ParticipantStatus string

const (
	ParticipantRegistered ParticipantStatus = "registered"
	ParticipantAttended   ParticipantStatus = "attended"
	ParticipantCancelled  ParticipantStatus = "cancelled"
)

// AnnouncementPriority orders announcements in listings
type AnnouncementPriority string

const (
	PriorityLow    AnnouncementPriority = "low"
	PriorityNormal AnnouncementPriority = "normal"
	PriorityHigh   AnnouncementPriority = "high"
	PriorityUrgent AnnouncementPriority = "urgent"
)

// ContributionType classifies alumni contributions
type ContributionType string

const (
	ContributionMentorship ContributionType = "mentorship"
	ContributionDonation   ContributionType = "donation"
	ContributionWorkshop   ContributionType = "workshop"
	ContributionJobPosting ContributionType = "job_posting"
	ContributionInternship ContributionType = "internship"
	ContributionOther      ContributionType = "other"
)

// ContributionStatus is the review state of a contribution
type ContributionStatus string

const (
	ContributionPending   ContributionStatus = "pending"
	ContributionApproved  ContributionStatus = "approved"
	ContributionCompleted ContributionStatus = "completed"
	ContributionRejected  ContributionStatus = "rejected"
)

// JobType classifies job postings
type JobType string

const (
	JobFullTime   JobType = "full_time"
	JobPartTime   JobType = "part_time"
	JobInternship JobType = "internship"
	JobContract   JobType = "contract"
)

// ApplicationStatus is the review state of a job application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// NotificationType tags a notification with the subsystem that produced it
type NotificationType string

const (
	NotificationFriendRequest NotificationType = "friend_request"
	NotificationMessage       NotificationType = "message"
	NotificationEvent         NotificationType = "event"
	NotificationConfession    NotificationType = "confession"
	NotificationAnnouncement  NotificationType = "announcement"
	NotificationSystem        NotificationType = "system"
)
