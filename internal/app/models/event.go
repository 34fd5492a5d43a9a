package models

import "time"

// Event defines a scheduled event based on the 'events' table.
// MaxParticipants nil means unlimited capacity.
type Event struct {
	ID               int64     `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Description      string    `json:"description" db:"description"`
	OrganizerID      int64     `json:"organizerId" db:"organizer_id"`
	EventDate        time.Time `json:"eventDate" db:"event_date"`
	EventTime        *string   `json:"eventTime,omitempty" db:"event_time"`
	Location         *string   `json:"location,omitempty" db:"location"`
	Venue            *string   `json:"venue,omitempty" db:"venue"`
	MaxParticipants  *int      `json:"maxParticipants,omitempty" db:"max_participants"`
	IsPublic         bool      `json:"isPublic" db:"is_public"`
	Category         string    `json:"category" db:"category"`
	CoverPic         *string   `json:"coverPic,omitempty" db:"cover_pic"`
	RegistrationLink *string   `json:"registrationLink,omitempty" db:"registration_link"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	Organizer        *User     `json:"organizer,omitempty"`
	ParticipantCount int       `json:"participantCount"`
	// ViewerRegistered reports whether the requesting user is registered
	ViewerRegistered bool `json:"viewerRegistered"`
}

// EventParticipant defines a registration row based on the
// 'event_participants' table. The organizer is auto-registered when the
// event is created.
type EventParticipant struct {
	ID           int64             `json:"id" db:"id"`
	EventID      int64             `json:"eventId" db:"event_id"`
	UserID       int64             `json:"userId" db:"user_id"`
	Status       ParticipantStatus `json:"status" db:"status"`
	RegisteredAt time.Time         `json:"registeredAt" db:"registered_at"`
}
