package dto

import (
	"time"

	"github.com/mesconnect/backend/internal/app/models"
)

// CreateEventRequest represents the request body for creating an event
type CreateEventRequest struct {
	Title            string    `json:"title" binding:"required,min=3,max=200" example:"Annual Hackathon"`
	Description      string    `json:"description" binding:"required,max=4000"`
	EventDate        time.Time `json:"eventDate" binding:"required"`
	EventTime        *string   `json:"eventTime,omitempty" example:"18:30"`
	Location         *string   `json:"location,omitempty"`
	Venue            *string   `json:"venue,omitempty"`
	MaxParticipants  *int      `json:"maxParticipants,omitempty" binding:"omitempty,min=1"`
	IsPublic         *bool     `json:"isPublic,omitempty"`
	Category         string    `json:"category" binding:"omitempty,max=50" example:"technical"`
	CoverPic         *string   `json:"coverPic,omitempty"`
	RegistrationLink *string   `json:"registrationLink,omitempty"`
}

// EventResponse represents an event as exposed by the API
type EventResponse struct {
	ID               int64         `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	OrganizerID      int64         `json:"organizerId"`
	EventDate        time.Time     `json:"eventDate"`
	EventTime        *string       `json:"eventTime,omitempty"`
	Location         *string       `json:"location,omitempty"`
	Venue            *string       `json:"venue,omitempty"`
	MaxParticipants  *int          `json:"maxParticipants,omitempty"`
	IsPublic         bool          `json:"isPublic"`
	Category         string        `json:"category"`
	CoverPic         *string       `json:"coverPic,omitempty"`
	RegistrationLink *string       `json:"registrationLink,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	Organizer        *UserResponse `json:"organizer,omitempty"`
	ParticipantCount int           `json:"participantCount"`
	ViewerRegistered bool          `json:"viewerRegistered"`
}

// EventFromModel maps an event model to its API representation
func EventFromModel(e *models.Event) *EventResponse {
	return &EventResponse{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		OrganizerID:      e.OrganizerID,
		EventDate:        e.EventDate,
		EventTime:        e.EventTime,
		Location:         e.Location,
		Venue:            e.Venue,
		MaxParticipants:  e.MaxParticipants,
		IsPublic:         e.IsPublic,
		Category:         e.Category,
		CoverPic:         e.CoverPic,
		RegistrationLink: e.RegistrationLink,
		CreatedAt:        e.CreatedAt,
		Organizer:        UserFromModel(e.Organizer),
		ParticipantCount: e.ParticipantCount,
		ViewerRegistered: e.ViewerRegistered,
	}
}

// EventListResponse represents a list of events
type EventListResponse struct {
	Events []*EventResponse `json:"events"`
}
