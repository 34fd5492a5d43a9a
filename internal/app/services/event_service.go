package services

import (
	"context"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/rs/zerolog"
)

// EventService handles events and registrations
type EventService struct {
	eventRepo EventStore
	logger    zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventRepo EventStore, logger zerolog.Logger) *EventService {
	return &EventService{eventRepo: eventRepo, logger: logger}
}

// Create creates an event with the organizer auto-registered
func (s *EventService) Create(ctx context.Context, organizerID int64, req *dto.CreateEventRequest) (*models.Event, error) {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	category := req.Category
	if category == "" {
		category = "general"
	}

	event := &models.Event{
		Title:            req.Title,
		Description:      req.Description,
		OrganizerID:      organizerID,
		EventDate:        req.EventDate,
		EventTime:        req.EventTime,
		Location:         req.Location,
		Venue:            req.Venue,
		MaxParticipants:  req.MaxParticipants,
		IsPublic:         isPublic,
		Category:         category,
		CoverPic:         req.CoverPic,
		RegistrationLink: req.RegistrationLink,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("eventId", event.ID).Int64("organizerId", organizerID).Msg("Event created")
	return event, nil
}

// GetByID retrieves one event annotated for the viewer
func (s *EventService) GetByID(ctx context.Context, eventID, viewerID int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, eventID, viewerID)
}

// Register adds the user to an event, respecting its capacity
func (s *EventService) Register(ctx context.Context, eventID, userID int64) error {
	return s.eventRepo.Register(ctx, eventID, userID)
}

// CancelRegistration withdraws the user's registration
func (s *EventService) CancelRegistration(ctx context.Context, eventID, userID int64) error {
	return s.eventRepo.CancelRegistration(ctx, eventID, userID)
}

// ListUpcoming retrieves events from today onward
func (s *EventService) ListUpcoming(ctx context.Context, viewerID int64, limit int) ([]*models.Event, error) {
	return s.eventRepo.ListUpcoming(ctx, viewerID, limit)
}

// ListPast retrieves past events
func (s *EventService) ListPast(ctx context.Context, viewerID int64, limit int) ([]*models.Event, error) {
	return s.eventRepo.ListPast(ctx, viewerID, limit)
}

// ListRegistered retrieves the events the viewer is registered for
func (s *EventService) ListRegistered(ctx context.Context, viewerID int64) ([]*models.Event, error) {
	return s.eventRepo.ListRegistered(ctx, viewerID)
}
