package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/app/models/dto"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
)

type fakeEventStore struct {
	createFn             func(context.Context, *models.Event) error
	getByIDFn            func(context.Context, int64, int64) (*models.Event, error)
	registerFn           func(context.Context, int64, int64) error
	cancelRegistrationFn func(context.Context, int64, int64) error
	listUpcomingFn       func(context.Context, int64) ([]*models.Event, error)
	listPastFn           func(context.Context, int64) ([]*models.Event, error)
	listRegisteredFn     func(context.Context, int64) ([]*models.Event, error)
}

func (f *fakeEventStore) Create(ctx context.Context, event *models.Event) error {
	if f.createFn == nil {
		event.ID = 1
		return nil
	}
	return f.createFn(ctx, event)
}

func (f *fakeEventStore) GetByID(ctx context.Context, eventID, viewerID int64) (*models.Event, error) {
	if f.getByIDFn == nil {
		return nil, apperrors.ErrEventNotFound
	}
	return f.getByIDFn(ctx, eventID, viewerID)
}

func (f *fakeEventStore) Register(ctx context.Context, eventID, userID int64) error {
	if f.registerFn == nil {
		return nil
	}
	return f.registerFn(ctx, eventID, userID)
}

func (f *fakeEventStore) CancelRegistration(ctx context.Context, eventID, userID int64) error {
	if f.cancelRegistrationFn == nil {
		return nil
	}
	return f.cancelRegistrationFn(ctx, eventID, userID)
}

func (f *fakeEventStore) ListUpcoming(ctx context.Context, viewerID int64, limit int) ([]*models.Event, error) {
	if f.listUpcomingFn == nil {
		return nil, nil
	}
	return f.listUpcomingFn(ctx, viewerID)
}

func (f *fakeEventStore) ListPast(ctx context.Context, viewerID int64, limit int) ([]*models.Event, error) {
	if f.listPastFn == nil {
		return nil, nil
	}
	return f.listPastFn(ctx, viewerID)
}

func (f *fakeEventStore) ListRegistered(ctx context.Context, viewerID int64) ([]*models.Event, error) {
	if f.listRegisteredFn == nil {
		return nil, nil
	}
	return f.listRegisteredFn(ctx, viewerID)
}

func TestEventServiceCreate(t *testing.T) {
	t.Run("applies_defaults_and_organizer", func(t *testing.T) {
		var created *models.Event
		svc := NewEventService(&fakeEventStore{
			createFn: func(_ context.Context, event *models.Event) error {
				created = event
				event.ID = 6
				return nil
			},
		}, zerolog.Nop())

		date := time.Now().AddDate(0, 1, 0)
		event, err := svc.Create(context.Background(), 2, &dto.CreateEventRequest{
			Title:       "Annual Hackathon",
			Description: "48 hours of building",
			EventDate:   date,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(6), event.ID)
		assert.Equal(t, int64(2), created.OrganizerID)
		assert.True(t, created.IsPublic)
		assert.Equal(t, "general", created.Category)
		assert.Equal(t, date, created.EventDate)
	})

	t.Run("keeps_capacity_limit", func(t *testing.T) {
		capacity := 50
		var created *models.Event
		svc := NewEventService(&fakeEventStore{
			createFn: func(_ context.Context, event *models.Event) error {
				created = event
				return nil
			},
		}, zerolog.Nop())

		_, err := svc.Create(context.Background(), 2, &dto.CreateEventRequest{
			Title:           "Workshop",
			Description:     "Limited seats",
			EventDate:       time.Now().AddDate(0, 0, 7),
			MaxParticipants: &capacity,
			Category:        "technical",
		})
		require.NoError(t, err)
		require.NotNil(t, created.MaxParticipants)
		assert.Equal(t, 50, *created.MaxParticipants)
		assert.Equal(t, "technical", created.Category)
	})
}

func TestEventServiceRegister(t *testing.T) {
	t.Run("propagates_capacity_conflict", func(t *testing.T) {
		svc := NewEventService(&fakeEventStore{
			registerFn: func(_ context.Context, _, _ int64) error { return apperrors.ErrEventFull },
		}, zerolog.Nop())
		assert.ErrorIs(t, svc.Register(context.Background(), 6, 3), apperrors.ErrEventFull)
	})

	t.Run("propagates_duplicate_registration", func(t *testing.T) {
		svc := NewEventService(&fakeEventStore{
			registerFn: func(_ context.Context, _, _ int64) error { return apperrors.ErrAlreadyRegistered },
		}, zerolog.Nop())
		assert.ErrorIs(t, svc.Register(context.Background(), 6, 3), apperrors.ErrAlreadyRegistered)
	})

	t.Run("success", func(t *testing.T) {
		var gotEvent, gotUser int64
		svc := NewEventService(&fakeEventStore{
			registerFn: func(_ context.Context, eventID, userID int64) error {
				gotEvent, gotUser = eventID, userID
				return nil
			},
		}, zerolog.Nop())

		require.NoError(t, svc.Register(context.Background(), 6, 3))
		assert.Equal(t, int64(6), gotEvent)
		assert.Equal(t, int64(3), gotUser)
	})
}

func TestEventServiceCancelRegistration(t *testing.T) {
	svc := NewEventService(&fakeEventStore{
		cancelRegistrationFn: func(_ context.Context, _, _ int64) error {
			return apperrors.ErrNotRegistered
		},
	}, zerolog.Nop())
	assert.ErrorIs(t, svc.CancelRegistration(context.Background(), 6, 3), apperrors.ErrNotRegistered)
}
