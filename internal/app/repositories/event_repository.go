package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/db"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
)

// EventRepository handles database operations for events and registrations
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts an event and registers the organizer as its first
// participant atomically
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO events (
				title, description, organizer_id, event_date, event_time, location,
				venue, max_participants, is_public, category, cover_pic, registration_link
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id, created_at
		`,
			event.Title, event.Description, event.OrganizerID, event.EventDate,
			event.EventTime, event.Location, event.Venue, event.MaxParticipants,
			event.IsPublic, event.Category, event.CoverPic, event.RegistrationLink,
		).Scan(&event.ID, &event.CreatedAt)
		if err != nil {
			return fmt.Errorf("error creating event: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO event_participants (event_id, user_id, status)
			VALUES ($1, $2, 'registered')
		`, event.ID, event.OrganizerID)
		if err != nil {
			return fmt.Errorf("error registering organizer: %w", err)
		}
		event.ParticipantCount = 1
		event.ViewerRegistered = true
		return nil
	})
}

// Register adds a participant to an event. The event row is locked while the
// capacity is checked, so a full event cannot be oversubscribed by
// concurrent registrations. A previously cancelled registration is
// reactivated in place. The registrant is notified in the same transaction,
// and so is the organizer unless they are registering themselves.
func (r *EventRepository) Register(ctx context.Context, eventID, userID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var event models.Event
		err := tx.QueryRow(ctx, `
			SELECT id, title, organizer_id, max_participants
			FROM events
			WHERE id = $1
			FOR UPDATE
		`, eventID).Scan(&event.ID, &event.Title, &event.OrganizerID, &event.MaxParticipants)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrEventNotFound
			}
			return fmt.Errorf("error loading event: %w", err)
		}

		if event.MaxParticipants != nil {
			var count int
			err := tx.QueryRow(ctx, `
				SELECT COUNT(*) FROM event_participants
				WHERE event_id = $1 AND status <> 'cancelled'
			`, eventID).Scan(&count)
			if err != nil {
				return fmt.Errorf("error counting participants: %w", err)
			}
			if count >= *event.MaxParticipants {
				return apperrors.ErrEventFull
			}
		}

		tag, err := tx.Exec(ctx, `
			INSERT INTO event_participants (event_id, user_id, status)
			VALUES ($1, $2, 'registered')
			ON CONFLICT ON CONSTRAINT event_participants_event_user_key
				DO UPDATE SET status = 'registered', registered_at = CURRENT_TIMESTAMP
				WHERE event_participants.status = 'cancelled'
		`, eventID, userID)
		if err != nil {
			return fmt.Errorf("error registering for event: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrAlreadyRegistered
		}

		err = insertNotification(ctx, tx, userID,
			"Event Registration",
			"You have successfully registered for "+event.Title,
			models.NotificationEvent, &eventID)
		if err != nil {
			return err
		}

		if event.OrganizerID == userID {
			return nil
		}

		var participant models.User
		err = tx.QueryRow(ctx, `SELECT first_name, last_name FROM users WHERE id = $1`, userID).
			Scan(&participant.FirstName, &participant.LastName)
		if err != nil {
			return fmt.Errorf("error loading participant: %w", err)
		}

		return insertNotification(ctx, tx, event.OrganizerID,
			"New Event Registration",
			participant.FullName()+" registered for "+event.Title,
			models.NotificationEvent, &eventID)
	})
}

// CancelRegistration marks the viewer's registration cancelled, freeing the
// seat. The row is kept so a later Register can reactivate it.
func (r *EventRepository) CancelRegistration(ctx context.Context, eventID, userID int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE event_participants SET status = 'cancelled'
		WHERE event_id = $1 AND user_id = $2 AND status <> 'cancelled'
	`, eventID, userID)
	if err != nil {
		return fmt.Errorf("error cancelling registration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotRegistered
	}
	return nil
}

const eventSelect = `
	SELECT e.id, e.title, e.description, e.organizer_id, e.event_date, e.event_time,
		e.location, e.venue, e.max_participants, e.is_public, e.category,
		e.cover_pic, e.registration_link, e.created_at,
		u.first_name, u.last_name,
		(SELECT COUNT(*) FROM event_participants ep
			WHERE ep.event_id = e.id AND ep.status <> 'cancelled'),
		EXISTS (SELECT 1 FROM event_participants ep
			WHERE ep.event_id = e.id AND ep.user_id = $1 AND ep.status <> 'cancelled')
	FROM events e
	JOIN users u ON u.id = e.organizer_id
`

func scanEvents(rows pgx.Rows) ([]*models.Event, error) {
	var events []*models.Event
	for rows.Next() {
		var e models.Event
		var organizer models.User
		err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.OrganizerID, &e.EventDate,
			&e.EventTime, &e.Location, &e.Venue, &e.MaxParticipants, &e.IsPublic,
			&e.Category, &e.CoverPic, &e.RegistrationLink, &e.CreatedAt,
			&organizer.FirstName, &organizer.LastName,
			&e.ParticipantCount, &e.ViewerRegistered,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		organizer.ID = e.OrganizerID
		e.Organizer = &organizer
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}

// GetByID retrieves one event annotated for the viewer
func (r *EventRepository) GetByID(ctx context.Context, eventID, viewerID int64) (*models.Event, error) {
	rows, err := r.db.Query(ctx, eventSelect+` WHERE e.id = $2`, viewerID, eventID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, apperrors.ErrEventNotFound
	}
	return events[0], nil
}

// ListUpcoming retrieves events from today onward, soonest first
func (r *EventRepository) ListUpcoming(ctx context.Context, viewerID int64, limit int) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, eventSelect+`
		WHERE e.event_date >= CURRENT_DATE
		ORDER BY e.event_date, e.event_time NULLS LAST
		LIMIT $2
	`, viewerID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing upcoming events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// ListPast retrieves events before today, most recent first
func (r *EventRepository) ListPast(ctx context.Context, viewerID int64, limit int) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, eventSelect+`
		WHERE e.event_date < CURRENT_DATE
		ORDER BY e.event_date DESC
		LIMIT $2
	`, viewerID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing past events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

// ListRegistered retrieves the events the viewer is registered for, soonest
// first
func (r *EventRepository) ListRegistered(ctx context.Context, viewerID int64) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, eventSelect+`
		JOIN event_participants mine
			ON mine.event_id = e.id AND mine.user_id = $1 AND mine.status <> 'cancelled'
		ORDER BY e.event_date
	`, viewerID)
	if err != nil {
		return nil, fmt.Errorf("error listing registered events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}
