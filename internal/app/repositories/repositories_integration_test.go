//go:build integration

package repositories_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesconnect/backend/internal/app/migrations"
	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/app/repositories"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
)

// setupTestDB connects to the database named by TEST_DATABASE_URL, applies
// the migrations and wipes all rows so every test starts from an empty
// schema. Tests are skipped when no database is configured.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool).MigrateFromDirectory("../../../migrations"))

	_, err = pool.Exec(context.Background(), `
		TRUNCATE users, refresh_tokens, friends, messages, groups, group_members,
			group_messages, confessions, confession_likes, events,
			event_participants, announcements, contributions, notifications,
			job_postings, job_applications
		RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
	return pool
}

func createTestUser(t *testing.T, users *repositories.UserRepository, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Email:      email,
		Password:   "$2a$10$hash",
		Role:       role,
		FirstName:  "Test",
		LastName:   "User",
		IsVerified: true,
	}
	_, err := users.Create(context.Background(), user)
	require.NoError(t, err)
	return user
}

func notificationTitles(t *testing.T, repo *repositories.NotificationRepository, userID int64) []string {
	t.Helper()
	notifications, err := repo.ListForUser(context.Background(), userID, false, 50)
	require.NoError(t, err)
	titles := make([]string, 0, len(notifications))
	for _, n := range notifications {
		titles = append(titles, n.Title)
	}
	return titles
}

func TestUserRepositoryCreateWritesWelcomeNotification(t *testing.T) {
	ctx := context.Background()
	pool := setupTestDB(t)
	users := repositories.NewUserRepository(pool)
	notifications := repositories.NewNotificationRepository(pool)

	user := createTestUser(t, users, "jane@mes.edu", models.RoleStudent)

	list, err := notifications.ListForUser(ctx, user.ID, false, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Welcome to MES-Connect!", list[0].Title)
	assert.Equal(t, models.NotificationSystem, list[0].Type)
	assert.False(t, list[0].IsRead)
}

func TestFriendRepositoryPairUniqueness(t *testing.T) {
	ctx := context.Background()
	pool := setupTestDB(t)
	users := repositories.NewUserRepository(pool)
	friends := repositories.NewFriendRepository(pool)

	a := createTestUser(t, users, "a@mes.edu", models.RoleStudent)
	b := createTestUser(t, users, "b@mes.edu", models.RoleStudent)

	_, err := friends.SendRequest(ctx, a.ID, b.ID)
	require.NoError(t, err)

	t.Run("same_direction_rejected", func(t *testing.T) {
		_, err := friends.SendRequest(ctx, a.ID, b.ID)
		assert.ErrorIs(t, err, apperrors.ErrFriendRequestPending)
	})

	t.Run("reverse_direction_rejected", func(t *testing.T) {
		_, err := friends.SendRequest(ctx, b.ID, a.ID)
		assert.ErrorIs(t, err, apperrors.ErrFriendRequestPending)
	})

	t.Run("single_row_per_pair", func(t *testing.T) {
		var count int
		err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM friends`).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestFriendRepositoryBlockOverridesEdge(t *testing.T) {
	ctx := context.Background()
	pool := setupTestDB(t)
	users := repositories.NewUserRepository(pool)
	friends := repositories.NewFriendRepository(pool)

	a := createTestUser(t, users, "a@mes.edu", models.RoleStudent)
	b := createTestUser(t, users, "b@mes.edu", models.RoleStudent)

	_, err := friends.SendRequest(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.NoError(t, friends.Block(ctx, b.ID, a.ID))

	blocked, err := friends.IsBlocked(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, blocked)

	_, err = friends.SendRequest(ctx, a.ID, b.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserBlocked)
}

func TestEventRepositoryCapacityBound(t *testing.T) {
	ctx := context.Background()
	pool := setupTestDB(t)
	users := repositories.NewUserRepository(pool)
	events := repositories.NewEventRepository(pool)

	organizer := createTestUser(t, users, "organizer@mes.edu", models.RoleStudent)
	attendee := createTestUser(t, users, "attendee@mes.edu", models.RoleStudent)

	capacity := 1
	event := &models.Event{
		Title:           "Capstone Demo",
		Description:     "Semester project showcase",
		OrganizerID:     organizer.ID,
		EventDate:       time.Now().AddDate(0, 0, 7),
		MaxParticipants: &capacity,
		IsPublic:        true,
		Category:        "academic",
	}
	require.NoError(t, events.Create(ctx, event))

	// the organizer's auto-registration already fills the only seat
	err := events.Register(ctx, event.ID, attendee.ID)
	assert.ErrorIs(t, err, apperrors.ErrEventFull)

	var registered int
	require.NoError(t, pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM event_participants
		WHERE event_id = $1 AND status = 'registered'
	`, event.ID).Scan(&registered))
	assert.Equal(t, 1, registered)
}

func TestEventRepositoryRegisterAndCancel(t *testing.T) {
	ctx := context.Background()
	pool := setupTestDB(t)
	users := repositories.NewUserRepository(pool)
	events := repositories.NewEventRepository(pool)
	notifications := repositories.NewNotificationRepository(pool)

	organizer := createTestUser(t, users, "organizer@mes.edu", models.RoleStudent)
	attendee := createTestUser(t, users, "attendee@mes.edu", models.RoleStudent)
	latecomer := createTestUser(t, users, "latecomer@mes.edu", models.RoleStudent)

	capacity := 2
	event := &models.Event{
		Title:           "Alumni Meetup",
		Description:     "Networking evening",
		OrganizerID:     organizer.ID,
		EventDate:       time.Now().AddDate(0, 0, 14),
		MaxParticipants: &capacity,
		IsPublic:        true,
		Category:        "social",
	}
	require.NoError(t, events.Create(ctx, event))
	require.NoError(t, events.Register(ctx, event.ID, attendee.ID))

	t.Run("registrant_and_organizer_notified", func(t *testing.T) {
		assert.Contains(t, notificationTitles(t, notifications, attendee.ID), "Event Registration")
		assert.Contains(t, notificationTitles(t, notifications, organizer.ID), "New Event Registration")
	})

	t.Run("duplicate_registration_rejected", func(t *testing.T) {
		assert.ErrorIs(t, events.Register(ctx, event.ID, attendee.ID), apperrors.ErrAlreadyRegistered)
	})

	t.Run("event_is_full", func(t *testing.T) {
		assert.ErrorIs(t, events.Register(ctx, event.ID, latecomer.ID), apperrors.ErrEventFull)
	})

	t.Run("cancel_frees_the_seat", func(t *testing.T) {
		require.NoError(t, events.CancelRegistration(ctx, event.ID, attendee.ID))

		var status string
		require.NoError(t, pool.QueryRow(ctx, `
			SELECT status FROM event_participants WHERE event_id = $1 AND user_id = $2
		`, event.ID, attendee.ID).Scan(&status))
		assert.Equal(t, "cancelled", status)

		require.NoError(t, events.Register(ctx, event.ID, latecomer.ID))
	})

	t.Run("cancel_without_registration_rejected", func(t *testing.T) {
		assert.ErrorIs(t, events.CancelRegistration(ctx, event.ID, attendee.ID), apperrors.ErrNotRegistered)
	})

	t.Run("cancelled_row_is_reactivated", func(t *testing.T) {
		require.NoError(t, events.CancelRegistration(ctx, event.ID, latecomer.ID))
		require.NoError(t, events.Register(ctx, event.ID, attendee.ID))

		var status string
		require.NoError(t, pool.QueryRow(ctx, `
			SELECT status FROM event_participants WHERE event_id = $1 AND user_id = $2
		`, event.ID, attendee.ID).Scan(&status))
		assert.Equal(t, "registered", status)
	})
}

func TestConfessionRepositoryToggleLike(t *testing.T) {
	ctx := context.Background()
	pool := setupTestDB(t)
	users := repositories.NewUserRepository(pool)
	confessions := repositories.NewConfessionRepository(pool)

	author := createTestUser(t, users, "author@mes.edu", models.RoleStudent)
	reader := createTestUser(t, users, "reader@mes.edu", models.RoleStudent)

	confession, err := confessions.Submit(ctx, author.ID, "the library wifi is haunted", false, nil)
	require.NoError(t, err)

	t.Run("like_pending_confession", func(t *testing.T) {
		liked, likes, err := confessions.ToggleLike(ctx, confession.ID, reader.ID)
		require.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, 1, likes)
	})

	t.Run("second_toggle_unlikes", func(t *testing.T) {
		liked, likes, err := confessions.ToggleLike(ctx, confession.ID, reader.ID)
		require.NoError(t, err)
		assert.False(t, liked)
		assert.Equal(t, 0, likes)
	})

	t.Run("counter_recomputed_from_rows", func(t *testing.T) {
		// a drifted counter is corrected by the next toggle
		_, err := pool.Exec(ctx, `UPDATE confessions SET likes = 41 WHERE id = $1`, confession.ID)
		require.NoError(t, err)

		liked, likes, err := confessions.ToggleLike(ctx, confession.ID, reader.ID)
		require.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, 1, likes)
	})

	t.Run("unknown_confession", func(t *testing.T) {
		_, _, err := confessions.ToggleLike(ctx, 9999, reader.ID)
		assert.ErrorIs(t, err, apperrors.ErrConfessionNotFound)
	})
}

func TestConfessionRepositoryModerate(t *testing.T) {
	ctx := context.Background()
	pool := setupTestDB(t)
	users := repositories.NewUserRepository(pool)
	confessions := repositories.NewConfessionRepository(pool)

	author := createTestUser(t, users, "author@mes.edu", models.RoleStudent)

	confession, err := confessions.Submit(ctx, author.ID, "exam season confession", false, nil)
	require.NoError(t, err)

	require.NoError(t, confessions.Moderate(ctx, confession.ID, models.ConfessionRejected))

	t.Run("rejected_can_be_restored", func(t *testing.T) {
		assert.NoError(t, confessions.Moderate(ctx, confession.ID, models.ConfessionApproved))
	})

	t.Run("approved_is_terminal", func(t *testing.T) {
		err := confessions.Moderate(ctx, confession.ID, models.ConfessionRejected)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
	})
}

func TestMessageRepositoryThreadReadFlags(t *testing.T) {
	ctx := context.Background()
	pool := setupTestDB(t)
	users := repositories.NewUserRepository(pool)
	messages := repositories.NewMessageRepository(pool)

	viewer := createTestUser(t, users, "viewer@mes.edu", models.RoleStudent)
	other := createTestUser(t, users, "other@mes.edu", models.RoleStudent)

	bodies := []string{"hey", "hi", "how are you", "fine", "good"}
	senders := []int64{other.ID, viewer.ID, other.ID, viewer.ID, other.ID}
	for i, body := range bodies {
		receiver := viewer.ID
		if senders[i] == viewer.ID {
			receiver = other.ID
		}
		m, err := messages.Send(ctx, senders[i], receiver, body)
		require.NoError(t, err)
		// spread the timestamps so ordering is deterministic
		_, err = pool.Exec(ctx, `UPDATE messages SET created_at = $2 WHERE id = $1`,
			m.ID, time.Now().Add(time.Duration(i-10)*time.Minute))
		require.NoError(t, err)
	}

	thread, err := messages.GetThread(ctx, viewer.ID, other.ID, 50)
	require.NoError(t, err)
	require.Len(t, thread, 5)
	for i, m := range thread {
		assert.Equal(t, bodies[i], m.Body, fmt.Sprintf("message %d out of order", i))
	}

	t.Run("viewer_inbox_marked_read", func(t *testing.T) {
		unread, err := messages.UnreadTotal(ctx, viewer.ID)
		require.NoError(t, err)
		assert.Zero(t, unread)
	})

	t.Run("counterpart_inbox_untouched", func(t *testing.T) {
		unread, err := messages.UnreadTotal(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), unread)
	})
}

func TestContributionRepositoryStatusTransitions(t *testing.T) {
	ctx := context.Background()
	pool := setupTestDB(t)
	users := repositories.NewUserRepository(pool)
	contributions := repositories.NewContributionRepository(pool)

	alumnus := createTestUser(t, users, "alum@mes.edu", models.RoleAlumni)

	newContribution := func(t *testing.T) *models.Contribution {
		t.Helper()
		c := &models.Contribution{
			AlumniID: alumnus.ID,
			Type:     models.ContributionMentorship,
			Title:    "Mock Interviews",
		}
		require.NoError(t, contributions.Create(ctx, c))
		return c
	}

	t.Run("approved_can_be_rejected", func(t *testing.T) {
		c := newContribution(t)
		require.NoError(t, contributions.UpdateStatus(ctx, c.ID, models.ContributionApproved))
		assert.NoError(t, contributions.UpdateStatus(ctx, c.ID, models.ContributionRejected))
	})

	t.Run("completed_is_terminal", func(t *testing.T) {
		c := newContribution(t)
		require.NoError(t, contributions.UpdateStatus(ctx, c.ID, models.ContributionApproved))
		require.NoError(t, contributions.UpdateStatus(ctx, c.ID, models.ContributionCompleted))
		err := contributions.UpdateStatus(ctx, c.ID, models.ContributionRejected)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
	})

	t.Run("rejected_is_terminal", func(t *testing.T) {
		c := newContribution(t)
		require.NoError(t, contributions.UpdateStatus(ctx, c.ID, models.ContributionRejected))
		err := contributions.UpdateStatus(ctx, c.ID, models.ContributionApproved)
		assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
	})
}

func TestGroupRepositoryPostMessageWithoutMembership(t *testing.T) {
	ctx := context.Background()
	pool := setupTestDB(t)
	users := repositories.NewUserRepository(pool)
	groups := repositories.NewGroupRepository(pool)

	creator := createTestUser(t, users, "creator@mes.edu", models.RoleStudent)
	outsider := createTestUser(t, users, "outsider@mes.edu", models.RoleStudent)

	group := &models.Group{Name: "Debate Society", CreatedBy: creator.ID, IsPublic: true, Category: "general"}
	require.NoError(t, groups.Create(ctx, group))

	message := &models.GroupMessage{GroupID: group.ID, SenderID: outsider.ID, Body: "when is the next session?"}
	require.NoError(t, groups.PostMessage(ctx, message))
	assert.NotZero(t, message.ID)

	history, err := groups.ListMessages(ctx, group.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, outsider.ID, history[0].SenderID)
}
