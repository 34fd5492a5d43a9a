package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesconnect/backend/internal/app/models"
	"github.com/mesconnect/backend/internal/pkg/apperrors"
)

type fakeFriendStore struct {
	sendRequestFn         func(context.Context, int64, int64) (*models.FriendEdge, error)
	acceptRequestFn       func(context.Context, int64, int64) error
	rejectRequestFn       func(context.Context, int64, int64) error
	removeFn              func(context.Context, int64, int64) error
	blockFn               func(context.Context, int64, int64) error
	listFriendsFn         func(context.Context, int64) ([]*models.Friend, error)
	listPendingRequestsFn func(context.Context, int64) ([]*models.Friend, error)
	isBlockedFn           func(context.Context, int64, int64) (bool, error)
}

func (f *fakeFriendStore) SendRequest(ctx context.Context, senderID, recipientID int64) (*models.FriendEdge, error) {
	if f.sendRequestFn == nil {
		return &models.FriendEdge{ID: 1, UserID: senderID, FriendID: recipientID, Status: models.FriendPending}, nil
	}
	return f.sendRequestFn(ctx, senderID, recipientID)
}

func (f *fakeFriendStore) AcceptRequest(ctx context.Context, edgeID, userID int64) error {
	if f.acceptRequestFn == nil {
		return nil
	}
	return f.acceptRequestFn(ctx, edgeID, userID)
}

func (f *fakeFriendStore) RejectRequest(ctx context.Context, edgeID, userID int64) error {
	if f.rejectRequestFn == nil {
		return nil
	}
	return f.rejectRequestFn(ctx, edgeID, userID)
}

func (f *fakeFriendStore) Remove(ctx context.Context, userID, friendID int64) error {
	if f.removeFn == nil {
		return nil
	}
	return f.removeFn(ctx, userID, friendID)
}

func (f *fakeFriendStore) Block(ctx context.Context, userID, otherID int64) error {
	if f.blockFn == nil {
		return nil
	}
	return f.blockFn(ctx, userID, otherID)
}

func (f *fakeFriendStore) ListFriends(ctx context.Context, userID int64) ([]*models.Friend, error) {
	if f.listFriendsFn == nil {
		return nil, nil
	}
	return f.listFriendsFn(ctx, userID)
}

func (f *fakeFriendStore) ListPendingRequests(ctx context.Context, userID int64) ([]*models.Friend, error) {
	if f.listPendingRequestsFn == nil {
		return nil, nil
	}
	return f.listPendingRequestsFn(ctx, userID)
}

func (f *fakeFriendStore) IsBlocked(ctx context.Context, userID, otherID int64) (bool, error) {
	if f.isBlockedFn == nil {
		return false, nil
	}
	return f.isBlockedFn(ctx, userID, otherID)
}

func TestFriendServiceSendRequest(t *testing.T) {
	t.Run("returns_created_edge", func(t *testing.T) {
		svc := NewFriendService(&fakeFriendStore{
			sendRequestFn: func(_ context.Context, senderID, recipientID int64) (*models.FriendEdge, error) {
				assert.Equal(t, int64(1), senderID)
				assert.Equal(t, int64(2), recipientID)
				return &models.FriendEdge{ID: 10, UserID: 1, FriendID: 2, Status: models.FriendPending}, nil
			},
		}, zerolog.Nop())

		edge, err := svc.SendRequest(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(10), edge.ID)
		assert.Equal(t, models.FriendPending, edge.Status)
	})

	t.Run("propagates_conflicts", func(t *testing.T) {
		for _, want := range []error{
			apperrors.ErrSelfFriendship,
			apperrors.ErrAlreadyFriends,
			apperrors.ErrFriendRequestPending,
			apperrors.ErrUserBlocked,
		} {
			svc := NewFriendService(&fakeFriendStore{
				sendRequestFn: func(_ context.Context, _, _ int64) (*models.FriendEdge, error) {
					return nil, want
				},
			}, zerolog.Nop())

			_, err := svc.SendRequest(context.Background(), 1, 2)
			assert.ErrorIs(t, err, want)
		}
	})
}

func TestFriendServiceAcceptReject(t *testing.T) {
	t.Run("accept_passes_caller_identity", func(t *testing.T) {
		var gotEdge, gotUser int64
		svc := NewFriendService(&fakeFriendStore{
			acceptRequestFn: func(_ context.Context, edgeID, userID int64) error {
				gotEdge, gotUser = edgeID, userID
				return nil
			},
		}, zerolog.Nop())

		require.NoError(t, svc.AcceptRequest(context.Background(), 5, 2))
		assert.Equal(t, int64(5), gotEdge)
		assert.Equal(t, int64(2), gotUser)
	})

	t.Run("reject_propagates_not_found", func(t *testing.T) {
		svc := NewFriendService(&fakeFriendStore{
			rejectRequestFn: func(_ context.Context, _, _ int64) error {
				return apperrors.ErrFriendEdgeNotFound
			},
		}, zerolog.Nop())
		assert.ErrorIs(t, svc.RejectRequest(context.Background(), 5, 2), apperrors.ErrFriendEdgeNotFound)
	})
}

func TestFriendServiceBlock(t *testing.T) {
	var blocked int64
	svc := NewFriendService(&fakeFriendStore{
		blockFn: func(_ context.Context, userID, otherID int64) error {
			assert.Equal(t, int64(1), userID)
			blocked = otherID
			return nil
		},
	}, zerolog.Nop())

	require.NoError(t, svc.Block(context.Background(), 1, 4))
	assert.Equal(t, int64(4), blocked)
}

func TestFriendServiceListFriends(t *testing.T) {
	now := time.Now()
	svc := NewFriendService(&fakeFriendStore{
		listFriendsFn: func(_ context.Context, userID int64) ([]*models.Friend, error) {
			assert.Equal(t, int64(1), userID)
			return []*models.Friend{
				{User: &models.User{ID: 2, FirstName: "Amy"}, EdgeID: 10, Status: models.FriendAccepted, FriendsSince: now},
			}, nil
		},
	}, zerolog.Nop())

	friends, err := svc.ListFriends(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, int64(2), friends[0].User.ID)
	assert.Equal(t, models.FriendAccepted, friends[0].Status)
}
