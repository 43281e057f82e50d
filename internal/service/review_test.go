package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helenus/hotel-api/internal/model"
	"github.com/helenus/hotel-api/internal/repository"
)

func TestMeanRating(t *testing.T) {
	cases := []struct {
		name    string
		ratings []float64
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []float64{4}, 4},
		{"exact mean", []float64{4, 5, 3}, 4},
		{"rounds to one decimal", []float64{4, 5, 3, 5}, 4.3},
		{"rounds up", []float64{4, 5}, 4.5},
		{"all low", []float64{1, 1, 2}, 1.3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MeanRating(tc.ratings))
		})
	}
}

func TestAddReviewRecomputesRating(t *testing.T) {
	rooms := newFakeRooms()
	reviews := newFakeReviews()
	users := newFakeUsers()
	svc := NewReviewService(rooms, reviews, users)

	rm := rooms.add(model.Room{Title: "Deluxe", RoomNumber: "101"})
	guest := users.add(model.User{UserName: "ana", FirstName: "Ana", Email: "ana@example.com", IsVerified: true})

	ctx := context.Background()
	for _, rating := range []float64{4, 5, 3} {
		_, err := svc.AddReview(ctx, rm.ID, guest.ID, "stay", rating)
		require.NoError(t, err)
	}

	got, err := rooms.GetByID(ctx, rm.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.StarRating)

	_, err = svc.AddReview(ctx, rm.ID, guest.ID, "again", 5)
	require.NoError(t, err)

	got, err = rooms.GetByID(ctx, rm.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.3, got.StarRating)
}

func TestAddReviewUnknownRoom(t *testing.T) {
	svc := NewReviewService(newFakeRooms(), newFakeReviews(), newFakeUsers())

	_, err := svc.AddReview(context.Background(), 42, 1, "ghost", 5)
	assert.ErrorIs(t, err, repository.ErrRoomNotFound)
}

func TestListForRoomJoinsReviewers(t *testing.T) {
	rooms := newFakeRooms()
	reviews := newFakeReviews()
	users := newFakeUsers()
	svc := NewReviewService(rooms, reviews, users)

	rm := rooms.add(model.Room{Title: "Suite", RoomNumber: "201"})
	ana := users.add(model.User{UserName: "ana", FirstName: "Ana", Email: "ana@example.com"})

	ctx := context.Background()
	_, err := svc.AddReview(ctx, rm.ID, ana.ID, "lovely", 5)
	require.NoError(t, err)
	// Reviewer 99 no longer exists; identity fields stay empty.
	_, err = svc.AddReview(ctx, rm.ID, 99, "meh", 2)
	require.NoError(t, err)

	out, err := svc.ListForRoom(ctx, rm.ID)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Newest first.
	assert.Equal(t, "meh", out[0].Review.Comment)
	assert.Empty(t, out[0].ReviewerName)
	assert.Equal(t, "Ana", out[1].ReviewerName)
	assert.Equal(t, "ana@example.com", out[1].ReviewerMail)
}

func TestRemoveLeavesAggregateUntouched(t *testing.T) {
	rooms := newFakeRooms()
	reviews := newFakeReviews()
	svc := NewReviewService(rooms, reviews, newFakeUsers())

	rm := rooms.add(model.Room{Title: "Twin", RoomNumber: "301"})
	ctx := context.Background()

	rv, err := svc.AddReview(ctx, rm.ID, 1, "fine", 2)
	require.NoError(t, err)
	_, err = svc.AddReview(ctx, rm.ID, 2, "great", 5)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, rv.ID))

	// The delete path does not recompute; the stale mean stays.
	got, err := rooms.GetByID(ctx, rm.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.5, got.StarRating)
}
