package service

import (
	"context"
	"math"

	"github.com/helenus/hotel-api/internal/model"
)

// RoomStore is the slice of the room repository the services depend on.
type RoomStore interface {
	Create(ctx context.Context, rm *model.Room) (uint64, error)
	GetByID(ctx context.Context, id uint64) (model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
	Update(ctx context.Context, rm *model.Room) error
	UpdateRating(ctx context.Context, id uint64, rating float64) error
	Delete(ctx context.Context, id uint64) error
}

// ReviewStore is the slice of the review repository the review service
// depends on.
type ReviewStore interface {
	Create(ctx context.Context, rv *model.Review) (uint64, error)
	ListByRoom(ctx context.Context, roomID uint64) ([]model.Review, error)
	RatingsByRoom(ctx context.Context, roomID uint64) ([]float64, error)
	Delete(ctx context.Context, id uint64) error
}

// ReviewerDirectory resolves reviewer identities in one batch for review
// listings.
type ReviewerDirectory interface {
	GetByIDs(ctx context.Context, ids []uint64) (map[uint64]model.User, error)
}

// ReviewService persists reviews and maintains the derived star rating on
// rooms. The aggregate is recomputed from the full review set on each new
// review and written last-write-wins: two concurrent reviews on the same
// room can both read a stale set, and the final rating reflects whichever
// write lands last. The next review corrects it.
type ReviewService struct {
	rooms   RoomStore
	reviews ReviewStore
	users   ReviewerDirectory
}

// NewReviewService wires a ReviewService.
func NewReviewService(rooms RoomStore, reviews ReviewStore, users ReviewerDirectory) *ReviewService {
	return &ReviewService{rooms: rooms, reviews: reviews, users: users}
}

// AddReview validates the room reference, persists the review and rewrites
// the room's star rating as the mean of all its ratings rounded to one
// decimal place. Rating bounds are not enforced; the stored aggregate is
// whatever the arithmetic yields.
func (s *ReviewService) AddReview(ctx context.Context, roomID, userID uint64, comment string, rating float64) (model.Review, error) {
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		return model.Review{}, err
	}
	rv := model.Review{RoomID: roomID, UserID: userID, Comment: comment, Rating: rating}
	if _, err := s.reviews.Create(ctx, &rv); err != nil {
		return model.Review{}, err
	}

	ratings, err := s.reviews.RatingsByRoom(ctx, roomID)
	if err != nil {
		return model.Review{}, err
	}
	if err := s.rooms.UpdateRating(ctx, roomID, MeanRating(ratings)); err != nil {
		return model.Review{}, err
	}
	return rv, nil
}

// RoomReview is one review with its reviewer identity attached.
type RoomReview struct {
	Review       model.Review
	ReviewerName string
	ReviewerMail string
}

// ListForRoom returns the reviews of a room newest first, with reviewer
// identity summaries joined in memory from one batch fetch. Reviews whose
// author no longer exists keep empty identity fields.
func (s *ReviewService) ListForRoom(ctx context.Context, roomID uint64) ([]RoomReview, error) {
	reviews, err := s.reviews.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(reviews))
	seen := make(map[uint64]struct{}, len(reviews))
	for _, rv := range reviews {
		if _, ok := seen[rv.UserID]; !ok {
			seen[rv.UserID] = struct{}{}
			ids = append(ids, rv.UserID)
		}
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]RoomReview, 0, len(reviews))
	for _, rv := range reviews {
		rr := RoomReview{Review: rv}
		if u, ok := users[rv.UserID]; ok {
			rr.ReviewerName = u.FirstName
			rr.ReviewerMail = u.Email
		}
		out = append(out, rr)
	}
	return out, nil
}

// Remove deletes a review. The room's aggregate is deliberately not
// recomputed on deletion, matching the write path being review-add only.
func (s *ReviewService) Remove(ctx context.Context, id uint64) error {
	return s.reviews.Delete(ctx, id)
}

// MeanRating returns the arithmetic mean of ratings rounded to one decimal
// place, or 0 for an empty set.
func MeanRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return math.Round(sum/float64(len(ratings))*10) / 10
}
