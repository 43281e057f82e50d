package repository

import (
	"context"
	"database/sql"

	"github.com/helenus/hotel-api/internal/model"
)

// ReviewRepo provides persistence for room reviews. Reviews drive the
// derived star rating on rooms; the aggregation itself lives in the
// service layer so it can be exercised without a database.
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo returns a new ReviewRepo bound to the given database.
func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// Create inserts a review and returns its ID.
func (r *ReviewRepo) Create(ctx context.Context, rv *model.Review) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO reviews (room_id, user_id, comment, rating) VALUES (?,?,?,?)",
		rv.RoomID, rv.UserID, rv.Comment, rv.Rating)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	rv.ID = uint64(id)
	return rv.ID, nil
}

// ListByRoom returns all reviews for a room, newest first.
func (r *ReviewRepo) ListByRoom(ctx context.Context, roomID uint64) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, room_id, user_id, comment, rating, created_at FROM reviews WHERE room_id=? ORDER BY created_at DESC",
		roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.RoomID, &rv.UserID, &rv.Comment, &rv.Rating, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

// RatingsByRoom returns just the rating values for a room. The aggregation
// reads the full set on every new review; there is no incremental counter,
// so two concurrent reviews can both read a stale set and the aggregate is
// last-write-wins on the room row.
func (r *ReviewRepo) RatingsByRoom(ctx context.Context, roomID uint64) ([]float64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT rating FROM reviews WHERE room_id=?", roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Delete removes a review row.
func (r *ReviewRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReviewNotFound
	}
	return nil
}
