package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/helenus/hotel-api/internal/model"
)

// RoomRepo provides CRUD operations for catalog rooms. Amenities, bed
// configurations and picture keys live in JSON columns on the rooms row,
// mirroring the document shape the frontend consumes. The star rating is a
// denormalized aggregate rewritten by the review workflow.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// DB exposes the underlying handle for callers that need transactions.
func (r *RoomRepo) DB() *sql.DB { return r.db }

const roomCols = "id,title,room_number,description,amenities,configs,pictures,front_view_picture,status,star_rating,created_at,updated_at"

func scanRoom(row interface{ Scan(...any) error }) (model.Room, error) {
	var (
		rm        model.Room
		amenities []byte
		configs   []byte
		pictures  []byte
	)
	err := row.Scan(&rm.ID, &rm.Title, &rm.RoomNumber, &rm.Description,
		&amenities, &configs, &pictures, &rm.FrontViewPicture,
		&rm.Status, &rm.StarRating, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return model.Room{}, err
	}
	if err := json.Unmarshal(amenities, &rm.Amenities); err != nil {
		return model.Room{}, err
	}
	if err := json.Unmarshal(configs, &rm.Configs); err != nil {
		return model.Room{}, err
	}
	if err := json.Unmarshal(pictures, &rm.Pictures); err != nil {
		return model.Room{}, err
	}
	return rm, nil
}

func roomJSON(rm *model.Room) (amenities, configs, pictures []byte, err error) {
	if rm.Amenities == nil {
		rm.Amenities = []string{}
	}
	if rm.Pictures == nil {
		rm.Pictures = []string{}
	}
	if amenities, err = json.Marshal(rm.Amenities); err != nil {
		return nil, nil, nil, err
	}
	if configs, err = json.Marshal(rm.Configs); err != nil {
		return nil, nil, nil, err
	}
	if pictures, err = json.Marshal(rm.Pictures); err != nil {
		return nil, nil, nil, err
	}
	return amenities, configs, pictures, nil
}

// Create inserts a room and returns its ID. Room numbers carry a unique
// index; MySQL error 1062 maps to ErrRoomNumberExists.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) (uint64, error) {
	amenities, configs, pictures, err := roomJSON(rm)
	if err != nil {
		return 0, err
	}
	if rm.Status == "" {
		rm.Status = model.RoomAvailable
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO rooms (title, room_number, description, amenities, configs, pictures, front_view_picture, status, star_rating) VALUES (?,?,?,?,?,?,?,?,0)",
		rm.Title, rm.RoomNumber, rm.Description, amenities, configs, pictures, rm.FrontViewPicture, rm.Status)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrRoomNumberExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	rm.ID = uint64(id)
	return rm.ID, nil
}

// GetByID fetches a room by id.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	rm, err := scanRoom(r.db.QueryRowContext(ctx,
		"SELECT "+roomCols+" FROM rooms WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Room{}, ErrRoomNotFound
	}
	return rm, err
}

// List returns all rooms ordered by room number.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+roomCols+" FROM rooms ORDER BY room_number")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

// Update replaces all scalar fields and the JSON columns of a room
// wholesale. The star rating is left untouched; only UpdateRating rewrites
// it.
func (r *RoomRepo) Update(ctx context.Context, rm *model.Room) error {
	amenities, configs, pictures, err := roomJSON(rm)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE rooms SET title=?, room_number=?, description=?, amenities=?, configs=?, pictures=?, front_view_picture=?, status=?, updated_at=NOW() WHERE id=?",
		rm.Title, rm.RoomNumber, rm.Description, amenities, configs, pictures, rm.FrontViewPicture, rm.Status, rm.ID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrRoomNumberExists
		}
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		// Zero affected rows is ambiguous in MySQL (identical values count
		// as zero), so confirm the row exists before reporting not found.
		if _, gerr := r.GetByID(ctx, rm.ID); gerr != nil {
			return gerr
		}
	}
	return err
}

// UpdateRating rewrites the derived star rating of a room.
func (r *RoomRepo) UpdateRating(ctx context.Context, id uint64, rating float64) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE rooms SET star_rating=?, updated_at=NOW() WHERE id=?", rating, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, gerr := r.GetByID(ctx, id); gerr != nil {
			return gerr
		}
	}
	return nil
}

// Delete removes a room row.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM rooms WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRoomNotFound
	}
	return nil
}
