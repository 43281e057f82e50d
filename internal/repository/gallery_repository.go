package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/helenus/hotel-api/internal/model"
)

// GalleryRepo provides CRUD operations for gallery entries. Picture keys
// are a JSON column like the room picture columns.
type GalleryRepo struct {
	db *sql.DB
}

// NewGalleryRepo returns a new GalleryRepo bound to the given database.
func NewGalleryRepo(db *sql.DB) *GalleryRepo { return &GalleryRepo{db: db} }

const galleryCols = "id,caption,category,pictures,created_at,updated_at"

func scanGallery(row interface{ Scan(...any) error }) (model.GalleryEntry, error) {
	var (
		g        model.GalleryEntry
		pictures []byte
	)
	err := row.Scan(&g.ID, &g.Caption, &g.Category, &pictures, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return model.GalleryEntry{}, err
	}
	if err := json.Unmarshal(pictures, &g.Pictures); err != nil {
		return model.GalleryEntry{}, err
	}
	return g, nil
}

// Create inserts a gallery entry and returns its ID.
func (r *GalleryRepo) Create(ctx context.Context, g *model.GalleryEntry) (uint64, error) {
	if g.Pictures == nil {
		g.Pictures = []string{}
	}
	pictures, err := json.Marshal(g.Pictures)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO gallery_entries (caption, category, pictures) VALUES (?,?,?)",
		g.Caption, g.Category, pictures)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	g.ID = uint64(id)
	return g.ID, nil
}

// GetByID fetches a gallery entry by id.
func (r *GalleryRepo) GetByID(ctx context.Context, id uint64) (model.GalleryEntry, error) {
	g, err := scanGallery(r.db.QueryRowContext(ctx,
		"SELECT "+galleryCols+" FROM gallery_entries WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.GalleryEntry{}, ErrGalleryNotFound
	}
	return g, err
}

// List returns all gallery entries, newest first.
func (r *GalleryRepo) List(ctx context.Context) ([]model.GalleryEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+galleryCols+" FROM gallery_entries ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.GalleryEntry
	for rows.Next() {
		g, err := scanGallery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Update replaces caption, category and the picture set wholesale.
func (r *GalleryRepo) Update(ctx context.Context, g *model.GalleryEntry) error {
	if g.Pictures == nil {
		g.Pictures = []string{}
	}
	pictures, err := json.Marshal(g.Pictures)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE gallery_entries SET caption=?, category=?, pictures=?, updated_at=NOW() WHERE id=?",
		g.Caption, g.Category, pictures, g.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, gerr := r.GetByID(ctx, g.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

// Delete removes a gallery entry row. Stored images are left behind in the
// object store; see the catalog delete path for the contrasting behavior.
func (r *GalleryRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM gallery_entries WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrGalleryNotFound
	}
	return nil
}
