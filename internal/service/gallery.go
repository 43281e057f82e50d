package service

import (
	"context"
	"fmt"

	"github.com/helenus/hotel-api/internal/model"
	"github.com/helenus/hotel-api/internal/storage"
	"github.com/helenus/hotel-api/internal/utils"
)

// GalleryStore is the slice of the gallery repository the gallery service
// depends on.
type GalleryStore interface {
	Create(ctx context.Context, g *model.GalleryEntry) (uint64, error)
	GetByID(ctx context.Context, id uint64) (model.GalleryEntry, error)
	List(ctx context.Context) ([]model.GalleryEntry, error)
	Update(ctx context.Context, g *model.GalleryEntry) error
	Delete(ctx context.Context, id uint64) error
}

// GalleryView is a gallery entry with signed picture URLs.
type GalleryView struct {
	Entry       model.GalleryEntry
	PictureURLs []string
}

// GalleryService manages categorized picture sets. Image handling follows
// the catalog discipline on create (metadata first, then concurrent
// uploads). Update and delete leave removed keys behind in the object
// store: unlike the room paths nothing cleans up gallery orphans, which is
// the inherited behavior of this surface rather than an oversight to patch
// here.
type GalleryService struct {
	entries GalleryStore
	store   storage.ObjectStore
}

// NewGalleryService wires a GalleryService.
func NewGalleryService(entries GalleryStore, store storage.ObjectStore) *GalleryService {
	return &GalleryService{entries: entries, store: store}
}

// Create validates caption, category and images, persists the entry and
// uploads the pictures concurrently.
func (s *GalleryService) Create(ctx context.Context, caption, category string, pictures []ImageUpload) (model.GalleryEntry, error) {
	if caption == "" || category == "" {
		return model.GalleryEntry{}, fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if !model.ValidGalleryCategory(category) {
		return model.GalleryEntry{}, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	if len(pictures) == 0 {
		return model.GalleryEntry{}, fmt.Errorf("%w: missing images", ErrValidation)
	}

	keys := make([]string, len(pictures))
	for i := range pictures {
		k, err := utils.NewObjectKey()
		if err != nil {
			return model.GalleryEntry{}, err
		}
		keys[i] = k
	}
	g := model.GalleryEntry{Caption: caption, Category: category, Pictures: keys}
	if _, err := s.entries.Create(ctx, &g); err != nil {
		return model.GalleryEntry{}, err
	}

	if err := uploadAll(ctx, s.store, keys, pictures); err != nil {
		return model.GalleryEntry{}, err
	}
	return g, nil
}

// Update replaces caption and category and recomputes the picture set from
// the keep-list plus any newly uploaded images.
func (s *GalleryService) Update(ctx context.Context, id uint64, caption, category string, keep []string, newPictures []ImageUpload) (model.GalleryEntry, error) {
	g, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return model.GalleryEntry{}, err
	}
	if caption == "" || !model.ValidGalleryCategory(category) {
		return model.GalleryEntry{}, fmt.Errorf("%w: caption and a known category are required", ErrValidation)
	}

	kept := make(map[string]bool, len(g.Pictures))
	for _, k := range g.Pictures {
		kept[k] = true
	}
	retained := make([]string, 0, len(keep))
	for _, k := range keep {
		if kept[k] {
			retained = append(retained, k)
		}
	}

	newKeys := make([]string, len(newPictures))
	for i := range newPictures {
		k, err := utils.NewObjectKey()
		if err != nil {
			return model.GalleryEntry{}, err
		}
		newKeys[i] = k
	}
	if len(newKeys) > 0 {
		if err := uploadAll(ctx, s.store, newKeys, newPictures); err != nil {
			return model.GalleryEntry{}, err
		}
	}

	g.Caption = caption
	g.Category = category
	g.Pictures = append(retained, newKeys...)
	if err := s.entries.Update(ctx, &g); err != nil {
		return model.GalleryEntry{}, err
	}
	return g, nil
}

// Delete removes the database record only.
func (s *GalleryService) Delete(ctx context.Context, id uint64) error {
	return s.entries.Delete(ctx, id)
}

// List returns every gallery entry with signed picture URLs.
func (s *GalleryService) List(ctx context.Context) ([]GalleryView, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]GalleryView, 0, len(entries))
	for _, g := range entries {
		out = append(out, GalleryView{
			Entry:       g,
			PictureURLs: storage.SignAll(ctx, s.store, g.Pictures),
		})
	}
	return out, nil
}

// Get returns one gallery entry with signed picture URLs.
func (s *GalleryService) Get(ctx context.Context, id uint64) (GalleryView, error) {
	g, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return GalleryView{}, err
	}
	return GalleryView{Entry: g, PictureURLs: storage.SignAll(ctx, s.store, g.Pictures)}, nil
}
