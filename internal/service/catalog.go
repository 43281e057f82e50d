package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/helenus/hotel-api/internal/model"
	"github.com/helenus/hotel-api/internal/storage"
	"github.com/helenus/hotel-api/internal/utils"
)

// ImageUpload is one image received over multipart form data, held in
// memory until it lands in the object store.
type ImageUpload struct {
	Data        []byte
	ContentType string
}

// RoomView is a room with its storage keys resolved to presigned URLs for
// the response. Resolution never touches the database; a room whose images
// cannot be signed is returned with the affected URLs omitted.
type RoomView struct {
	Room         model.Room
	FrontViewURL string
	PictureURLs  []string
}

// CatalogService orchestrates room records and their images. Writes follow
// the metadata-first discipline: the room row is durable before any upload
// starts, so a failed upload can leave a dangling key but never an image
// without a record.
type CatalogService struct {
	rooms RoomStore
	store storage.ObjectStore
}

// NewCatalogService wires a CatalogService.
func NewCatalogService(rooms RoomStore, store storage.ObjectStore) *CatalogService {
	return &CatalogService{rooms: rooms, store: store}
}

// CreateRoom validates the record, generates fresh storage keys, persists
// the room first and then uploads the slideshow images concurrently
// followed by the front view image. Requires at least one slideshow image
// and exactly one front view image.
func (s *CatalogService) CreateRoom(ctx context.Context, rm *model.Room, pictures []ImageUpload, front ImageUpload) error {
	if rm.Title == "" || rm.RoomNumber == "" || rm.Description == "" || len(rm.Configs) == 0 {
		return fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if len(pictures) == 0 || len(front.Data) == 0 {
		return fmt.Errorf("%w: missing images", ErrValidation)
	}

	keys := make([]string, len(pictures))
	for i := range pictures {
		k, err := utils.NewObjectKey()
		if err != nil {
			return err
		}
		keys[i] = k
	}
	frontKey, err := utils.NewObjectKey()
	if err != nil {
		return err
	}
	rm.Pictures = keys
	rm.FrontViewPicture = frontKey

	if _, err := s.rooms.Create(ctx, rm); err != nil {
		return err
	}

	if err := uploadAll(ctx, s.store, keys, pictures); err != nil {
		return err
	}
	return s.store.Put(ctx, frontKey, front.ContentType, front.Data)
}

// RoomPatch carries the replacement scalar fields for an update.
type RoomPatch struct {
	Title       string
	RoomNumber  string
	Description string
	Amenities   []string
	Configs     []model.BedConfig
	Status      string
}

// UpdateRoom replaces the scalar fields wholesale and recomputes the
// picture set: keys named in keep survive, newly supplied images are
// uploaded under fresh keys, and every previously stored image outside the
// retained set is deleted from the object store (the old front view too
// when replaced). Fails before any side effect when the resulting slideshow
// would be empty or the front view is dropped without a replacement.
func (s *CatalogService) UpdateRoom(ctx context.Context, id uint64, patch RoomPatch, keep []string, keepFront bool, newPictures []ImageUpload, newFront *ImageUpload) error {
	rm, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !keepFront && newFront == nil {
		return fmt.Errorf("%w: front view image is required", ErrValidation)
	}
	kept := make(map[string]bool, len(keep))
	retained := make([]string, 0, len(keep))
	for _, k := range keep {
		kept[k] = true
	}
	var orphans []string
	for _, k := range rm.Pictures {
		if kept[k] {
			retained = append(retained, k)
		} else {
			orphans = append(orphans, k)
		}
	}
	if len(retained)+len(newPictures) == 0 {
		return fmt.Errorf("%w: at least one slideshow image is required", ErrValidation)
	}

	newKeys := make([]string, len(newPictures))
	for i := range newPictures {
		k, err := utils.NewObjectKey()
		if err != nil {
			return err
		}
		newKeys[i] = k
	}
	if err := uploadAll(ctx, s.store, newKeys, newPictures); err != nil {
		return err
	}

	frontKey := rm.FrontViewPicture
	if newFront != nil {
		k, err := utils.NewObjectKey()
		if err != nil {
			return err
		}
		if err := s.store.Put(ctx, k, newFront.ContentType, newFront.Data); err != nil {
			return err
		}
		if rm.FrontViewPicture != "" {
			orphans = append(orphans, rm.FrontViewPicture)
		}
		frontKey = k
	}

	if len(orphans) > 0 {
		if err := s.store.Remove(ctx, orphans); err != nil {
			return err
		}
	}

	rm.Title = patch.Title
	rm.RoomNumber = patch.RoomNumber
	rm.Description = patch.Description
	rm.Amenities = patch.Amenities
	rm.Configs = patch.Configs
	rm.Status = patch.Status
	rm.Pictures = append(retained, newKeys...)
	rm.FrontViewPicture = frontKey
	return s.rooms.Update(ctx, &rm)
}

// DeleteRoom removes a room's stored images and then the room record.
// Storage deletion runs first and a failure blocks the record deletion, so
// the database never references images that were half removed; the
// reverse (deleted images, surviving record) is possible and resolved by
// retrying the delete.
func (s *CatalogService) DeleteRoom(ctx context.Context, id uint64) error {
	rm, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return err
	}
	keys := append([]string{}, rm.Pictures...)
	if rm.FrontViewPicture != "" {
		keys = append(keys, rm.FrontViewPicture)
	}
	if len(keys) > 0 {
		if err := s.store.Remove(ctx, keys); err != nil {
			return err
		}
	}
	return s.rooms.Delete(ctx, id)
}

// ListRooms returns every room with signed image URLs substituted for the
// storage keys. Individual signing failures are tolerated and the image
// omitted.
func (s *CatalogService) ListRooms(ctx context.Context) ([]RoomView, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RoomView, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, s.view(ctx, rm))
	}
	return out, nil
}

// GetRoom returns one room with signed image URLs.
func (s *CatalogService) GetRoom(ctx context.Context, id uint64) (RoomView, error) {
	rm, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return RoomView{}, err
	}
	return s.view(ctx, rm), nil
}

func (s *CatalogService) view(ctx context.Context, rm model.Room) RoomView {
	return RoomView{
		Room:         rm,
		FrontViewURL: storage.SignOne(ctx, s.store, rm.FrontViewPicture),
		PictureURLs:  storage.SignAll(ctx, s.store, rm.Pictures),
	}
}

// uploadAll stores each image under its key, dispatching the uploads
// concurrently and awaiting them together. A partial failure is reported as
// an error; already uploaded images are not rolled back.
func uploadAll(ctx context.Context, store storage.ObjectStore, keys []string, images []ImageUpload) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range images {
		key, img := keys[i], images[i]
		g.Go(func() error {
			return store.Put(gctx, key, img.ContentType, img.Data)
		})
	}
	return g.Wait()
}
