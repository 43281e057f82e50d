package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryCreateValidation(t *testing.T) {
	svc := NewGalleryService(newFakeGallery(), newFakeStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "Amenities", []ImageUpload{img(1)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, "Pool", "Not A Category", []ImageUpload{img(1)})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, "Pool", "Amenities", nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGalleryCreateUploadsPictures(t *testing.T) {
	entries := newFakeGallery()
	store := newFakeStore()
	svc := NewGalleryService(entries, store)

	entry, err := svc.Create(context.Background(), "Pool at dusk", "Outdoor & Garden",
		[]ImageUpload{img(1), img(2)})
	require.NoError(t, err)
	require.Len(t, entry.Pictures, 2)
	for _, key := range entry.Pictures {
		assert.Contains(t, store.objects, key)
	}
}

func TestGalleryUpdateLeavesOrphans(t *testing.T) {
	entries := newFakeGallery()
	store := newFakeStore()
	svc := NewGalleryService(entries, store)
	ctx := context.Background()

	entry, err := svc.Create(ctx, "Lobby", "Reception & Lounge", []ImageUpload{img(1), img(2)})
	require.NoError(t, err)

	keep := entry.Pictures[:1]
	dropped := entry.Pictures[1]

	updated, err := svc.Update(ctx, entry.ID, "Lobby refreshed", "Reception & Lounge", keep, []ImageUpload{img(3)})
	require.NoError(t, err)
	assert.Len(t, updated.Pictures, 2)
	assert.NotContains(t, updated.Pictures, dropped)

	// Unlike the room update path, nothing removes the dropped key from the
	// object store.
	assert.Empty(t, store.removed)
	assert.Contains(t, store.objects, dropped)
}

func TestGalleryDeleteKeepsObjects(t *testing.T) {
	entries := newFakeGallery()
	store := newFakeStore()
	svc := NewGalleryService(entries, store)
	ctx := context.Background()

	entry, err := svc.Create(ctx, "Terrace", "Outdoor & Garden", []ImageUpload{img(1)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, entry.ID))
	_, err = svc.Get(ctx, entry.ID)
	assert.Error(t, err)

	// Record gone, objects still in the bucket.
	assert.Len(t, store.objects, 1)
	assert.Empty(t, store.removed)
}
