// Package storage abstracts the object store that holds room and gallery
// images. Database rows only ever carry opaque keys; turning a key into a
// fetchable URL is a read-time operation that produces a time-limited
// presigned link and is never persisted.
package storage

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// ErrInvalidKey is returned when an empty storage key is presented for
// signing or upload.
var ErrInvalidKey = errors.New("invalid object key")

// ObjectStore is the narrow contract the services need from the blob
// backend. Put and Remove mutate the store; SignedURL is side-effect free
// and safe to call concurrently and redundantly.
type ObjectStore interface {
	// Put uploads one object under the given key.
	Put(ctx context.Context, key, contentType string, data []byte) error
	// Remove deletes the given keys in one batch. Missing keys are not an
	// error.
	Remove(ctx context.Context, keys []string) error
	// SignedURL issues a time-limited read URL for the key. Fails with
	// ErrInvalidKey when the key is empty.
	SignedURL(ctx context.Context, key string) (string, error)
}

// SignAll resolves every key to a presigned URL, tolerating individual
// failures: a key that cannot be signed is logged and omitted rather than
// failing the whole read.
func SignAll(ctx context.Context, store ObjectStore, keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		u, err := store.SignedURL(ctx, k)
		if err != nil {
			log.Error().Err(err).Str("key", k).Msg("sign image url failed")
			continue
		}
		out = append(out, u)
	}
	return out
}

// SignOne resolves a single key, returning the empty string when signing
// fails so callers can render records whose image is temporarily
// unavailable.
func SignOne(ctx context.Context, store ObjectStore, key string) string {
	u, err := store.SignedURL(ctx, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("sign image url failed")
		return ""
	}
	return u
}
