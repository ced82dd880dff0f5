// Package photo stores uploaded round photos and hands out opaque
// references. The game core never inspects photo bytes; it only passes
// references between submissions and the judge pipeline.
package photo

import (
	"context"

	"github.com/google/uuid"
)

// MaxPhotoBytes bounds a single upload
const MaxPhotoBytes = 8 << 20

// Photo is a stored image with its content type
type Photo struct {
	Data        []byte
	ContentType string
}

// Store persists photos for the duration of a game
type Store interface {
	// Put stores a photo and returns its opaque reference
	Put(ctx context.Context, p Photo) (string, error)

	// Get retrieves a photo by reference
	Get(ctx context.Context, ref string) (Photo, error)

	// Delete removes a photo; unknown refs are a no-op
	Delete(ctx context.Context, ref string) error
}

// NewRef generates a fresh opaque photo reference
func NewRef() string {
	return "ph_" + uuid.NewString()
}
