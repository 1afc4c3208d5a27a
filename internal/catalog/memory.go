package catalog

import (
	"context"
	"fmt"

	"github.com/seralin/creatorlink/internal/models"
)

// MemoryCatalog serves a fixed profile set from memory. Used for tests and
// local development; the profile slices are treated as immutable after
// construction.
type MemoryCatalog struct {
	profiles map[models.ParticipantKind][]models.Profile
	err      error
}

// NewMemoryCatalog creates an in-memory catalog from fixture profiles
func NewMemoryCatalog(profiles ...models.Profile) *MemoryCatalog {
	byKind := make(map[models.ParticipantKind][]models.Profile)
	for _, p := range profiles {
		byKind[p.Kind] = append(byKind[p.Kind], p)
	}
	return &MemoryCatalog{profiles: byKind}
}

// NewFailingCatalog creates a catalog whose fetches always fail with
// ErrUnavailable, for exercising the engine's fatal-error path.
func NewFailingCatalog() *MemoryCatalog {
	return &MemoryCatalog{err: ErrUnavailable}
}

// FetchProfiles returns the fixture profiles for the given kind
func (c *MemoryCatalog) FetchProfiles(ctx context.Context, kind models.ParticipantKind) ([]models.Profile, error) {
	if c.err != nil {
		return nil, c.err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
	// Copy so callers can never observe mutation of the fixture set
	src := c.profiles[kind]
	out := make([]models.Profile, len(src))
	copy(out, src)
	return out, nil
}
