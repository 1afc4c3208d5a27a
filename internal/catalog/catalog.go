// Package catalog supplies the candidate profile sets the discovery engine
// ranks. The engine only depends on the Catalog interface; concrete
// implementations (Postgres, Redis-cached, in-memory) are wired in at startup.
package catalog

import (
	"context"
	"errors"

	"github.com/seralin/creatorlink/internal/models"
)

// Service errors
var (
	// ErrUnavailable is returned when the backing store cannot deliver a
	// fully materialized profile set. Callers treat it as fatal for the
	// current request: no retry, no partial results.
	ErrUnavailable = errors.New("profile catalog unavailable")

	ErrUnknownKind = errors.New("unknown participant kind")
)

// Catalog supplies the full candidate set for a participant kind
type Catalog interface {
	FetchProfiles(ctx context.Context, kind models.ParticipantKind) ([]models.Profile, error)
}
