// Package discovery implements the matching engine: filter predicate
// building, match scoring and deterministic ranking with pagination over a
// catalog of candidate profiles.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/seralin/creatorlink/internal/catalog"
	"github.com/seralin/creatorlink/internal/config"
	"github.com/seralin/creatorlink/internal/models"
	"github.com/seralin/creatorlink/internal/monitoring"
)

// Service handles discovery requests against an injected profile catalog
type Service struct {
	catalog         catalog.Catalog
	defaultPageSize int
	maxPageSize     int
}

// NewService creates a new discovery service
func NewService(cat catalog.Catalog, cfg *config.DiscoveryConfig) *Service {
	return &Service{
		catalog:         cat,
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
	}
}

// Request represents a discovery request
type Request struct {
	Kind     models.ParticipantKind
	Spec     models.FilterSpec
	Page     int
	PageSize int
}

// Response represents a paginated page of ranked match results
type Response struct {
	Items      []models.MatchResult `json:"items"`
	TotalCount int                  `json:"total_count"`
	TotalPages int                  `json:"total_pages"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
}

// Discover fetches the candidate set for the requested participant kind and
// ranks it against the filter spec. A catalog failure is fatal for the
// request: no retry, no partial result. An empty result set is a valid,
// non-error outcome.
func (s *Service) Discover(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	if !req.Kind.Valid() {
		monitoring.RecordDiscovery(string(req.Kind), "invalid", time.Since(start), 0)
		return nil, fmt.Errorf("%w: unknown participant kind %q", ErrInvalidFilter, string(req.Kind))
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = s.defaultPageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	if err := ValidateSpec(req.Spec); err != nil {
		monitoring.RecordDiscovery(string(req.Kind), "invalid", time.Since(start), 0)
		return nil, err
	}

	candidates, err := s.catalog.FetchProfiles(ctx, req.Kind)
	if err != nil {
		monitoring.RecordDiscovery(string(req.Kind), "catalog_error", time.Since(start), 0)
		if errors.Is(err, catalog.ErrUnknownKind) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
		return nil, err
	}

	seeker := SeekerFromSpec(req.Spec)
	items, totalCount, totalPages, err := Rank(candidates, seeker, req.Spec, page, pageSize)
	if err != nil {
		monitoring.RecordDiscovery(string(req.Kind), "invalid", time.Since(start), 0)
		return nil, err
	}

	for i := range items {
		monitoring.RecordMatchScore(items[i].MatchScore)
	}
	monitoring.RecordDiscovery(string(req.Kind), "success", time.Since(start), totalCount)

	return &Response{
		Items:      items,
		TotalCount: totalCount,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
