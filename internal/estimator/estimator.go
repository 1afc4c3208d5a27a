// Package estimator predicts campaign audience reach and engagement from
// targeting criteria. The model is a pure numeric function over a fixed
// creator pool; its constants are tunable, its monotonicity is contractual.
package estimator

import (
	"errors"
	"fmt"
	"math"

	"github.com/seralin/creatorlink/internal/config"
	"github.com/seralin/creatorlink/internal/models"
)

// Service errors
var (
	ErrInvalidInput = errors.New("invalid targeting criteria")
)

// commitmentStep controls how sharply reach drops as more posts are required
const commitmentStep = 0.5

// Model holds the reach model constants
type Model struct {
	poolSize          int64
	audiencePerTier   int64
	followerHalfPoint int64
}

// NewModel creates a reach model from configuration
func NewModel(cfg *config.EstimatorConfig) *Model {
	return &Model{
		poolSize:          cfg.CreatorPoolSize,
		audiencePerTier:   cfg.AudiencePerTier,
		followerHalfPoint: cfg.FollowerHalfPoint,
	}
}

// DefaultModel creates a reach model with the default constants
func DefaultModel() *Model {
	return &Model{
		poolSize:          50000,
		audiencePerTier:   8000,
		followerHalfPoint: 10000,
	}
}

// Estimate predicts total reach and engagement interactions for the given
// targeting criteria.
//
// The fraction of the creator pool expected to clear the follower threshold
// decays as halfPoint/(halfPoint+minFollowers), so raising the threshold
// never raises reach. Each qualifying creator contributes a fixed audience
// tier, scaled down by a commitment factor that grows with the number of
// required posts. Interactions = reach * minEngagementPercent / 100.
// Fractional results truncate, never round up. Identical inputs always
// produce identical estimates.
func (m *Model) Estimate(criteria models.TargetingCriteria) (models.ReachEstimate, error) {
	if err := validate(criteria); err != nil {
		return models.ReachEstimate{}, err
	}

	qualifyingFraction := float64(m.followerHalfPoint) /
		float64(m.followerHalfPoint+criteria.MinFollowers)
	commitmentFactor := 1 / (1 + commitmentStep*float64(criteria.PostsRequired-1))

	reach := float64(m.poolSize) * qualifyingFraction *
		float64(m.audiencePerTier) * commitmentFactor
	totalReach := int64(math.MaxInt64)
	if reach < math.MaxInt64 {
		totalReach = int64(reach) // truncate
	}

	rawInteractions := float64(totalReach) * criteria.MinEngagementPercent / 100
	interactions := int64(math.MaxInt64)
	if rawInteractions < math.MaxInt64 {
		interactions = int64(rawInteractions) // truncate
	}

	return models.ReachEstimate{
		TotalReach:             totalReach,
		EngagementInteractions: interactions,
	}, nil
}

func validate(criteria models.TargetingCriteria) error {
	if criteria.MinFollowers < 0 {
		return fmt.Errorf("%w: min followers must be >= 0, got %d",
			ErrInvalidInput, criteria.MinFollowers)
	}
	if criteria.MinEngagementPercent < 0 ||
		math.IsNaN(criteria.MinEngagementPercent) || math.IsInf(criteria.MinEngagementPercent, 0) {
		return fmt.Errorf("%w: min engagement percent must be a finite number >= 0, got %g",
			ErrInvalidInput, criteria.MinEngagementPercent)
	}
	if criteria.PostsRequired < 1 {
		return fmt.Errorf("%w: posts required must be >= 1, got %d",
			ErrInvalidInput, criteria.PostsRequired)
	}
	return nil
}
