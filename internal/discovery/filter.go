package discovery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seralin/creatorlink/internal/models"
)

// Service errors
var (
	// ErrInvalidFilter marks a malformed filter specification or discovery
	// request. Ranking never proceeds with an invalid spec.
	ErrInvalidFilter = errors.New("invalid filter specification")
)

// Predicate is a boolean function over a profile used to filter candidates
type Predicate func(models.Profile) bool

// ValidateSpec checks a filter specification for malformed constraints
func ValidateSpec(spec models.FilterSpec) error {
	if spec.MinFollowers != nil && spec.MaxFollowers != nil && *spec.MinFollowers > *spec.MaxFollowers {
		return fmt.Errorf("%w: follower range min %d > max %d",
			ErrInvalidFilter, *spec.MinFollowers, *spec.MaxFollowers)
	}
	if spec.MinEngagement != nil && spec.MaxEngagement != nil && *spec.MinEngagement > *spec.MaxEngagement {
		return fmt.Errorf("%w: engagement range min %g > max %g",
			ErrInvalidFilter, *spec.MinEngagement, *spec.MaxEngagement)
	}
	if spec.RewardType != nil && !spec.RewardType.Valid() {
		return fmt.Errorf("%w: unknown reward type %q", ErrInvalidFilter, string(*spec.RewardType))
	}
	if spec.SortBy != "" && !spec.SortBy.Valid() {
		return fmt.Errorf("%w: unknown sort key %q", ErrInvalidFilter, string(spec.SortBy))
	}
	return nil
}

// BuildPredicate converts a filter specification into a boolean predicate
// over a profile. All constraints combine with AND; an empty spec accepts
// everything. Follower and engagement ranges are creator attributes and
// reward type is a sponsor attribute: setting one excludes profiles of the
// other variant.
func BuildPredicate(spec models.FilterSpec) (Predicate, error) {
	if err := ValidateSpec(spec); err != nil {
		return nil, err
	}

	var preds []Predicate

	if q := strings.ToLower(strings.TrimSpace(spec.Query)); q != "" {
		preds = append(preds, func(p models.Profile) bool {
			return strings.Contains(strings.ToLower(p.DisplayName), q) ||
				strings.Contains(strings.ToLower(p.Bio), q)
		})
	}

	if len(spec.Categories) > 0 {
		allowed := make(map[string]struct{}, len(spec.Categories))
		for _, c := range spec.Categories {
			allowed[c] = struct{}{}
		}
		preds = append(preds, func(p models.Profile) bool {
			_, ok := allowed[p.Category()]
			return ok
		})
	}

	if loc := strings.ToLower(strings.TrimSpace(spec.Location)); loc != "" {
		preds = append(preds, func(p models.Profile) bool {
			return strings.Contains(strings.ToLower(p.Location), loc)
		})
	}

	if spec.MinFollowers != nil || spec.MaxFollowers != nil {
		min, max := spec.MinFollowers, spec.MaxFollowers
		preds = append(preds, func(p models.Profile) bool {
			if p.Creator == nil {
				return false
			}
			if min != nil && p.Creator.Followers < *min {
				return false
			}
			if max != nil && p.Creator.Followers > *max {
				return false
			}
			return true
		})
	}

	if spec.MinEngagement != nil || spec.MaxEngagement != nil {
		min, max := spec.MinEngagement, spec.MaxEngagement
		preds = append(preds, func(p models.Profile) bool {
			if p.Creator == nil {
				return false
			}
			if min != nil && p.Creator.EngagementRate < *min {
				return false
			}
			if max != nil && p.Creator.EngagementRate > *max {
				return false
			}
			return true
		})
	}

	if spec.RewardType != nil {
		want := *spec.RewardType
		preds = append(preds, func(p models.Profile) bool {
			return p.Sponsor != nil && p.Sponsor.RewardType == want
		})
	}

	if len(spec.RequiredTags) > 0 {
		required := spec.RequiredTags
		preds = append(preds, func(p models.Profile) bool {
			for _, tag := range required {
				if !p.HasTag(tag) {
					return false
				}
			}
			return true
		})
	}

	return func(p models.Profile) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}, nil
}
