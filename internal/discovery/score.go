package discovery

import (
	"math"

	"github.com/seralin/creatorlink/internal/models"
)

// Match score weights. The weighted sub-scores sum to at most 100.
const (
	tagOverlapWeight = 40.0
	ratingWeight     = 30.0
	verifiedBonus    = 10.0
	maxScore         = 100
)

// SeekerContext carries the seeker-side signals the scorer compares a
// candidate against. In a request/response model the seeker's interests are
// expressed through the filter spec rather than a stored profile.
type SeekerContext struct {
	Tags []string
}

// SeekerFromSpec derives the seeker context from a filter specification: the
// required tags plus requested categories form the seeker's interest tag set.
func SeekerFromSpec(spec models.FilterSpec) SeekerContext {
	seen := make(map[string]struct{}, len(spec.RequiredTags)+len(spec.Categories))
	var tags []string
	for _, t := range spec.RequiredTags {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	for _, t := range spec.Categories {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return SeekerContext{Tags: tags}
}

// Score computes the match score for a (seeker, candidate) pair as an
// integer in [0,100]: tag overlap ratio weighted 40, normalized rating
// weighted 30, plus a capped verification bonus of 10. Fully deterministic;
// identical inputs always yield identical scores.
func Score(seeker SeekerContext, candidate models.Profile) int {
	raw := tagOverlapWeight*tagOverlap(seeker.Tags, candidate.Tags) +
		ratingWeight*normalizedRating(candidate.Rating)
	if candidate.Verified {
		raw += verifiedBonus
	}
	if raw < 0 {
		raw = 0
	}
	if raw > maxScore {
		raw = maxScore
	}
	// Round half up
	return int(math.Floor(raw + 0.5))
}

// tagOverlap returns |shared| / |union| over two tag sets. Both sets empty
// yields 0, not a division by zero.
func tagOverlap(a, b []string) float64 {
	union := make(map[string]struct{}, len(a)+len(b))
	for _, t := range a {
		union[t] = struct{}{}
	}
	inA := len(union)
	for _, t := range b {
		union[t] = struct{}{}
	}
	if len(union) == 0 {
		return 0
	}
	// Shared = |a| + |b| - |union|, with sets deduplicated by construction
	shared := inA + countDistinct(b) - len(union)
	return float64(shared) / float64(len(union))
}

func countDistinct(tags []string) int {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return len(set)
}

// normalizedRating maps a 0-5 rating onto [0,1], clamping out-of-range input
func normalizedRating(rating float64) float64 {
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		return 1
	}
	return rating / 5
}
