package discovery

import (
	"fmt"
	"sort"
	"strings"

	"github.com/seralin/creatorlink/internal/models"
)

// Rank filters the candidate set with the spec's predicate, scores every
// survivor against the seeker context, sorts by the requested criterion and
// slices out the requested page. It is a pure function of its arguments:
// repeated calls with identical inputs yield identical output.
//
// totalCount counts the post-filter, pre-pagination result set and
// totalPages = ceil(totalCount / pageSize). A page beyond the available
// range yields an empty item slice, not an error.
func Rank(candidates []models.Profile, seeker SeekerContext, spec models.FilterSpec, page, pageSize int) (items []models.MatchResult, totalCount, totalPages int, err error) {
	if page < 1 {
		return nil, 0, 0, fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidFilter, page)
	}
	if pageSize < 1 {
		return nil, 0, 0, fmt.Errorf("%w: page size must be >= 1, got %d", ErrInvalidFilter, pageSize)
	}

	pred, err := BuildPredicate(spec)
	if err != nil {
		return nil, 0, 0, err
	}

	results := make([]models.MatchResult, 0, len(candidates))
	for _, candidate := range candidates {
		if !pred(candidate) {
			continue
		}
		results = append(results, models.MatchResult{
			Profile:    candidate,
			MatchScore: Score(seeker, candidate),
		})
	}

	sortBy := spec.SortBy
	if sortBy == "" {
		sortBy = models.SortRelevance
	}
	sortResults(results, sortBy)

	totalCount = len(results)
	totalPages = (totalCount + pageSize - 1) / pageSize

	offset := (page - 1) * pageSize
	if offset >= totalCount {
		return []models.MatchResult{}, totalCount, totalPages, nil
	}
	end := offset + pageSize
	if end > totalCount {
		end = totalCount
	}

	items = results[offset:end]
	for i := range items {
		items[i].Rank = offset + i + 1
	}
	return items, totalCount, totalPages, nil
}

// sortResults orders results by the sort key. Relevance sorts by descending
// match score with an ascending-ID tie-break; the numeric keys sort by the
// named attribute descending, then descending score, then ascending ID, so
// the ordering is total and deterministic.
func sortResults(results []models.MatchResult, sortBy models.SortKey) {
	attr := attributeFor(sortBy)
	sort.SliceStable(results, func(i, j int) bool {
		a, b := &results[i], &results[j]
		if attr != nil {
			av, bv := attr(&a.Profile), attr(&b.Profile)
			if av != bv {
				return av > bv
			}
		}
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		return strings.Compare(a.Profile.ID.String(), b.Profile.ID.String()) < 0
	})
}

// attributeFor returns the numeric sort attribute for a sort key, or nil for
// relevance. A profile of the other variant sorts as 0 on the named attribute.
func attributeFor(sortBy models.SortKey) func(*models.Profile) float64 {
	switch sortBy {
	case models.SortEngagement:
		return func(p *models.Profile) float64 { return p.EngagementRate() }
	case models.SortFollowers:
		return func(p *models.Profile) float64 { return float64(p.Followers()) }
	case models.SortRating:
		return func(p *models.Profile) float64 { return p.Rating }
	}
	return nil
}
