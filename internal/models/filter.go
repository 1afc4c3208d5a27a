package models

// SortKey selects the ordering criterion for discovery results
type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortEngagement SortKey = "engagement"
	SortFollowers  SortKey = "followers"
	SortRating     SortKey = "rating"
)

// Valid reports whether the sort key is a known value
func (s SortKey) Valid() bool {
	switch s {
	case SortRelevance, SortEngagement, SortFollowers, SortRating:
		return true
	}
	return false
}

// FilterSpec describes a participant's search intent. Every field is
// optional; the zero value of a field means "unconstrained". Follower and
// engagement ranges apply to creator profiles, reward type to sponsor
// profiles; setting a constraint that is irrelevant to a profile's variant
// excludes that profile.
type FilterSpec struct {
	Query         string      `json:"query,omitempty" form:"query"`
	Categories    []string    `json:"categories,omitempty" form:"categories"`
	Location      string      `json:"location,omitempty" form:"location"`
	MinEngagement *float64    `json:"min_engagement,omitempty" form:"min_engagement"`
	MaxEngagement *float64    `json:"max_engagement,omitempty" form:"max_engagement"`
	MinFollowers  *int64      `json:"min_followers,omitempty" form:"min_followers"`
	MaxFollowers  *int64      `json:"max_followers,omitempty" form:"max_followers"`
	RewardType    *RewardType `json:"reward_type,omitempty" form:"reward_type"`
	RequiredTags  []string    `json:"required_tags,omitempty" form:"required_tags"`
	SortBy        SortKey     `json:"sort_by,omitempty" form:"sort_by"`
}
