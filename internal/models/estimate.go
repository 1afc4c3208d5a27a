package models

// TargetingCriteria is the input to the campaign reach estimator. It is used
// only as estimator input and is never stored.
type TargetingCriteria struct {
	MinFollowers         int64   `json:"min_followers"`
	MinEngagementPercent float64 `json:"min_engagement_percent"`
	PostsRequired        int     `json:"posts_required"`
}

// ReachEstimate is the estimator's derived output. Recomputed on every
// criteria change; identical inputs always produce identical estimates.
type ReachEstimate struct {
	TotalReach             int64 `json:"total_reach"`
	EngagementInteractions int64 `json:"engagement_interactions"`
}
