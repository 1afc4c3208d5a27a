package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParticipantKind identifies which side of the marketplace a profile belongs to
type ParticipantKind string

const (
	KindCreator ParticipantKind = "creator"
	KindSponsor ParticipantKind = "sponsor"
)

// Valid reports whether the participant kind is one of the two marketplace sides
func (k ParticipantKind) Valid() bool {
	return k == KindCreator || k == KindSponsor
}

// Platform represents the social platform a creator publishes on
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformOther     Platform = "other"
)

// RewardType represents the kind of compensation a sponsor offers
type RewardType string

const (
	RewardMonetary RewardType = "monetary"
	RewardProduct  RewardType = "product"
	RewardBoth     RewardType = "both"
)

// Valid reports whether the reward type is a known value
func (r RewardType) Valid() bool {
	return r == RewardMonetary || r == RewardProduct || r == RewardBoth
}

// CreatorDetails holds the creator-side attributes of a profile
type CreatorDetails struct {
	Platform       Platform `json:"platform" db:"platform"`
	Niche          string   `json:"niche" db:"niche"`
	Followers      int64    `json:"followers" db:"followers"`
	EngagementRate float64  `json:"engagement_rate" db:"engagement_rate"`
}

// SponsorDetails holds the sponsor-side attributes of a profile
type SponsorDetails struct {
	Industry        string          `json:"industry" db:"industry"`
	RewardType      RewardType      `json:"reward_type" db:"reward_type"`
	AvgRewardAmount decimal.Decimal `json:"avg_reward_amount" db:"avg_reward_amount"`
}

// Profile represents a marketplace participant. Exactly one of Creator or
// Sponsor is set, matching Kind. The discovery engine treats profiles as
// immutable values: it only reads them and produces derived results.
type Profile struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Kind        ParticipantKind `json:"kind" db:"kind"`
	DisplayName string          `json:"display_name" db:"display_name"`
	Location    string          `json:"location" db:"location"`
	Bio         string          `json:"bio" db:"bio"`
	Rating      float64         `json:"rating" db:"rating"`
	RatingCount int             `json:"rating_count" db:"rating_count"`
	Tags        []string        `json:"tags" db:"tags"`
	Verified    bool            `json:"verified" db:"verified"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`

	Creator *CreatorDetails `json:"creator,omitempty" db:"-"`
	Sponsor *SponsorDetails `json:"sponsor,omitempty" db:"-"`
}

// Category returns the profile's category attribute: the niche for creators,
// the industry for sponsors. Empty when the variant details are absent.
func (p *Profile) Category() string {
	switch {
	case p.Creator != nil:
		return p.Creator.Niche
	case p.Sponsor != nil:
		return p.Sponsor.Industry
	}
	return ""
}

// Followers returns the creator follower count, or 0 for non-creator profiles
func (p *Profile) Followers() int64 {
	if p.Creator != nil {
		return p.Creator.Followers
	}
	return 0
}

// EngagementRate returns the creator engagement rate, or 0 for non-creator profiles
func (p *Profile) EngagementRate() float64 {
	if p.Creator != nil {
		return p.Creator.EngagementRate
	}
	return 0
}

// HasTag reports whether the profile carries the tag (case-sensitive exact match)
func (p *Profile) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MatchResult pairs a profile with its computed match score and its 1-based
// rank in the full sorted result set, so ranks stay contiguous across pages.
// Match results are ephemeral: computed per request, never persisted.
type MatchResult struct {
	Profile    Profile `json:"profile"`
	MatchScore int     `json:"match_score"`
	Rank       int     `json:"rank"`
}
