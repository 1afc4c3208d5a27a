package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seralin/creatorlink/internal/models"
	"github.com/seralin/creatorlink/internal/monitoring"
	"github.com/shopspring/decimal"
)

// PostgresCatalog reads profiles from the profiles table
type PostgresCatalog struct {
	db *pgxpool.Pool
}

// NewPostgresCatalog creates a Postgres-backed catalog
func NewPostgresCatalog(db *pgxpool.Pool) *PostgresCatalog {
	return &PostgresCatalog{db: db}
}

// FetchProfiles returns every profile of the given kind, ordered by ID for a
// stable baseline ordering. I/O failures surface as ErrUnavailable.
func (c *PostgresCatalog) FetchProfiles(ctx context.Context, kind models.ParticipantKind) ([]models.Profile, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}

	start := time.Now()
	rows, err := c.db.Query(ctx, `
		SELECT id, kind, display_name, location, bio, rating, rating_count,
			tags, verified, created_at,
			platform, niche, followers, engagement_rate,
			industry, reward_type, avg_reward_amount
		FROM profiles
		WHERE kind = $1
		ORDER BY id
	`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var (
			p              models.Profile
			platform       *string
			niche          *string
			followers      *int64
			engagementRate *float64
			industry       *string
			rewardType     *string
			avgReward      decimal.NullDecimal
		)
		err := rows.Scan(
			&p.ID, &p.Kind, &p.DisplayName, &p.Location, &p.Bio,
			&p.Rating, &p.RatingCount, &p.Tags, &p.Verified, &p.CreatedAt,
			&platform, &niche, &followers, &engagementRate,
			&industry, &rewardType, &avgReward,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		switch p.Kind {
		case models.KindCreator:
			details := &models.CreatorDetails{Platform: models.PlatformOther}
			if platform != nil {
				details.Platform = models.Platform(*platform)
			}
			if niche != nil {
				details.Niche = *niche
			}
			if followers != nil {
				details.Followers = *followers
			}
			if engagementRate != nil {
				details.EngagementRate = *engagementRate
			}
			p.Creator = details
		case models.KindSponsor:
			details := &models.SponsorDetails{}
			if industry != nil {
				details.Industry = *industry
			}
			if rewardType != nil {
				details.RewardType = models.RewardType(*rewardType)
			}
			if avgReward.Valid {
				details.AvgRewardAmount = avgReward.Decimal
			}
			p.Sponsor = details
		}

		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	monitoring.RecordDBQuery("fetch_profiles", time.Since(start))
	monitoring.RecordCatalogFetch(string(kind), "postgres", time.Since(start), len(profiles))

	return profiles, nil
}
