package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/seralin/creatorlink/internal/models"
)

func fixtureCreator(name string) models.Profile {
	return models.Profile{
		ID:          uuid.New(),
		Kind:        models.KindCreator,
		DisplayName: name,
		Rating:      4.0,
		Tags:        []string{"fashion"},
		Creator: &models.CreatorDetails{
			Platform:       models.PlatformInstagram,
			Niche:          "fashion",
			Followers:      1000,
			EngagementRate: 3.5,
		},
	}
}

func fixtureSponsor(name string) models.Profile {
	return models.Profile{
		ID:          uuid.New(),
		Kind:        models.KindSponsor,
		DisplayName: name,
		Rating:      4.5,
		Tags:        []string{"apparel"},
		Sponsor: &models.SponsorDetails{
			Industry:   "apparel",
			RewardType: models.RewardMonetary,
		},
	}
}

func TestMemoryCatalogFiltersByKind(t *testing.T) {
	cat := NewMemoryCatalog(
		fixtureCreator("alice"),
		fixtureCreator("bob"),
		fixtureSponsor("acme"),
	)

	creators, err := cat.FetchProfiles(context.Background(), models.KindCreator)
	if err != nil {
		t.Fatalf("FetchProfiles(creator) failed: %v", err)
	}
	if len(creators) != 2 {
		t.Fatalf("Expected 2 creators, got %d", len(creators))
	}
	for _, p := range creators {
		if p.Kind != models.KindCreator {
			t.Fatalf("Expected only creator profiles, got kind %q", p.Kind)
		}
	}

	sponsors, err := cat.FetchProfiles(context.Background(), models.KindSponsor)
	if err != nil {
		t.Fatalf("FetchProfiles(sponsor) failed: %v", err)
	}
	if len(sponsors) != 1 {
		t.Fatalf("Expected 1 sponsor, got %d", len(sponsors))
	}
}

func TestMemoryCatalogReturnsCopies(t *testing.T) {
	cat := NewMemoryCatalog(fixtureCreator("alice"))

	first, err := cat.FetchProfiles(context.Background(), models.KindCreator)
	if err != nil {
		t.Fatalf("FetchProfiles failed: %v", err)
	}
	first[0].DisplayName = "mutated"

	second, err := cat.FetchProfiles(context.Background(), models.KindCreator)
	if err != nil {
		t.Fatalf("FetchProfiles failed: %v", err)
	}
	if second[0].DisplayName != "alice" {
		t.Fatalf("Fixture set was mutated through a returned slice: got %q", second[0].DisplayName)
	}
}

func TestMemoryCatalogRejectsUnknownKind(t *testing.T) {
	cat := NewMemoryCatalog(fixtureCreator("alice"))

	_, err := cat.FetchProfiles(context.Background(), models.ParticipantKind("agency"))
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("Expected ErrUnknownKind, got %v", err)
	}
}

func TestFailingCatalogAlwaysUnavailable(t *testing.T) {
	cat := NewFailingCatalog()

	_, err := cat.FetchProfiles(context.Background(), models.KindCreator)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Expected ErrUnavailable, got %v", err)
	}
}
