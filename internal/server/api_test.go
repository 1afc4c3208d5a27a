package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/seralin/creatorlink/internal/catalog"
	"github.com/seralin/creatorlink/internal/config"
	apierrors "github.com/seralin/creatorlink/internal/errors"
	"github.com/seralin/creatorlink/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Env: "test"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
		Discovery: config.DiscoveryConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Estimator: config.EstimatorConfig{
			CreatorPoolSize:   50000,
			AudiencePerTier:   8000,
			FollowerHalfPoint: 10000,
		},
	}
}

func creatorProfile(name string, followers int64, engagement float64, tags []string) models.Profile {
	return models.Profile{
		ID:          uuid.New(),
		Kind:        models.KindCreator,
		DisplayName: name,
		Rating:      4.0,
		Tags:        tags,
		Creator: &models.CreatorDetails{
			Platform:       models.PlatformInstagram,
			Niche:          "fashion",
			Followers:      followers,
			EngagementRate: engagement,
		},
	}
}

func newTestServer(t *testing.T, cat catalog.Catalog) *APIServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewAPIServer(testConfig(), cat)
}

type discoveryResponse struct {
	Items []struct {
		Profile    models.Profile `json:"profile"`
		MatchScore int            `json:"match_score"`
		Rank       int            `json:"rank"`
	} `json:"items"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
}

func TestDiscoverCreatorsFollowerFilter(t *testing.T) {
	cat := catalog.NewMemoryCatalog(
		creatorProfile("small", 500, 2.0, []string{"fashion"}),
		creatorProfile("big", 5000, 6.0, []string{"fashion", "beauty"}),
	)
	srv := newTestServer(t, cat)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/marketplace/creators?min_followers=1000&sort_by=followers", nil)
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp discoveryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.TotalCount != 1 || len(resp.Items) != 1 {
		t.Fatalf("Expected exactly one match, got total=%d items=%d", resp.TotalCount, len(resp.Items))
	}
	if resp.Items[0].Profile.DisplayName != "big" {
		t.Fatalf("Expected the 5000-follower creator, got %q", resp.Items[0].Profile.DisplayName)
	}
	if resp.Items[0].Rank != 1 {
		t.Fatalf("Expected rank 1, got %d", resp.Items[0].Rank)
	}
	if resp.Items[0].MatchScore < 0 || resp.Items[0].MatchScore > 100 {
		t.Fatalf("Match score out of range: %d", resp.Items[0].MatchScore)
	}
}

func TestDiscoverRejectsInvalidRange(t *testing.T) {
	srv := newTestServer(t, catalog.NewMemoryCatalog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/marketplace/creators?min_followers=1000&max_followers=10", nil)
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp apierrors.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error.Code != apierrors.ErrInvalidFilter {
		t.Fatalf("Expected code %q, got %q", apierrors.ErrInvalidFilter, resp.Error.Code)
	}
	if resp.RequestID == "" {
		t.Fatal("Expected request_id to be populated")
	}
}

func TestDiscoverCatalogUnavailable(t *testing.T) {
	srv := newTestServer(t, catalog.NewFailingCatalog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/marketplace/creators", nil)
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d: %s", w.Code, w.Body.String())
	}

	var resp apierrors.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error.Code != apierrors.ErrCatalogUnavailable {
		t.Fatalf("Expected code %q, got %q", apierrors.ErrCatalogUnavailable, resp.Error.Code)
	}
}

func TestDiscoverSponsorsRewardTypeFilter(t *testing.T) {
	monetary := models.Profile{
		ID:          uuid.New(),
		Kind:        models.KindSponsor,
		DisplayName: "acme",
		Rating:      4.5,
		Sponsor: &models.SponsorDetails{
			Industry:   "apparel",
			RewardType: models.RewardMonetary,
		},
	}
	product := models.Profile{
		ID:          uuid.New(),
		Kind:        models.KindSponsor,
		DisplayName: "globex",
		Rating:      4.0,
		Sponsor: &models.SponsorDetails{
			Industry:   "cosmetics",
			RewardType: models.RewardProduct,
		},
	}
	srv := newTestServer(t, catalog.NewMemoryCatalog(monetary, product))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/marketplace/sponsors?reward_type=monetary", nil)
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp discoveryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.TotalCount != 1 {
		t.Fatalf("Expected 1 sponsor, got %d", resp.TotalCount)
	}
	if resp.Items[0].Profile.DisplayName != "acme" {
		t.Fatalf("Expected the monetary sponsor, got %q", resp.Items[0].Profile.DisplayName)
	}
}

func TestEstimateReach(t *testing.T) {
	srv := newTestServer(t, catalog.NewMemoryCatalog())

	body := []byte(`{"min_followers": 1000, "min_engagement_percent": 3, "posts_required": 1}`)

	run := func() models.ReachEstimate {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/estimate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		srv.Router().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var est models.ReachEstimate
		if err := json.Unmarshal(w.Body.Bytes(), &est); err != nil {
			t.Fatalf("Failed to decode estimate: %v", err)
		}
		return est
	}

	first := run()
	second := run()

	if first != second {
		t.Fatalf("Expected identical estimates for identical input: %+v vs %+v", first, second)
	}
	if first.TotalReach <= 0 {
		t.Fatalf("Expected positive reach for modest criteria, got %d", first.TotalReach)
	}
	if first.EngagementInteractions < 0 || first.EngagementInteractions > first.TotalReach {
		t.Fatalf("Interactions out of range: reach=%d interactions=%d",
			first.TotalReach, first.EngagementInteractions)
	}
}

func TestEstimateRejectsNegativeInput(t *testing.T) {
	srv := newTestServer(t, catalog.NewMemoryCatalog())

	body := []byte(`{"min_followers": -5, "min_engagement_percent": 3, "posts_required": 1}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/estimate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp apierrors.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error.Code != apierrors.ErrInvalidInput {
		t.Fatalf("Expected code %q, got %q", apierrors.ErrInvalidInput, resp.Error.Code)
	}
}

func TestSuggestionsEndpoint(t *testing.T) {
	srv := newTestServer(t, catalog.NewMemoryCatalog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/campaigns/suggestions?category=fitness&content_type=reel&reward_type=monetary", nil)
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Suggestions) < 3 || len(resp.Suggestions) > 6 {
		t.Fatalf("Expected between 3 and 6 suggestions, got %d", len(resp.Suggestions))
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	srv := newTestServer(t, catalog.NewMemoryCatalog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/marketplace/categories", nil)
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		CreatorNiches     []string `json:"creator_niches"`
		SponsorIndustries []string `json:"sponsor_industries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.CreatorNiches) == 0 || len(resp.SponsorIndustries) == 0 {
		t.Fatal("Expected non-empty category vocabularies")
	}
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, catalog.NewMemoryCatalog())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
}
