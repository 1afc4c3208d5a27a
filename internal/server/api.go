package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seralin/creatorlink/internal/catalog"
	"github.com/seralin/creatorlink/internal/config"
	"github.com/seralin/creatorlink/internal/discovery"
	apierrors "github.com/seralin/creatorlink/internal/errors"
	"github.com/seralin/creatorlink/internal/estimator"
	"github.com/seralin/creatorlink/internal/logging"
	"github.com/seralin/creatorlink/internal/middleware"
	"github.com/seralin/creatorlink/internal/models"
	"github.com/seralin/creatorlink/internal/monitoring"
	"github.com/seralin/creatorlink/internal/suggest"
)

// APIServer represents the main API server
type APIServer struct {
	config    *config.Config
	router    *gin.Engine
	discovery *discovery.Service
	estimator *estimator.Model
}

// NewAPIServer creates a new API server instance
func NewAPIServer(cfg *config.Config, cat catalog.Catalog) *APIServer {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add middleware in order
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(monitoring.MetricsMiddleware())
	router.Use(logging.RequestLogger())

	srv := &APIServer{
		config:    cfg,
		router:    router,
		discovery: discovery.NewService(cat, &cfg.Discovery),
		estimator: estimator.NewModel(&cfg.Estimator),
	}

	srv.setupRoutes()
	return srv
}

// Router returns the gin router
func (s *APIServer) Router() http.Handler {
	return s.router
}

// setupRoutes configures all API routes
func (s *APIServer) setupRoutes() {
	// Health check
	s.router.GET("/health", s.healthCheck)

	// API v1 routes
	v1 := s.router.Group("/api/v1")
	{
		// Marketplace discovery routes (public)
		marketplace := v1.Group("/marketplace")
		{
			marketplace.GET("/creators", s.handleDiscoverCreators)
			marketplace.GET("/sponsors", s.handleDiscoverSponsors)
			marketplace.GET("/categories", s.handleGetCategories)
		}

		// Campaign planning routes (public)
		campaigns := v1.Group("/campaigns")
		{
			campaigns.POST("/estimate", s.handleEstimateReach)
			campaigns.GET("/suggestions", s.handleGetSuggestions)
		}
	}
}

// Health check handler
func (s *APIServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "api",
	})
}

// discoveryQuery binds the discovery query string into a filter spec plus
// pagination parameters
type discoveryQuery struct {
	Query         string   `form:"query"`
	Categories    []string `form:"categories"`
	Location      string   `form:"location"`
	MinEngagement *float64 `form:"min_engagement"`
	MaxEngagement *float64 `form:"max_engagement"`
	MinFollowers  *int64   `form:"min_followers"`
	MaxFollowers  *int64   `form:"max_followers"`
	RewardType    *string  `form:"reward_type"`
	RequiredTags  []string `form:"required_tags"`
	SortBy        string   `form:"sort_by"`
	Page          int      `form:"page,default=1"`
	PageSize      int      `form:"page_size"`
}

func (q *discoveryQuery) toSpec() models.FilterSpec {
	spec := models.FilterSpec{
		Query:         q.Query,
		Categories:    q.Categories,
		Location:      q.Location,
		MinEngagement: q.MinEngagement,
		MaxEngagement: q.MaxEngagement,
		MinFollowers:  q.MinFollowers,
		MaxFollowers:  q.MaxFollowers,
		RequiredTags:  q.RequiredTags,
		SortBy:        models.SortKey(q.SortBy),
	}
	if q.RewardType != nil {
		rt := models.RewardType(*q.RewardType)
		spec.RewardType = &rt
	}
	return spec
}

// handleDiscoverCreators handles creator discovery for sponsors
func (s *APIServer) handleDiscoverCreators(c *gin.Context) {
	s.handleDiscover(c, models.KindCreator)
}

// handleDiscoverSponsors handles sponsor discovery for creators
func (s *APIServer) handleDiscoverSponsors(c *gin.Context) {
	s.handleDiscover(c, models.KindSponsor)
}

func (s *APIServer) handleDiscover(c *gin.Context, kind models.ParticipantKind) {
	var q discoveryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, apierrors.NewValidationError(err.Error()))
		return
	}

	start := time.Now()
	resp, err := s.discovery.Discover(c.Request.Context(), discovery.Request{
		Kind:     kind,
		Spec:     q.toSpec(),
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		switch {
		case errors.Is(err, discovery.ErrInvalidFilter):
			respondError(c, apierrors.NewInvalidFilterError(err.Error()))
		case errors.Is(err, catalog.ErrUnavailable):
			respondError(c, apierrors.ErrCatalogUnavailableError)
		default:
			logging.LogError(err, middleware.GetRequestIDFromContext(c), "server", "discover")
			respondError(c, apierrors.ErrInternalServerError)
		}
		return
	}

	logging.LogDiscovery(
		middleware.GetRequestIDFromContext(c),
		string(kind), q.SortBy,
		resp.Page, resp.PageSize, resp.TotalCount,
		time.Since(start),
	)

	c.JSON(http.StatusOK, resp)
}

// Marketplace category vocabulary, one list per participant kind
var (
	creatorNiches = []string{
		"fashion", "beauty", "fitness", "food", "travel",
		"tech", "gaming", "lifestyle", "music", "education",
	}
	sponsorIndustries = []string{
		"apparel", "cosmetics", "health", "food-beverage", "hospitality",
		"electronics", "entertainment", "home-goods", "finance", "education",
	}
)

// handleGetCategories returns the category vocabulary for both sides
func (s *APIServer) handleGetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"creator_niches":     creatorNiches,
		"sponsor_industries": sponsorIndustries,
	})
}

// handleEstimateReach handles campaign reach estimation
func (s *APIServer) handleEstimateReach(c *gin.Context) {
	var criteria models.TargetingCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		monitoring.RecordEstimate("invalid")
		respondError(c, apierrors.NewValidationError(err.Error()))
		return
	}

	estimate, err := s.estimator.Estimate(criteria)
	if err != nil {
		if errors.Is(err, estimator.ErrInvalidInput) {
			monitoring.RecordEstimate("invalid")
			respondError(c, apierrors.NewInvalidInputError(err.Error()))
		} else {
			logging.LogError(err, middleware.GetRequestIDFromContext(c), "server", "estimate")
			monitoring.RecordEstimate("error")
			respondError(c, apierrors.ErrInternalServerError)
		}
		return
	}

	monitoring.RecordEstimate("success")
	logging.LogEstimate(
		middleware.GetRequestIDFromContext(c),
		criteria.MinFollowers, criteria.MinEngagementPercent, criteria.PostsRequired,
		estimate.TotalReach, estimate.EngagementInteractions,
	)

	c.JSON(http.StatusOK, estimate)
}

// handleGetSuggestions handles content idea generation
func (s *APIServer) handleGetSuggestions(c *gin.Context) {
	category := c.Query("category")
	contentType := c.Query("content_type")
	rewardType := c.Query("reward_type")

	ideas := suggest.Suggestions(category, contentType, rewardType)
	monitoring.RecordSuggestions()

	c.JSON(http.StatusOK, gin.H{
		"suggestions": ideas,
	})
}

// respondError sends a standardized error response
func respondError(c *gin.Context, err *apierrors.APIError) {
	response := apierrors.NewErrorResponse(
		err,
		middleware.GetRequestIDFromContext(c),
		middleware.GetCorrelationIDFromContext(c),
		c.Request.URL.Path,
		c.Request.Method,
	)
	c.JSON(err.HTTPStatus, response)
}
