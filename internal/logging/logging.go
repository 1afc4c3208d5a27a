package logging

import (
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/seralin/creatorlink/internal/config"
)

// Setup initializes the global logger based on configuration
func Setup(cfg *config.LoggingConfig, env string) {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Configure time format
	zerolog.TimeFieldFormat = time.RFC3339Nano

	// Configure output based on format and environment
	var output io.Writer
	if cfg.Format == "json" || env == "production" {
		output = os.Stdout
	} else {
		// Pretty console output for development
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
			NoColor:    false,
		}
	}

	// Set global logger
	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Str("service", "creatorlink").
		Logger()
}

// NewLogger creates a new logger with additional context
func NewLogger(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}

// RequestLogger is a Gin middleware for structured request logging
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// Process request
		c.Next()

		// Calculate latency
		latency := time.Since(start)

		// Get request ID
		requestID := c.GetString("request_id")

		// Build log event
		event := log.Info()
		if c.Writer.Status() >= 500 {
			event = log.Error()
		} else if c.Writer.Status() >= 400 {
			event = log.Warn()
		}

		// Log request details
		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", raw).
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Int("body_size", c.Writer.Size()).
			Msg("HTTP request")
	}
}

// LogDiscovery logs a discovery request with its result shape
func LogDiscovery(requestID, kind, sortBy string, page, pageSize, totalCount int, latency time.Duration) {
	log.Info().
		Str("request_id", requestID).
		Str("kind", kind).
		Str("sort_by", sortBy).
		Int("page", page).
		Int("page_size", pageSize).
		Int("total_count", totalCount).
		Dur("latency", latency).
		Msg("Discovery request")
}

// LogEstimate logs a campaign reach estimation
func LogEstimate(requestID string, minFollowers int64, minEngagement float64, posts int, totalReach, interactions int64) {
	log.Info().
		Str("request_id", requestID).
		Int64("min_followers", minFollowers).
		Float64("min_engagement_percent", minEngagement).
		Int("posts_required", posts).
		Int64("total_reach", totalReach).
		Int64("engagement_interactions", interactions).
		Msg("Reach estimate")
}

// LogCatalogFetch logs a catalog fetch outcome
func LogCatalogFetch(kind string, count int, cached bool, latency time.Duration, err error) {
	event := log.Debug()
	if err != nil {
		event = log.Error().Err(err)
	}
	event.
		Str("kind", kind).
		Int("profiles", count).
		Bool("cached", cached).
		Dur("latency", latency).
		Msg("Catalog fetch")
}

// LogError logs an error with context
func LogError(err error, requestID, component, operation string) {
	log.Error().
		Err(err).
		Str("request_id", requestID).
		Str("component", component).
		Str("operation", operation).
		Msg("Error occurred")
}

// SanitizeForLog truncates free-text input before logging
func SanitizeForLog(data string, maxLen int) string {
	if len(data) > maxLen {
		return data[:maxLen] + "...[truncated]"
	}
	return data
}
