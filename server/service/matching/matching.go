// Package matching implements the recommendation engine: candidate items are
// scored against a user's stored preferences and exchange history, then a
// diversified top-N is selected under per-owner and per-category caps.
package matching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/barterhub/barterhub/store"
)

const (
	// DefaultLimit is the number of recommendations returned when the caller does not specify one.
	DefaultLimit = 20
	// MaxLimit is the largest number of recommendations a caller may request.
	MaxLimit = 50

	// poolMultiplier controls candidate over-fetch: the pool is poolMultiplier×limit
	// items so diversification has room to skip repetitive owners and categories.
	poolMultiplier = 3
)

// Storage is the read/write surface the matching service needs from the store.
// *store.Store satisfies it.
type Storage interface {
	GetUserPreferences(ctx context.Context, find *store.FindUserPreferences) (*store.UserPreferences, error)
	UpsertUserPreferences(ctx context.Context, upsert *store.UpsertUserPreferences) (*store.UserPreferences, error)
	ListItems(ctx context.Context, find *store.FindItem) ([]*store.Item, error)
	ListExchanges(ctx context.Context, find *store.FindExchange) ([]*store.Exchange, error)
}

// Service computes item recommendations for users.
type Service struct {
	storage Storage
	logger  *slog.Logger
}

// NewService creates a new matching service.
func NewService(storage Storage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// RecommendedItem is the projection of an item carried inside a recommendation.
type RecommendedItem struct {
	ID               int32    `json:"id"`
	UID              string   `json:"uid"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Condition        string   `json:"condition"`
	Tags             []string `json:"tags"`
	Photos           []string `json:"photos"`
	PopularityScore  float64  `json:"popularityScore"`
	OwnerID          int32    `json:"-"`
	OwnerUID         string   `json:"ownerUid"`
	OwnerDisplayName string   `json:"ownerDisplayName"`
	OwnerCountry     string   `json:"ownerCountry"`
	CreatedTs        int64    `json:"createdTs"`
}

// Reason explains one scoring signal's contribution to a recommendation.
type Reason struct {
	Type        string  `json:"type"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// Recommendation is one scored, explainable item suggestion.
// Score always equals the rounded sum of the reason scores.
type Recommendation struct {
	Item    RecommendedItem `json:"item"`
	Score   int             `json:"score"`
	Reasons []Reason        `json:"reasons"`
}

// PreferencesSummary is the caller-facing digest of stored preferences.
type PreferencesSummary struct {
	PreferredCategories []string `json:"preferredCategories"`
	PreferredConditions []string `json:"preferredConditions"`
	Country             string   `json:"country"`
}

// Result is the full response of a recommendation request.
type Result struct {
	Recommendations []*Recommendation   `json:"recommendations"`
	Total           int                 `json:"total"`
	UserPreferences *PreferencesSummary `json:"userPreferences,omitempty"`
}

// GetRecommendations returns up to limit diversified recommendations for the user.
// Missing preferences are not an error: preference-based signals simply contribute
// nothing. The whole computation is a pure function of stored state.
func (s *Service) GetRecommendations(ctx context.Context, userID int32, limit int) (*Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	bundle, err := s.fetchCandidates(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}

	scored := scoreCandidates(bundle.candidates, bundle.preferences, bundle.exchanges)
	selected := diversify(scored, limit)

	s.logger.DebugContext(ctx, "computed recommendations",
		"user_id", userID,
		"pool_size", len(bundle.candidates),
		"scored", len(scored),
		"selected", len(selected),
	)

	result := &Result{
		Recommendations: selected,
		Total:           len(selected),
	}
	if bundle.preferences != nil {
		result.UserPreferences = &PreferencesSummary{
			PreferredCategories: bundle.preferences.PreferredCategories,
			PreferredConditions: bundle.preferences.PreferredConditions,
			Country:             bundle.preferences.Country,
		}
	}
	return result, nil
}
