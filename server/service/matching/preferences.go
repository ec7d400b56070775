package matching

import (
	"context"
	"fmt"

	apperrors "github.com/barterhub/barterhub/server/internal/errors"
	"github.com/barterhub/barterhub/store"
)

// SavePreferencesInput carries the full preference profile to store.
// Every list replaces the stored one wholesale; an omitted list clears it.
type SavePreferencesInput struct {
	PreferredCategories []string
	DislikedCategories  []string
	PreferredConditions []string
	Locale              string
	Country             string
	RadiusKm            *int32
}

// SavePreferences upserts the user's preference profile with full-replace
// semantics. Last writer wins; there is no merge.
func (s *Service) SavePreferences(ctx context.Context, userID int32, input *SavePreferencesInput) (*store.UserPreferences, error) {
	preferences, err := s.storage.UpsertUserPreferences(ctx, &store.UpsertUserPreferences{
		UserID:              userID,
		PreferredCategories: emptyIfNil(input.PreferredCategories),
		DislikedCategories:  emptyIfNil(input.DislikedCategories),
		PreferredConditions: emptyIfNil(input.PreferredConditions),
		Locale:              input.Locale,
		Country:             input.Country,
		RadiusKm:            input.RadiusKm,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	s.logger.InfoContext(ctx, "saved user preferences",
		"user_id", userID,
		"preferred_categories", len(preferences.PreferredCategories),
		"disliked_categories", len(preferences.DislikedCategories),
	)
	return preferences, nil
}

// GetPreferences returns the stored preference profile, or a NOT_FOUND error
// when the user has never saved one.
func (s *Service) GetPreferences(ctx context.Context, userID int32) (*store.UserPreferences, error) {
	preferences, err := s.storage.GetUserPreferences(ctx, &store.FindUserPreferences{UserID: &userID})
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	if preferences == nil {
		return nil, apperrors.NotFound("preferences not found")
	}
	return preferences, nil
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
