package store

import (
	"context"
	"fmt"
)

// UserPreferences represents a user's stored matching preferences.
// List fields are replaced wholesale on every upsert, never merged.
type UserPreferences struct {
	UserID    int32
	CreatedTs int64
	UpdatedTs int64

	PreferredCategories []string
	DislikedCategories  []string
	PreferredConditions []string
	Locale              string
	Country             string
	RadiusKm            *int32
}

// FindUserPreferences specifies the conditions for finding user preferences.
type FindUserPreferences struct {
	UserID *int32
}

// UpsertUserPreferences specifies the data for upserting user preferences.
// Nil list fields are stored as empty lists.
type UpsertUserPreferences struct {
	UserID int32

	PreferredCategories []string
	DislikedCategories  []string
	PreferredConditions []string
	Locale              string
	Country             string
	RadiusKm            *int32
}

func preferencesCacheKey(userID int32) string {
	return fmt.Sprintf("%d", userID)
}

// UpsertUserPreferences replaces the stored preferences for a user.
func (s *Store) UpsertUserPreferences(ctx context.Context, upsert *UpsertUserPreferences) (*UserPreferences, error) {
	preferences, err := s.driver.UpsertUserPreferences(ctx, upsert)
	if err != nil {
		return nil, err
	}
	s.userPreferencesCache.Set(ctx, preferencesCacheKey(preferences.UserID), preferences)
	return preferences, nil
}

// GetUserPreferences gets the stored preferences for a user.
// Returns nil without error when no preferences exist yet.
func (s *Store) GetUserPreferences(ctx context.Context, find *FindUserPreferences) (*UserPreferences, error) {
	if find.UserID != nil {
		if cached, ok := s.userPreferencesCache.Get(ctx, preferencesCacheKey(*find.UserID)); ok {
			if preferences, ok := cached.(*UserPreferences); ok {
				return preferences, nil
			}
		}
	}

	preferences, err := s.driver.GetUserPreferences(ctx, find)
	if err != nil {
		return nil, err
	}
	if preferences != nil {
		s.userPreferencesCache.Set(ctx, preferencesCacheKey(preferences.UserID), preferences)
	}
	return preferences, nil
}
