package matching

import (
	"context"
	"testing"

	apperrors "github.com/barterhub/barterhub/server/internal/errors"
)

func TestSavePreferencesFullReplace(t *testing.T) {
	storage := newFakeStorage()
	service := newTestService(storage)
	ctx := context.Background()

	first, err := service.SavePreferences(ctx, 1, &SavePreferencesInput{
		PreferredCategories: []string{"books", "music"},
		DislikedCategories:  []string{"clothing"},
		PreferredConditions: []string{"good"},
		Country:             "DE",
	})
	if err != nil {
		t.Fatalf("SavePreferences() error = %v", err)
	}
	if len(first.PreferredCategories) != 2 {
		t.Errorf("preferred categories = %v, want 2 entries", first.PreferredCategories)
	}

	// The second save omits every list; each stored list must be cleared,
	// not merged with the previous profile.
	second, err := service.SavePreferences(ctx, 1, &SavePreferencesInput{Country: "FR"})
	if err != nil {
		t.Fatalf("SavePreferences() error = %v", err)
	}
	if len(second.PreferredCategories) != 0 {
		t.Errorf("preferred categories = %v, want cleared", second.PreferredCategories)
	}
	if len(second.DislikedCategories) != 0 {
		t.Errorf("disliked categories = %v, want cleared", second.DislikedCategories)
	}
	if second.PreferredCategories == nil {
		t.Error("preferred categories should be an empty list, not nil")
	}
	if second.Country != "FR" {
		t.Errorf("country = %q, want FR", second.Country)
	}

	stored, err := service.GetPreferences(ctx, 1)
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}
	if stored.Country != "FR" || len(stored.PreferredCategories) != 0 {
		t.Errorf("stored profile = %+v, want the second save", stored)
	}
}

func TestGetPreferencesNotFound(t *testing.T) {
	storage := newFakeStorage()
	service := newTestService(storage)

	_, err := service.GetPreferences(context.Background(), 42)
	if err == nil {
		t.Fatal("GetPreferences() error = nil, want NOT_FOUND")
	}
	if apperrors.CodeOf(err) != apperrors.ErrCodeNotFound {
		t.Errorf("error code = %v, want %v", apperrors.CodeOf(err), apperrors.ErrCodeNotFound)
	}
}
