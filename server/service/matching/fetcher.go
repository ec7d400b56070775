package matching

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/barterhub/barterhub/store"
)

// candidateBundle holds everything the scorer needs for one request.
type candidateBundle struct {
	preferences *store.UserPreferences
	ownedIDs    map[int32]struct{}
	exchanges   []*store.Exchange
	candidates  []*store.Item
}

// fetchCandidates gathers preferences, owned items, exchange history and the
// candidate pool for a user. The three user-scoped reads have no
// interdependency and run concurrently; the pool query follows because its
// filter depends on the preferences.
func (s *Service) fetchCandidates(ctx context.Context, userID int32, limit int) (*candidateBundle, error) {
	bundle := &candidateBundle{
		ownedIDs: make(map[int32]struct{}),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		preferences, err := s.storage.GetUserPreferences(gctx, &store.FindUserPreferences{UserID: &userID})
		if err != nil {
			return fmt.Errorf("failed to get preferences: %w", err)
		}
		bundle.preferences = preferences
		return nil
	})

	g.Go(func() error {
		owned, err := s.storage.ListItems(gctx, &store.FindItem{OwnerID: &userID})
		if err != nil {
			return fmt.Errorf("failed to list owned items: %w", err)
		}
		for _, item := range owned {
			bundle.ownedIDs[item.ID] = struct{}{}
		}
		return nil
	})

	g.Go(func() error {
		exchanges, err := s.storage.ListExchanges(gctx, &store.FindExchange{ParticipantID: &userID})
		if err != nil {
			return fmt.Errorf("failed to list exchanges: %w", err)
		}
		bundle.exchanges = exchanges
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	status := store.ItemStatusAvailable
	poolSize := limit * poolMultiplier
	find := &store.FindItem{
		Status:                &status,
		ExcludeOwnerID:        &userID,
		OrderByPopularityDesc: true,
		Limit:                 &poolSize,
	}
	if preferences := bundle.preferences; preferences != nil {
		find.ExcludeCategories = preferences.DislikedCategories
		if len(preferences.PreferredConditions) > 0 {
			find.Conditions = preferences.PreferredConditions
		}
	}

	candidates, err := s.storage.ListItems(ctx, find)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate items: %w", err)
	}

	// The pool query already excludes the owner; the owned-id set guards against
	// stale ownership data reaching the scorer.
	filtered := make([]*store.Item, 0, len(candidates))
	for _, item := range candidates {
		if _, owned := bundle.ownedIDs[item.ID]; owned {
			continue
		}
		filtered = append(filtered, item)
	}
	bundle.candidates = filtered

	return bundle, nil
}
