package store

import (
	"context"
)

// Item is the object representing a listed item.
type Item struct {
	ID        int32
	UID       string
	OwnerID   int32
	CreatedTs int64
	UpdatedTs int64

	Title           string
	Description     string
	Category        string
	Condition       string
	Tags            []string
	Photos          []string
	Status          ItemStatus
	PopularityScore float64

	// Composed fields, populated from the owning user when requested.
	OwnerUID         string
	OwnerDisplayName string
	OwnerCountry     string
}

// FindItem is the find condition for item.
type FindItem struct {
	ID      *int32
	UID     *string
	OwnerID *int32
	Status  *ItemStatus

	// ExcludeOwnerID filters out items belonging to the given owner.
	ExcludeOwnerID *int32
	// Categories restricts results to the given categories.
	Categories []string
	// ExcludeCategories filters out items in the given categories.
	ExcludeCategories []string
	// Conditions restricts results to the given conditions.
	Conditions []string

	OrderByPopularityDesc bool

	Limit  *int
	Offset *int
}

// UpdateItem is the update request for item.
type UpdateItem struct {
	ID              int32
	UpdatedTs       *int64
	Title           *string
	Description     *string
	Category        *string
	Condition       *string
	Tags            []string
	Photos          []string
	Status          *ItemStatus
	PopularityScore *float64
}

// DeleteItem is the delete request for item.
type DeleteItem struct {
	ID int32
}

// CreateItem creates a new item.
func (s *Store) CreateItem(ctx context.Context, create *Item) (*Item, error) {
	return s.driver.CreateItem(ctx, create)
}

// ListItems lists items with filter.
func (s *Store) ListItems(ctx context.Context, find *FindItem) ([]*Item, error) {
	return s.driver.ListItems(ctx, find)
}

// GetItem gets an item by the find condition.
func (s *Store) GetItem(ctx context.Context, find *FindItem) (*Item, error) {
	list, err := s.driver.ListItems(ctx, find)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// UpdateItem updates an item.
func (s *Store) UpdateItem(ctx context.Context, update *UpdateItem) (*Item, error) {
	return s.driver.UpdateItem(ctx, update)
}

// DeleteItem deletes an item.
func (s *Store) DeleteItem(ctx context.Context, delete *DeleteItem) error {
	return s.driver.DeleteItem(ctx, delete)
}
