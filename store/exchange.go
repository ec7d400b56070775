package store

import (
	"context"
)

// Exchange is the object representing a completed or in-flight trade between two users.
// The item titles are denormalized so the record stays meaningful after items are deleted.
type Exchange struct {
	ID        int32
	CreatedTs int64
	UpdatedTs int64

	RequesterID int32
	ResponderID int32

	RequestedItemID    int32
	RequestedItemTitle string
	OfferedItemID      int32
	OfferedItemTitle   string

	Status ExchangeStatus
}

// FindExchange is the find condition for exchange.
type FindExchange struct {
	ID     *int32
	Status *ExchangeStatus

	// ParticipantID matches exchanges where the user is requester or responder.
	ParticipantID *int32

	Limit  *int
	Offset *int
}

// UpdateExchange is the update request for exchange.
type UpdateExchange struct {
	ID        int32
	UpdatedTs *int64
	Status    *ExchangeStatus
}

// CreateExchange creates a new exchange.
func (s *Store) CreateExchange(ctx context.Context, create *Exchange) (*Exchange, error) {
	return s.driver.CreateExchange(ctx, create)
}

// ListExchanges lists exchanges with filter.
func (s *Store) ListExchanges(ctx context.Context, find *FindExchange) ([]*Exchange, error) {
	return s.driver.ListExchanges(ctx, find)
}

// UpdateExchange updates an exchange.
func (s *Store) UpdateExchange(ctx context.Context, update *UpdateExchange) (*Exchange, error) {
	return s.driver.UpdateExchange(ctx, update)
}
