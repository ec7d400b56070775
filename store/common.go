package store

// RowStatus is the status for a row.
type RowStatus string

const (
	// Normal is the status for a normal row.
	Normal RowStatus = "NORMAL"
	// Archived is the status for an archived row.
	Archived RowStatus = "ARCHIVED"
)

func (r RowStatus) String() string {
	return string(r)
}

// ItemStatus is the lifecycle status of an item.
type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "AVAILABLE"
	ItemStatusReserved  ItemStatus = "RESERVED"
	ItemStatusExchanged ItemStatus = "EXCHANGED"
	ItemStatusArchived  ItemStatus = "ARCHIVED"
)

func (s ItemStatus) String() string {
	return string(s)
}

// ExchangeStatus is the lifecycle status of an exchange.
type ExchangeStatus string

const (
	ExchangeStatusPending   ExchangeStatus = "PENDING"
	ExchangeStatusAccepted  ExchangeStatus = "ACCEPTED"
	ExchangeStatusCompleted ExchangeStatus = "COMPLETED"
	ExchangeStatusDeclined  ExchangeStatus = "DECLINED"
)

func (s ExchangeStatus) String() string {
	return string(s)
}
