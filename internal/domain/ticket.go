package domain

import "github.com/shopspring/decimal"

// Ticket is a priced ticket class of an event. QuantityAvailable is a static
// capacity figure; it is never decremented by registrations.
type Ticket struct {
	ID                int64
	EventID           int64
	TypeLabel         string
	Price             decimal.Decimal
	QuantityAvailable int
}
