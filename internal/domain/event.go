package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Event is owned by exactly one profile. Date is midnight UTC of the event day.
type Event struct {
	ID          int64
	OwnerID     int64
	Name        string
	Date        time.Time
	Time        TimeOfDay
	Location    string
	Description string
}

// EventSummary annotates an event with revenue earned from sold tickets.
type EventSummary struct {
	Event
	TotalRevenue decimal.Decimal
}

// EventSort selects the ordering of ListEvents. Both keys sort descending.
type EventSort string

const (
	EventSortDate    EventSort = "date"
	EventSortRevenue EventSort = "revenue"
)

func ParseEventSort(s string) (EventSort, error) {
	switch EventSort(s) {
	case "", EventSortDate:
		return EventSortDate, nil
	case EventSortRevenue:
		return EventSortRevenue, nil
	}
	return "", Invalid("sort", fmt.Sprintf("unknown event sort key %q", s))
}

// DeleteResult reports the rows removed by a cascading delete.
type DeleteResult struct {
	AttendeesDeleted int64
	TicketsDeleted   int64
}
