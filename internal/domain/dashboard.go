package domain

import "github.com/shopspring/decimal"

// DashboardMetrics aggregates every event of one profile.
type DashboardMetrics struct {
	TotalEvents          int64
	TotalAttendees       int64
	TotalPossibleRevenue decimal.Decimal
	AverageTicketPrice   decimal.Decimal
	MinTicketPrice       decimal.Decimal
	MaxTicketPrice       decimal.Decimal
	NetRevenue           decimal.Decimal
}

// EventPerformance is one row of the per-event chart.
//
// ListedPriceTotal is the plain sum of the event's ticket prices, which older
// reports labelled "total revenue". SoldRevenue weights each price by the
// number of attendees holding that ticket and matches EventSummary.TotalRevenue.
type EventPerformance struct {
	EventID          int64
	EventName        string
	TicketsAvailable int64
	TicketsSold      int64
	ListedPriceTotal decimal.Decimal
	SoldRevenue      decimal.Decimal
}

type TicketTypeCount struct {
	TicketType    string
	AttendeeCount int64
}

// Dashboard bundles the three dashboard reads.
type Dashboard struct {
	Metrics      DashboardMetrics
	Performance  []EventPerformance
	Distribution []TicketTypeCount
}
