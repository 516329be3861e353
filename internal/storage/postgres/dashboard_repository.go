package postgres

import (
	"context"

	"github.com/cimillas/event-admin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DashboardRepository computes read-only aggregates over one owner's events.
// Each aggregate reads its own source rows so ticket prices are never
// multiplied by an attendee join.
type DashboardRepository struct {
	db
}

func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{db{pool: pool}}
}

// Metrics returns all-zero values for an owner without events.
func (r *DashboardRepository) Metrics(ctx context.Context, ownerID int64) (domain.DashboardMetrics, error) {
	const query = `
SELECT
	(SELECT COUNT(*) FROM events WHERE user_id = $1)::bigint,
	(SELECT COUNT(*)
	   FROM attendees a
	   JOIN events ae ON ae.event_id = a.event_id
	  WHERE ae.user_id = $1)::bigint,
	COALESCE(SUM(t.price), 0),
	COALESCE(ROUND(AVG(t.price), 2), 0),
	COALESCE(MIN(t.price), 0),
	COALESCE(MAX(t.price), 0),
	COALESCE(SUM(CASE WHEN t.price > 0 THEN t.price * COALESCE(s.sold, 0) ELSE 0 END), 0)
FROM tickets t
JOIN events e ON e.event_id = t.event_id
LEFT JOIN (` + soldPerTicket + `) s ON s.ticket_id = t.ticket_id
WHERE e.user_id = $1`

	var m domain.DashboardMetrics
	err := r.queryRow(ctx, query, ownerID).Scan(
		&m.TotalEvents,
		&m.TotalAttendees,
		&m.TotalPossibleRevenue,
		&m.AverageTicketPrice,
		&m.MinTicketPrice,
		&m.MaxTicketPrice,
		&m.NetRevenue,
	)
	if err != nil {
		return domain.DashboardMetrics{}, storageError("dashboard metrics", err)
	}
	return m, nil
}

// Performance returns one row per event, ordered by event date.
func (r *DashboardRepository) Performance(ctx context.Context, ownerID int64) ([]domain.EventPerformance, error) {
	const query = `
SELECT
	e.event_id,
	e.event_name,
	COALESCE(SUM(t.quantity_available), 0)::bigint,
	COALESCE(SUM(s.sold), 0)::bigint,
	COALESCE(SUM(t.price), 0),
	COALESCE(SUM(t.price * COALESCE(s.sold, 0)), 0)
FROM events e
LEFT JOIN tickets t ON t.event_id = e.event_id
LEFT JOIN (` + soldPerTicket + `) s ON s.ticket_id = t.ticket_id
WHERE e.user_id = $1
GROUP BY e.event_id, e.event_name
ORDER BY e.event_date ASC, e.event_id ASC`

	rows, err := r.query(ctx, query, ownerID)
	if err != nil {
		return nil, storageError("event performance", err)
	}
	perf, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EventPerformance, error) {
		var p domain.EventPerformance
		err := row.Scan(&p.EventID, &p.EventName, &p.TicketsAvailable, &p.TicketsSold, &p.ListedPriceTotal, &p.SoldRevenue)
		return p, err
	})
	if err != nil {
		return nil, storageError("scan event performance", err)
	}
	if perf == nil {
		perf = []domain.EventPerformance{}
	}
	return perf, nil
}

// Distribution counts attendees per ticket type across the owner's events.
func (r *DashboardRepository) Distribution(ctx context.Context, ownerID int64) ([]domain.TicketTypeCount, error) {
	const query = `
SELECT t.ticket_type, COUNT(a.attendee_id)::bigint
FROM attendees a
JOIN events e ON e.event_id = a.event_id
JOIN tickets t ON t.ticket_id = a.ticket_id
WHERE e.user_id = $1
GROUP BY t.ticket_type
ORDER BY t.ticket_type ASC`

	rows, err := r.query(ctx, query, ownerID)
	if err != nil {
		return nil, storageError("attendee distribution", err)
	}
	dist, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TicketTypeCount, error) {
		var c domain.TicketTypeCount
		err := row.Scan(&c.TicketType, &c.AttendeeCount)
		return c, err
	})
	if err != nil {
		return nil, storageError("scan attendee distribution", err)
	}
	if dist == nil {
		dist = []domain.TicketTypeCount{}
	}
	return dist, nil
}
