package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cimillas/event-admin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository struct {
	db
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{db{pool: pool}}
}

const eventColumns = `e.event_id, e.user_id, e.event_name, e.event_date, e.event_time, e.location, e.description`

// Revenue per event is price times the attendees holding each ticket, never
// price times quantity_available.
const soldPerTicket = `
SELECT ticket_id, COUNT(*)::bigint AS sold
FROM attendees
GROUP BY ticket_id`

var eventOrderBy = map[domain.EventSort]string{
	domain.EventSortDate:    `e.event_date DESC, e.event_time DESC, e.event_id DESC`,
	domain.EventSortRevenue: `total_revenue DESC, e.event_id DESC`,
}

func (r *EventRepository) CreateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	const stmt = `
INSERT INTO events (user_id, event_name, event_date, event_time, location, description)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING event_id`
	err := r.queryRow(ctx, stmt, e.OwnerID, e.Name, e.Date, toPgTime(e.Time), e.Location, e.Description).Scan(&e.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Event{}, domain.ErrProfileNotFound
		}
		return domain.Event{}, storageError("create event", err)
	}
	return e, nil
}

func (r *EventRepository) GetEvent(ctx context.Context, id int64) (domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.event_id = $1`
	e, err := scanEvent(r.queryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, storageError("get event", err)
	}
	return e, nil
}

// ListEvents returns the owner's events with sold-ticket revenue, descending by sort.
func (r *EventRepository) ListEvents(ctx context.Context, ownerID int64, sort domain.EventSort) ([]domain.EventSummary, error) {
	orderBy, ok := eventOrderBy[sort]
	if !ok {
		return nil, domain.Invalid("sort", fmt.Sprintf("unknown event sort key %q", sort))
	}

	exists, err := r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM user_profile WHERE user_id = $1)`, ownerID)
	if err != nil {
		return nil, storageError("check profile", err)
	}
	if !exists {
		return nil, domain.ErrProfileNotFound
	}

	query := `
SELECT ` + eventColumns + `,
	COALESCE(SUM(t.price * COALESCE(s.sold, 0)), 0) AS total_revenue
FROM events e
LEFT JOIN tickets t ON t.event_id = e.event_id
LEFT JOIN (` + soldPerTicket + `) s ON s.ticket_id = t.ticket_id
WHERE e.user_id = $1
GROUP BY e.event_id
ORDER BY ` + orderBy
	rows, err := r.query(ctx, query, ownerID)
	if err != nil {
		return nil, storageError("list events", err)
	}
	defer rows.Close()

	events := make([]domain.EventSummary, 0)
	for rows.Next() {
		var (
			s  domain.EventSummary
			tm pgtype.Time
		)
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &s.Date, &tm, &s.Location, &s.Description, &s.TotalRevenue); err != nil {
			return nil, storageError("scan event", err)
		}
		s.Time = fromPgTime(tm)
		events = append(events, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate events", err)
	}
	return events, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	stmt := `
UPDATE events e
SET event_name = $1, event_date = $2, event_time = $3, location = $4, description = $5
WHERE e.event_id = $6
RETURNING ` + eventColumns
	updated, err := scanEvent(r.queryRow(ctx, stmt, e.Name, e.Date, toPgTime(e.Time), e.Location, e.Description, e.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, storageError("update event", err)
	}
	return updated, nil
}

// DeleteEvent removes the event's attendees, then its tickets, then the event,
// all in one transaction. The event and ticket rows are locked first so a
// concurrent registration cannot slip an attendee in between the deletes.
func (r *EventRepository) DeleteEvent(ctx context.Context, id int64) (domain.DeleteResult, error) {
	var res domain.DeleteResult
	err := r.WithTx(ctx, func(ctx context.Context) error {
		var locked int64
		err := r.queryRow(ctx, `SELECT event_id FROM events WHERE event_id = $1 FOR UPDATE`, id).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrEventNotFound
			}
			return err
		}
		if _, err := r.exec(ctx, `SELECT ticket_id FROM tickets WHERE event_id = $1 FOR UPDATE`, id); err != nil {
			return err
		}

		tag, err := r.exec(ctx, `
DELETE FROM attendees
WHERE event_id = $1
   OR ticket_id IN (SELECT ticket_id FROM tickets WHERE event_id = $1)`, id)
		if err != nil {
			return fmt.Errorf("delete attendees: %w", err)
		}
		res.AttendeesDeleted = tag.RowsAffected()

		tag, err = r.exec(ctx, `DELETE FROM tickets WHERE event_id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete tickets: %w", err)
		}
		res.TicketsDeleted = tag.RowsAffected()

		if _, err := r.exec(ctx, `DELETE FROM events WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("delete event row: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.DeleteResult{}, passThrough("delete event", err)
	}
	return res, nil
}

func scanEvent(row pgx.Row) (domain.Event, error) {
	var (
		e  domain.Event
		tm pgtype.Time
	)
	if err := row.Scan(&e.ID, &e.OwnerID, &e.Name, &e.Date, &tm, &e.Location, &e.Description); err != nil {
		return domain.Event{}, err
	}
	e.Time = fromPgTime(tm)
	return e, nil
}

func toPgTime(t domain.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Duration().Microseconds(), Valid: true}
}

func fromPgTime(t pgtype.Time) domain.TimeOfDay {
	if !t.Valid {
		return 0
	}
	return domain.TimeOfDay(time.Duration(t.Microseconds) * time.Microsecond)
}
