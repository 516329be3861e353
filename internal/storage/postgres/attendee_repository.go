package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/cimillas/event-admin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AttendeeRepository struct {
	db
}

func NewAttendeeRepository(pool *pgxpool.Pool) *AttendeeRepository {
	return &AttendeeRepository{db{pool: pool}}
}

var attendeeOrderBy = map[domain.AttendeeSort]string{
	domain.AttendeeSortName:       `a.name ASC, a.attendee_id ASC`,
	domain.AttendeeSortTicketType: `t.ticket_type ASC, a.name ASC, a.attendee_id ASC`,
}

// RegisterAttendee inserts a registration after checking, under a share lock
// on the ticket, that the ticket belongs to the attendee's event.
func (r *AttendeeRepository) RegisterAttendee(ctx context.Context, a domain.Attendee) (domain.Attendee, error) {
	err := r.WithTx(ctx, func(ctx context.Context) error {
		exists, err := r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE event_id = $1)`, a.EventID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrEventNotFound
		}

		var ticketEventID int64
		err = r.queryRow(ctx, `SELECT event_id, ticket_type FROM tickets WHERE ticket_id = $1 FOR SHARE`, a.TicketID).
			Scan(&ticketEventID, &a.TicketType)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrTicketNotFound
			}
			return err
		}
		if ticketEventID != a.EventID {
			return domain.Invalid("ticket_id", fmt.Sprintf("ticket %d does not belong to event %d", a.TicketID, a.EventID))
		}

		const stmt = `
INSERT INTO attendees (event_id, name, email, ticket_id)
VALUES ($1, $2, $3, $4)
RETURNING attendee_id`
		if err := r.queryRow(ctx, stmt, a.EventID, a.Name, a.Email, a.TicketID).Scan(&a.ID); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrEventNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Attendee{}, passThrough("register attendee", err)
	}
	return a, nil
}

// ListAttendees returns the event's attendees joined with their ticket type,
// ascending by the filter's sort key. A non-empty TicketType is an exact,
// case-sensitive match.
func (r *AttendeeRepository) ListAttendees(ctx context.Context, eventID int64, filter domain.AttendeeFilter) ([]domain.Attendee, error) {
	sort := filter.Sort
	if sort == "" {
		sort = domain.AttendeeSortName
	}
	orderBy, ok := attendeeOrderBy[sort]
	if !ok {
		return nil, domain.Invalid("sort", fmt.Sprintf("unknown attendee sort key %q", sort))
	}

	exists, err := r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE event_id = $1)`, eventID)
	if err != nil {
		return nil, storageError("check event", err)
	}
	if !exists {
		return nil, domain.ErrEventNotFound
	}

	query := `
SELECT a.attendee_id, a.event_id, a.ticket_id, a.name, a.email, t.ticket_type
FROM attendees a
JOIN tickets t ON t.ticket_id = a.ticket_id
WHERE a.event_id = $1`
	args := []any{eventID}
	if filter.TicketType != "" {
		query += ` AND t.ticket_type = $2`
		args = append(args, filter.TicketType)
	}
	query += ` ORDER BY ` + orderBy

	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, storageError("list attendees", err)
	}
	defer rows.Close()

	attendees := make([]domain.Attendee, 0)
	for rows.Next() {
		var a domain.Attendee
		if err := rows.Scan(&a.ID, &a.EventID, &a.TicketID, &a.Name, &a.Email, &a.TicketType); err != nil {
			return nil, storageError("scan attendee", err)
		}
		attendees = append(attendees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate attendees", err)
	}
	return attendees, nil
}
