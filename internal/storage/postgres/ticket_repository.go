package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/cimillas/event-admin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository struct {
	db
}

func NewTicketRepository(pool *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{db{pool: pool}}
}

func (r *TicketRepository) CreateTicket(ctx context.Context, t domain.Ticket) (domain.Ticket, error) {
	const stmt = `
INSERT INTO tickets (event_id, ticket_type, price, quantity_available)
VALUES ($1, $2, $3, $4)
RETURNING ticket_id, price`
	err := r.queryRow(ctx, stmt, t.EventID, t.TypeLabel, t.Price, t.QuantityAvailable).Scan(&t.ID, &t.Price)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.Ticket{}, domain.ErrEventNotFound
		}
		return domain.Ticket{}, storageError("create ticket", err)
	}
	return t, nil
}

func (r *TicketRepository) GetTicket(ctx context.Context, id int64) (domain.Ticket, error) {
	const query = `
SELECT ticket_id, event_id, ticket_type, price, quantity_available
FROM tickets
WHERE ticket_id = $1`
	var t domain.Ticket
	err := r.queryRow(ctx, query, id).Scan(&t.ID, &t.EventID, &t.TypeLabel, &t.Price, &t.QuantityAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Ticket{}, domain.ErrTicketNotFound
		}
		return domain.Ticket{}, storageError("get ticket", err)
	}
	return t, nil
}

// ListTickets returns the event's ticket classes in creation order.
func (r *TicketRepository) ListTickets(ctx context.Context, eventID int64) ([]domain.Ticket, error) {
	exists, err := r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE event_id = $1)`, eventID)
	if err != nil {
		return nil, storageError("check event", err)
	}
	if !exists {
		return nil, domain.ErrEventNotFound
	}

	const query = `
SELECT ticket_id, event_id, ticket_type, price, quantity_available
FROM tickets
WHERE event_id = $1
ORDER BY ticket_id ASC`
	rows, err := r.query(ctx, query, eventID)
	if err != nil {
		return nil, storageError("list tickets", err)
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.EventID, &t.TypeLabel, &t.Price, &t.QuantityAvailable); err != nil {
			return nil, storageError("scan ticket", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate tickets", err)
	}
	return tickets, nil
}

func (r *TicketRepository) UpdateTicket(ctx context.Context, t domain.Ticket) (domain.Ticket, error) {
	const stmt = `
UPDATE tickets
SET ticket_type = $1, price = $2, quantity_available = $3
WHERE ticket_id = $4
RETURNING ticket_id, event_id, ticket_type, price, quantity_available`
	var updated domain.Ticket
	err := r.queryRow(ctx, stmt, t.TypeLabel, t.Price, t.QuantityAvailable, t.ID).
		Scan(&updated.ID, &updated.EventID, &updated.TypeLabel, &updated.Price, &updated.QuantityAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Ticket{}, domain.ErrTicketNotFound
		}
		return domain.Ticket{}, storageError("update ticket", err)
	}
	return updated, nil
}

// DeleteTicket removes the attendees holding the ticket and then the ticket,
// in one transaction.
func (r *TicketRepository) DeleteTicket(ctx context.Context, id int64) (domain.DeleteResult, error) {
	var res domain.DeleteResult
	err := r.WithTx(ctx, func(ctx context.Context) error {
		var locked int64
		err := r.queryRow(ctx, `SELECT ticket_id FROM tickets WHERE ticket_id = $1 FOR UPDATE`, id).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrTicketNotFound
			}
			return err
		}

		tag, err := r.exec(ctx, `DELETE FROM attendees WHERE ticket_id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete attendees: %w", err)
		}
		res.AttendeesDeleted = tag.RowsAffected()

		tag, err = r.exec(ctx, `DELETE FROM tickets WHERE ticket_id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete ticket row: %w", err)
		}
		res.TicketsDeleted = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return domain.DeleteResult{}, passThrough("delete ticket", err)
	}
	return res, nil
}
