package app

import (
	"context"
	"log/slog"

	"github.com/cimillas/event-admin/internal/domain"
	"github.com/shopspring/decimal"
)

type TicketRepository interface {
	CreateTicket(ctx context.Context, t domain.Ticket) (domain.Ticket, error)
	GetTicket(ctx context.Context, id int64) (domain.Ticket, error)
	ListTickets(ctx context.Context, eventID int64) ([]domain.Ticket, error)
	UpdateTicket(ctx context.Context, t domain.Ticket) (domain.Ticket, error)
	DeleteTicket(ctx context.Context, id int64) (domain.DeleteResult, error)
}

type TicketService struct {
	repo   TicketRepository
	logger *slog.Logger
}

func NewTicketService(repo TicketRepository, logger *slog.Logger) *TicketService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TicketService{repo: repo, logger: logger}
}

type TicketInput struct {
	TypeLabel         string
	Price             decimal.Decimal
	QuantityAvailable int
}

func (in TicketInput) ticket() (domain.Ticket, error) {
	label, err := requireText("ticket_type", in.TypeLabel)
	if err != nil {
		return domain.Ticket{}, err
	}
	if err := validatePrice(in.Price); err != nil {
		return domain.Ticket{}, err
	}
	if err := validateQuantity(in.QuantityAvailable); err != nil {
		return domain.Ticket{}, err
	}
	return domain.Ticket{
		TypeLabel:         label,
		Price:             in.Price,
		QuantityAvailable: in.QuantityAvailable,
	}, nil
}

func (s *TicketService) CreateTicket(ctx context.Context, eventID int64, in TicketInput) (domain.Ticket, error) {
	if err := requireID("event_id", eventID); err != nil {
		return domain.Ticket{}, err
	}
	t, err := in.ticket()
	if err != nil {
		return domain.Ticket{}, err
	}
	t.EventID = eventID
	return s.repo.CreateTicket(ctx, t)
}

func (s *TicketService) GetTicket(ctx context.Context, id int64) (domain.Ticket, error) {
	if err := requireID("ticket_id", id); err != nil {
		return domain.Ticket{}, err
	}
	return s.repo.GetTicket(ctx, id)
}

func (s *TicketService) ListTickets(ctx context.Context, eventID int64) ([]domain.Ticket, error) {
	if err := requireID("event_id", eventID); err != nil {
		return nil, err
	}
	return s.repo.ListTickets(ctx, eventID)
}

func (s *TicketService) UpdateTicket(ctx context.Context, id int64, in TicketInput) (domain.Ticket, error) {
	if err := requireID("ticket_id", id); err != nil {
		return domain.Ticket{}, err
	}
	t, err := in.ticket()
	if err != nil {
		return domain.Ticket{}, err
	}
	t.ID = id
	return s.repo.UpdateTicket(ctx, t)
}

func (s *TicketService) DeleteTicket(ctx context.Context, id int64) (domain.DeleteResult, error) {
	if err := requireID("ticket_id", id); err != nil {
		return domain.DeleteResult{}, err
	}
	res, err := s.repo.DeleteTicket(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	s.logger.InfoContext(ctx, "ticket deleted",
		"ticket_id", id,
		"attendees_deleted", res.AttendeesDeleted,
	)
	return res, nil
}
