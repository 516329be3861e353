package app

import (
	"context"
	"log/slog"

	"github.com/cimillas/event-admin/internal/clock"
	"github.com/cimillas/event-admin/internal/domain"
	"github.com/cimillas/event-admin/internal/notify"
)

type AttendeeRepository interface {
	RegisterAttendee(ctx context.Context, a domain.Attendee) (domain.Attendee, error)
	ListAttendees(ctx context.Context, eventID int64, filter domain.AttendeeFilter) ([]domain.Attendee, error)
}

// EventReader resolves the event name for confirmations.
type EventReader interface {
	GetEvent(ctx context.Context, id int64) (domain.Event, error)
}

type Notifier interface {
	Notify(ctx context.Context, c notify.Confirmation) error
}

type AttendeeService struct {
	repo     AttendeeRepository
	events   EventReader
	notifier Notifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewAttendeeService(repo AttendeeRepository, events EventReader, notifier Notifier, clk clock.Clock, logger *slog.Logger) *AttendeeService {
	if logger == nil {
		logger = slog.Default()
	}
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &AttendeeService{
		repo:     repo,
		events:   events,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
	}
}

type RegisterAttendeeInput struct {
	EventID  int64
	TicketID int64
	Name     string
	Email    string
}

// RegisterAttendee stores the registration and then sends a confirmation.
// A failed confirmation is logged; the registration stands.
func (s *AttendeeService) RegisterAttendee(ctx context.Context, in RegisterAttendeeInput) (domain.Attendee, error) {
	if err := requireID("event_id", in.EventID); err != nil {
		return domain.Attendee{}, err
	}
	if err := requireID("ticket_id", in.TicketID); err != nil {
		return domain.Attendee{}, err
	}
	name, err := requireText("name", in.Name)
	if err != nil {
		return domain.Attendee{}, err
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return domain.Attendee{}, err
	}

	a, err := s.repo.RegisterAttendee(ctx, domain.Attendee{
		EventID:  in.EventID,
		TicketID: in.TicketID,
		Name:     name,
		Email:    email,
	})
	if err != nil {
		return domain.Attendee{}, err
	}

	s.confirm(ctx, a)
	return a, nil
}

func (s *AttendeeService) confirm(ctx context.Context, a domain.Attendee) {
	if s.notifier == nil {
		return
	}
	log := s.logger.With("attendee_id", a.ID, "event_id", a.EventID)

	event, err := s.events.GetEvent(ctx, a.EventID)
	if err != nil {
		log.WarnContext(ctx, "confirmation skipped: event lookup failed", "error", err)
		return
	}

	err = s.notifier.Notify(ctx, notify.Confirmation{
		RecipientName:  a.Name,
		RecipientEmail: a.Email,
		EventName:      event.Name,
		TicketType:     a.TicketType,
		SentAt:         s.clock.Now(),
	})
	if err != nil {
		log.ErrorContext(ctx, "confirmation failed", "error", err)
	}
}

// ListAttendees accepts the raw sort key; empty means name.
func (s *AttendeeService) ListAttendees(ctx context.Context, eventID int64, sortKey, ticketType string) ([]domain.Attendee, error) {
	if err := requireID("event_id", eventID); err != nil {
		return nil, err
	}
	sort, err := domain.ParseAttendeeSort(sortKey)
	if err != nil {
		return nil, err
	}
	return s.repo.ListAttendees(ctx, eventID, domain.AttendeeFilter{Sort: sort, TicketType: ticketType})
}
