package http

import (
	"context"

	"github.com/cimillas/event-admin/internal/app"
	"github.com/cimillas/event-admin/internal/domain"
)

// ProfileService is the minimal interface needed for profile endpoints.
type ProfileService interface {
	CreateProfile(ctx context.Context, in app.ProfileInput) (domain.Profile, error)
	GetProfile(ctx context.Context, id int64) (domain.Profile, error)
	UpdateProfile(ctx context.Context, id int64, in app.ProfileInput) (domain.Profile, error)
}

// EventService is the minimal interface needed for event endpoints.
type EventService interface {
	CreateEvent(ctx context.Context, ownerID int64, in app.EventInput) (domain.Event, error)
	GetEvent(ctx context.Context, id int64) (domain.Event, error)
	ListEvents(ctx context.Context, ownerID int64, sortKey string) ([]domain.EventSummary, error)
	UpdateEvent(ctx context.Context, id int64, in app.EventInput) (domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) (domain.DeleteResult, error)
}

// TicketService is the minimal interface needed for ticket endpoints.
type TicketService interface {
	CreateTicket(ctx context.Context, eventID int64, in app.TicketInput) (domain.Ticket, error)
	GetTicket(ctx context.Context, id int64) (domain.Ticket, error)
	ListTickets(ctx context.Context, eventID int64) ([]domain.Ticket, error)
	UpdateTicket(ctx context.Context, id int64, in app.TicketInput) (domain.Ticket, error)
	DeleteTicket(ctx context.Context, id int64) (domain.DeleteResult, error)
}

// AttendeeService is the minimal interface needed for attendee endpoints.
type AttendeeService interface {
	RegisterAttendee(ctx context.Context, in app.RegisterAttendeeInput) (domain.Attendee, error)
	ListAttendees(ctx context.Context, eventID int64, sortKey, ticketType string) ([]domain.Attendee, error)
}

// DashboardService is the minimal interface needed for dashboard endpoints.
type DashboardService interface {
	Dashboard(ctx context.Context, ownerID int64) (domain.Dashboard, error)
	Metrics(ctx context.Context, ownerID int64) (domain.DashboardMetrics, error)
	Performance(ctx context.Context, ownerID int64) ([]domain.EventPerformance, error)
	Distribution(ctx context.Context, ownerID int64) ([]domain.TicketTypeCount, error)
}

type Services struct {
	Profiles  ProfileService
	Events    EventService
	Tickets   TicketService
	Attendees AttendeeService
	Dashboard DashboardService
}
