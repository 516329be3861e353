package http

import (
	"context"

	"github.com/cimillas/event-admin/internal/app"
	"github.com/cimillas/event-admin/internal/domain"
)

type stubProfiles struct {
	createFn func(ctx context.Context, in app.ProfileInput) (domain.Profile, error)
	getFn    func(ctx context.Context, id int64) (domain.Profile, error)
	updateFn func(ctx context.Context, id int64, in app.ProfileInput) (domain.Profile, error)
}

func (s *stubProfiles) CreateProfile(ctx context.Context, in app.ProfileInput) (domain.Profile, error) {
	return s.createFn(ctx, in)
}
func (s *stubProfiles) GetProfile(ctx context.Context, id int64) (domain.Profile, error) {
	return s.getFn(ctx, id)
}
func (s *stubProfiles) UpdateProfile(ctx context.Context, id int64, in app.ProfileInput) (domain.Profile, error) {
	return s.updateFn(ctx, id, in)
}

type stubEvents struct {
	createFn func(ctx context.Context, ownerID int64, in app.EventInput) (domain.Event, error)
	getFn    func(ctx context.Context, id int64) (domain.Event, error)
	listFn   func(ctx context.Context, ownerID int64, sortKey string) ([]domain.EventSummary, error)
	updateFn func(ctx context.Context, id int64, in app.EventInput) (domain.Event, error)
	deleteFn func(ctx context.Context, id int64) (domain.DeleteResult, error)
}

func (s *stubEvents) CreateEvent(ctx context.Context, ownerID int64, in app.EventInput) (domain.Event, error) {
	return s.createFn(ctx, ownerID, in)
}
func (s *stubEvents) GetEvent(ctx context.Context, id int64) (domain.Event, error) {
	return s.getFn(ctx, id)
}
func (s *stubEvents) ListEvents(ctx context.Context, ownerID int64, sortKey string) ([]domain.EventSummary, error) {
	return s.listFn(ctx, ownerID, sortKey)
}
func (s *stubEvents) UpdateEvent(ctx context.Context, id int64, in app.EventInput) (domain.Event, error) {
	return s.updateFn(ctx, id, in)
}
func (s *stubEvents) DeleteEvent(ctx context.Context, id int64) (domain.DeleteResult, error) {
	return s.deleteFn(ctx, id)
}

type stubTickets struct {
	createFn func(ctx context.Context, eventID int64, in app.TicketInput) (domain.Ticket, error)
	getFn    func(ctx context.Context, id int64) (domain.Ticket, error)
	listFn   func(ctx context.Context, eventID int64) ([]domain.Ticket, error)
	updateFn func(ctx context.Context, id int64, in app.TicketInput) (domain.Ticket, error)
	deleteFn func(ctx context.Context, id int64) (domain.DeleteResult, error)
}

func (s *stubTickets) CreateTicket(ctx context.Context, eventID int64, in app.TicketInput) (domain.Ticket, error) {
	return s.createFn(ctx, eventID, in)
}
func (s *stubTickets) GetTicket(ctx context.Context, id int64) (domain.Ticket, error) {
	return s.getFn(ctx, id)
}
func (s *stubTickets) ListTickets(ctx context.Context, eventID int64) ([]domain.Ticket, error) {
	return s.listFn(ctx, eventID)
}
func (s *stubTickets) UpdateTicket(ctx context.Context, id int64, in app.TicketInput) (domain.Ticket, error) {
	return s.updateFn(ctx, id, in)
}
func (s *stubTickets) DeleteTicket(ctx context.Context, id int64) (domain.DeleteResult, error) {
	return s.deleteFn(ctx, id)
}

type stubAttendees struct {
	registerFn func(ctx context.Context, in app.RegisterAttendeeInput) (domain.Attendee, error)
	listFn     func(ctx context.Context, eventID int64, sortKey, ticketType string) ([]domain.Attendee, error)
}

func (s *stubAttendees) RegisterAttendee(ctx context.Context, in app.RegisterAttendeeInput) (domain.Attendee, error) {
	return s.registerFn(ctx, in)
}
func (s *stubAttendees) ListAttendees(ctx context.Context, eventID int64, sortKey, ticketType string) ([]domain.Attendee, error) {
	return s.listFn(ctx, eventID, sortKey, ticketType)
}

type stubDashboard struct {
	dashboardFn    func(ctx context.Context, ownerID int64) (domain.Dashboard, error)
	metricsFn      func(ctx context.Context, ownerID int64) (domain.DashboardMetrics, error)
	performanceFn  func(ctx context.Context, ownerID int64) ([]domain.EventPerformance, error)
	distributionFn func(ctx context.Context, ownerID int64) ([]domain.TicketTypeCount, error)
}

func (s *stubDashboard) Dashboard(ctx context.Context, ownerID int64) (domain.Dashboard, error) {
	return s.dashboardFn(ctx, ownerID)
}
func (s *stubDashboard) Metrics(ctx context.Context, ownerID int64) (domain.DashboardMetrics, error) {
	return s.metricsFn(ctx, ownerID)
}
func (s *stubDashboard) Performance(ctx context.Context, ownerID int64) ([]domain.EventPerformance, error) {
	return s.performanceFn(ctx, ownerID)
}
func (s *stubDashboard) Distribution(ctx context.Context, ownerID int64) ([]domain.TicketTypeCount, error) {
	return s.distributionFn(ctx, ownerID)
}
