package app

import (
	"context"

	"github.com/cimillas/event-admin/internal/domain"
	"github.com/cimillas/event-admin/internal/notify"
)

// --- function-field fakes; a nil field panics so unexpected calls fail loudly ---

type fakeProfileRepo struct {
	createFn func(ctx context.Context, p domain.Profile) (domain.Profile, error)
	getFn    func(ctx context.Context, id int64) (domain.Profile, error)
	updateFn func(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

func (f *fakeProfileRepo) CreateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	return f.createFn(ctx, p)
}
func (f *fakeProfileRepo) GetProfile(ctx context.Context, id int64) (domain.Profile, error) {
	return f.getFn(ctx, id)
}
func (f *fakeProfileRepo) UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	return f.updateFn(ctx, p)
}

type fakeEventRepo struct {
	createFn func(ctx context.Context, e domain.Event) (domain.Event, error)
	getFn    func(ctx context.Context, id int64) (domain.Event, error)
	listFn   func(ctx context.Context, ownerID int64, sort domain.EventSort) ([]domain.EventSummary, error)
	updateFn func(ctx context.Context, e domain.Event) (domain.Event, error)
	deleteFn func(ctx context.Context, id int64) (domain.DeleteResult, error)
}

func (f *fakeEventRepo) CreateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	return f.createFn(ctx, e)
}
func (f *fakeEventRepo) GetEvent(ctx context.Context, id int64) (domain.Event, error) {
	return f.getFn(ctx, id)
}
func (f *fakeEventRepo) ListEvents(ctx context.Context, ownerID int64, sort domain.EventSort) ([]domain.EventSummary, error) {
	return f.listFn(ctx, ownerID, sort)
}
func (f *fakeEventRepo) UpdateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	return f.updateFn(ctx, e)
}
func (f *fakeEventRepo) DeleteEvent(ctx context.Context, id int64) (domain.DeleteResult, error) {
	return f.deleteFn(ctx, id)
}

type fakeTicketRepo struct {
	createFn func(ctx context.Context, t domain.Ticket) (domain.Ticket, error)
	getFn    func(ctx context.Context, id int64) (domain.Ticket, error)
	listFn   func(ctx context.Context, eventID int64) ([]domain.Ticket, error)
	updateFn func(ctx context.Context, t domain.Ticket) (domain.Ticket, error)
	deleteFn func(ctx context.Context, id int64) (domain.DeleteResult, error)
}

func (f *fakeTicketRepo) CreateTicket(ctx context.Context, t domain.Ticket) (domain.Ticket, error) {
	return f.createFn(ctx, t)
}
func (f *fakeTicketRepo) GetTicket(ctx context.Context, id int64) (domain.Ticket, error) {
	return f.getFn(ctx, id)
}
func (f *fakeTicketRepo) ListTickets(ctx context.Context, eventID int64) ([]domain.Ticket, error) {
	return f.listFn(ctx, eventID)
}
func (f *fakeTicketRepo) UpdateTicket(ctx context.Context, t domain.Ticket) (domain.Ticket, error) {
	return f.updateFn(ctx, t)
}
func (f *fakeTicketRepo) DeleteTicket(ctx context.Context, id int64) (domain.DeleteResult, error) {
	return f.deleteFn(ctx, id)
}

type fakeAttendeeRepo struct {
	registerFn func(ctx context.Context, a domain.Attendee) (domain.Attendee, error)
	listFn     func(ctx context.Context, eventID int64, filter domain.AttendeeFilter) ([]domain.Attendee, error)
}

func (f *fakeAttendeeRepo) RegisterAttendee(ctx context.Context, a domain.Attendee) (domain.Attendee, error) {
	return f.registerFn(ctx, a)
}
func (f *fakeAttendeeRepo) ListAttendees(ctx context.Context, eventID int64, filter domain.AttendeeFilter) ([]domain.Attendee, error) {
	return f.listFn(ctx, eventID, filter)
}

type fakeDashboardRepo struct {
	metricsFn      func(ctx context.Context, ownerID int64) (domain.DashboardMetrics, error)
	performanceFn  func(ctx context.Context, ownerID int64) ([]domain.EventPerformance, error)
	distributionFn func(ctx context.Context, ownerID int64) ([]domain.TicketTypeCount, error)
}

func (f *fakeDashboardRepo) Metrics(ctx context.Context, ownerID int64) (domain.DashboardMetrics, error) {
	return f.metricsFn(ctx, ownerID)
}
func (f *fakeDashboardRepo) Performance(ctx context.Context, ownerID int64) ([]domain.EventPerformance, error) {
	return f.performanceFn(ctx, ownerID)
}
func (f *fakeDashboardRepo) Distribution(ctx context.Context, ownerID int64) ([]domain.TicketTypeCount, error) {
	return f.distributionFn(ctx, ownerID)
}

type fakeNotifier struct {
	sent []notify.Confirmation
	err  error
}

func (f *fakeNotifier) Notify(_ context.Context, c notify.Confirmation) error {
	f.sent = append(f.sent, c)
	return f.err
}
