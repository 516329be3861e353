package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cimillas/event-admin/internal/domain"
)

type EventRepository interface {
	CreateEvent(ctx context.Context, e domain.Event) (domain.Event, error)
	GetEvent(ctx context.Context, id int64) (domain.Event, error)
	ListEvents(ctx context.Context, ownerID int64, sort domain.EventSort) ([]domain.EventSummary, error)
	UpdateEvent(ctx context.Context, e domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) (domain.DeleteResult, error)
}

type EventService struct {
	repo   EventRepository
	logger *slog.Logger
}

func NewEventService(repo EventRepository, logger *slog.Logger) *EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventService{repo: repo, logger: logger}
}

type EventInput struct {
	Name        string
	Date        time.Time
	Time        domain.TimeOfDay
	Location    string
	Description string
}

func (in EventInput) event() (domain.Event, error) {
	name, err := requireText("name", in.Name)
	if err != nil {
		return domain.Event{}, err
	}
	day, err := eventDay(in.Date)
	if err != nil {
		return domain.Event{}, err
	}
	if !in.Time.Valid() {
		return domain.Event{}, domain.Invalid("time", "must be within one day")
	}
	return domain.Event{
		Name:        name,
		Date:        day,
		Time:        in.Time,
		Location:    strings.TrimSpace(in.Location),
		Description: strings.TrimSpace(in.Description),
	}, nil
}

func (s *EventService) CreateEvent(ctx context.Context, ownerID int64, in EventInput) (domain.Event, error) {
	if err := requireID("profile_id", ownerID); err != nil {
		return domain.Event{}, err
	}
	e, err := in.event()
	if err != nil {
		return domain.Event{}, err
	}
	e.OwnerID = ownerID
	return s.repo.CreateEvent(ctx, e)
}

func (s *EventService) GetEvent(ctx context.Context, id int64) (domain.Event, error) {
	if err := requireID("event_id", id); err != nil {
		return domain.Event{}, err
	}
	return s.repo.GetEvent(ctx, id)
}

// ListEvents accepts the raw sort key; empty means date.
func (s *EventService) ListEvents(ctx context.Context, ownerID int64, sortKey string) ([]domain.EventSummary, error) {
	if err := requireID("profile_id", ownerID); err != nil {
		return nil, err
	}
	sort, err := domain.ParseEventSort(sortKey)
	if err != nil {
		return nil, err
	}
	return s.repo.ListEvents(ctx, ownerID, sort)
}

func (s *EventService) UpdateEvent(ctx context.Context, id int64, in EventInput) (domain.Event, error) {
	if err := requireID("event_id", id); err != nil {
		return domain.Event{}, err
	}
	e, err := in.event()
	if err != nil {
		return domain.Event{}, err
	}
	e.ID = id
	return s.repo.UpdateEvent(ctx, e)
}

// DeleteEvent removes the event together with its tickets and attendees.
func (s *EventService) DeleteEvent(ctx context.Context, id int64) (domain.DeleteResult, error) {
	if err := requireID("event_id", id); err != nil {
		return domain.DeleteResult{}, err
	}
	res, err := s.repo.DeleteEvent(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	s.logger.InfoContext(ctx, "event deleted",
		"event_id", id,
		"tickets_deleted", res.TicketsDeleted,
		"attendees_deleted", res.AttendeesDeleted,
	)
	return res, nil
}
