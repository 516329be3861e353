package app

import (
	"context"
	"testing"
	"time"

	"github.com/cimillas/event-admin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateEvent_NormalizesDate(t *testing.T) {
	var stored domain.Event
	repo := &fakeEventRepo{
		createFn: func(_ context.Context, e domain.Event) (domain.Event, error) {
			stored = e
			e.ID = 11
			return e, nil
		},
	}
	svc := NewEventService(repo, nil)

	tod, err := domain.NewTimeOfDay(19, 30)
	require.NoError(t, err)
	berlin := time.FixedZone("CET", 3600)

	got, err := svc.CreateEvent(context.Background(), 5, EventInput{
		Name: " Meetup ",
		Date: time.Date(2025, time.March, 14, 23, 45, 0, 0, berlin),
		Time: tod,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, int64(5), stored.OwnerID)
	assert.Equal(t, "Meetup", stored.Name)
	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), stored.Date)
	assert.Equal(t, tod, stored.Time)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	svc := NewEventService(&fakeEventRepo{}, nil)
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		ownerID int64
		in      EventInput
	}{
		{"missing name", 1, EventInput{Date: day}},
		{"missing date", 1, EventInput{Name: "x"}},
		{"time past midnight", 1, EventInput{Name: "x", Date: day, Time: domain.TimeOfDay(25 * time.Hour)}},
		{"bad owner", 0, EventInput{Name: "x", Date: day}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(context.Background(), tt.ownerID, tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestEventService_ListEvents_SortKeys(t *testing.T) {
	var gotSort domain.EventSort
	repo := &fakeEventRepo{
		listFn: func(_ context.Context, _ int64, sort domain.EventSort) ([]domain.EventSummary, error) {
			gotSort = sort
			return []domain.EventSummary{}, nil
		},
	}
	svc := NewEventService(repo, nil)
	ctx := context.Background()

	_, err := svc.ListEvents(ctx, 1, "")
	require.NoError(t, err)
	assert.Equal(t, domain.EventSortDate, gotSort)

	_, err = svc.ListEvents(ctx, 1, "revenue")
	require.NoError(t, err)
	assert.Equal(t, domain.EventSortRevenue, gotSort)

	_, err = svc.ListEvents(ctx, 1, "popularity")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEventService_UpdateEvent_SetsID(t *testing.T) {
	repo := &fakeEventRepo{
		updateFn: func(_ context.Context, e domain.Event) (domain.Event, error) {
			return e, nil
		},
	}
	got, err := NewEventService(repo, nil).UpdateEvent(context.Background(), 9, EventInput{
		Name: "Renamed",
		Date: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), got.ID)
}

func TestEventService_DeleteEvent(t *testing.T) {
	repo := &fakeEventRepo{
		deleteFn: func(_ context.Context, id int64) (domain.DeleteResult, error) {
			if id == 404 {
				return domain.DeleteResult{}, domain.ErrEventNotFound
			}
			return domain.DeleteResult{AttendeesDeleted: 3, TicketsDeleted: 2}, nil
		},
	}
	svc := NewEventService(repo, nil)

	res, err := svc.DeleteEvent(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.AttendeesDeleted)

	_, err = svc.DeleteEvent(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
