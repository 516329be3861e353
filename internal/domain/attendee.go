package domain

import "fmt"

// Attendee is one registration against a ticket of the same event.
// TicketType is filled from the joined ticket when reading.
type Attendee struct {
	ID         int64
	EventID    int64
	TicketID   int64
	Name       string
	Email      string
	TicketType string
}

// AttendeeSort selects the ascending ordering of ListAttendees.
type AttendeeSort string

const (
	AttendeeSortName       AttendeeSort = "name"
	AttendeeSortTicketType AttendeeSort = "ticket_type"
)

func ParseAttendeeSort(s string) (AttendeeSort, error) {
	switch AttendeeSort(s) {
	case "", AttendeeSortName:
		return AttendeeSortName, nil
	case AttendeeSortTicketType:
		return AttendeeSortTicketType, nil
	}
	return "", Invalid("sort", fmt.Sprintf("unknown attendee sort key %q", s))
}

// AttendeeFilter narrows ListAttendees. An empty TicketType matches every attendee.
type AttendeeFilter struct {
	Sort       AttendeeSort
	TicketType string
}
