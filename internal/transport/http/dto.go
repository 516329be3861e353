package http

import (
	"time"

	"github.com/cimillas/event-admin/internal/app"
	"github.com/cimillas/event-admin/internal/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type profileRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
}

func (req profileRequest) input() app.ProfileInput {
	return app.ProfileInput{Name: req.Name, Email: req.Email, Organization: req.Organization}
}

type profileResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization,omitempty"`
}

func newProfileResponse(p domain.Profile) profileResponse {
	return profileResponse{ID: p.ID, Name: p.Name, Email: p.Email, Organization: p.Organization}
}

type eventRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (req eventRequest) input() (app.EventInput, error) {
	if req.Date == "" {
		return app.EventInput{}, domain.Invalid("date", "is required")
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return app.EventInput{}, domain.Invalid("date", "must be YYYY-MM-DD")
	}
	if req.Time == "" {
		return app.EventInput{}, domain.Invalid("time", "is required")
	}
	tod, err := domain.ParseTimeOfDay(req.Time)
	if err != nil {
		return app.EventInput{}, err
	}
	return app.EventInput{
		Name:        req.Name,
		Date:        date,
		Time:        tod,
		Location:    req.Location,
		Description: req.Description,
	}, nil
}

type eventResponse struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func newEventResponse(e domain.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Name:        e.Name,
		Date:        e.Date.Format(dateLayout),
		Time:        e.Time.String(),
		Location:    e.Location,
		Description: e.Description,
	}
}

type eventSummaryResponse struct {
	eventResponse
	TotalRevenue string `json:"total_revenue"`
}

type ticketRequest struct {
	TicketType        string           `json:"ticket_type"`
	Price             *decimal.Decimal `json:"price"`
	QuantityAvailable int              `json:"quantity_available"`
}

func (req ticketRequest) input() (app.TicketInput, error) {
	if req.Price == nil {
		return app.TicketInput{}, domain.Invalid("price", "is required")
	}
	return app.TicketInput{
		TypeLabel:         req.TicketType,
		Price:             *req.Price,
		QuantityAvailable: req.QuantityAvailable,
	}, nil
}

type ticketResponse struct {
	ID                int64  `json:"id"`
	EventID           int64  `json:"event_id"`
	TicketType        string `json:"ticket_type"`
	Price             string `json:"price"`
	QuantityAvailable int    `json:"quantity_available"`
}

func newTicketResponse(t domain.Ticket) ticketResponse {
	return ticketResponse{
		ID:                t.ID,
		EventID:           t.EventID,
		TicketType:        t.TypeLabel,
		Price:             money(t.Price),
		QuantityAvailable: t.QuantityAvailable,
	}
}

type attendeeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	TicketID int64  `json:"ticket_id"`
}

type attendeeResponse struct {
	ID         int64  `json:"id"`
	EventID    int64  `json:"event_id"`
	TicketID   int64  `json:"ticket_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	TicketType string `json:"ticket_type"`
}

func newAttendeeResponse(a domain.Attendee) attendeeResponse {
	return attendeeResponse{
		ID:         a.ID,
		EventID:    a.EventID,
		TicketID:   a.TicketID,
		Name:       a.Name,
		Email:      a.Email,
		TicketType: a.TicketType,
	}
}

type deleteResponse struct {
	AttendeesDeleted int64 `json:"attendees_deleted"`
	TicketsDeleted   int64 `json:"tickets_deleted"`
}

type metricsResponse struct {
	TotalEvents          int64  `json:"total_events"`
	TotalAttendees       int64  `json:"total_attendees"`
	TotalPossibleRevenue string `json:"total_possible_revenue"`
	AverageTicketPrice   string `json:"average_ticket_price"`
	MinTicketPrice       string `json:"min_ticket_price"`
	MaxTicketPrice       string `json:"max_ticket_price"`
	NetRevenue           string `json:"net_revenue"`
}

func newMetricsResponse(m domain.DashboardMetrics) metricsResponse {
	return metricsResponse{
		TotalEvents:          m.TotalEvents,
		TotalAttendees:       m.TotalAttendees,
		TotalPossibleRevenue: money(m.TotalPossibleRevenue),
		AverageTicketPrice:   money(m.AverageTicketPrice),
		MinTicketPrice:       money(m.MinTicketPrice),
		MaxTicketPrice:       money(m.MaxTicketPrice),
		NetRevenue:           money(m.NetRevenue),
	}
}

type performanceResponse struct {
	EventID          int64  `json:"event_id"`
	EventName        string `json:"event_name"`
	TicketsAvailable int64  `json:"tickets_available"`
	TicketsSold      int64  `json:"tickets_sold"`
	ListedPriceTotal string `json:"listed_price_total"`
	SoldRevenue      string `json:"sold_revenue"`
}

func newPerformanceResponse(rows []domain.EventPerformance) []performanceResponse {
	resp := make([]performanceResponse, 0, len(rows))
	for _, p := range rows {
		resp = append(resp, performanceResponse{
			EventID:          p.EventID,
			EventName:        p.EventName,
			TicketsAvailable: p.TicketsAvailable,
			TicketsSold:      p.TicketsSold,
			ListedPriceTotal: money(p.ListedPriceTotal),
			SoldRevenue:      money(p.SoldRevenue),
		})
	}
	return resp
}

type distributionResponse struct {
	TicketType    string `json:"ticket_type"`
	AttendeeCount int64  `json:"attendee_count"`
}

func newDistributionResponse(rows []domain.TicketTypeCount) []distributionResponse {
	resp := make([]distributionResponse, 0, len(rows))
	for _, c := range rows {
		resp = append(resp, distributionResponse{TicketType: c.TicketType, AttendeeCount: c.AttendeeCount})
	}
	return resp
}

type dashboardResponse struct {
	Metrics      metricsResponse        `json:"metrics"`
	Performance  []performanceResponse  `json:"performance"`
	Distribution []distributionResponse `json:"distribution"`
}

// money renders amounts with exactly two decimals, as stored.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
