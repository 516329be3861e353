package http

import (
	"log/slog"
	"net/http"

	"github.com/cimillas/event-admin/internal/app"
)

type attendeeHandler struct {
	svc    AttendeeService
	logger *slog.Logger
}

// list handles GET /events/{eventID}/attendees?sort=name|ticket_type&ticket_type=X.
func (h *attendeeHandler) list(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	q := r.URL.Query()
	attendees, err := h.svc.ListAttendees(r.Context(), eventID, q.Get("sort"), q.Get("ticket_type"))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	resp := make([]attendeeResponse, 0, len(attendees))
	for _, a := range attendees {
		resp = append(resp, newAttendeeResponse(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *attendeeHandler) register(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req attendeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := h.svc.RegisterAttendee(r.Context(), app.RegisterAttendeeInput{
		EventID:  eventID,
		TicketID: req.TicketID,
		Name:     req.Name,
		Email:    req.Email,
	})
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, newAttendeeResponse(a))
}
