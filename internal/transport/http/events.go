package http

import (
	"log/slog"
	"net/http"
)

type eventHandler struct {
	svc    EventService
	logger *slog.Logger
}

// list handles GET /profiles/{profileID}/events?sort=date|revenue.
func (h *eventHandler) list(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "profileID")
	if !ok {
		return
	}
	events, err := h.svc.ListEvents(r.Context(), ownerID, r.URL.Query().Get("sort"))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	resp := make([]eventSummaryResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, eventSummaryResponse{
			eventResponse: newEventResponse(e.Event),
			TotalRevenue:  money(e.TotalRevenue),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *eventHandler) create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "profileID")
	if !ok {
		return
	}
	var req eventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	e, err := h.svc.CreateEvent(r.Context(), ownerID, in)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, newEventResponse(e))
}

func (h *eventHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	e, err := h.svc.GetEvent(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newEventResponse(e))
}

func (h *eventHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req eventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	e, err := h.svc.UpdateEvent(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newEventResponse(e))
}

func (h *eventHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	res, err := h.svc.DeleteEvent(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{
		AttendeesDeleted: res.AttendeesDeleted,
		TicketsDeleted:   res.TicketsDeleted,
	})
}
