package http

import (
	"log/slog"
	"net/http"
)

type ticketHandler struct {
	svc    TicketService
	logger *slog.Logger
}

func (h *ticketHandler) list(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	tickets, err := h.svc.ListTickets(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	resp := make([]ticketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, newTicketResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ticketHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "ticketID")
	if !ok {
		return
	}
	t, err := h.svc.GetTicket(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newTicketResponse(t))
}

func (h *ticketHandler) create(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req ticketRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	t, err := h.svc.CreateTicket(r.Context(), eventID, in)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, newTicketResponse(t))
}

func (h *ticketHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "ticketID")
	if !ok {
		return
	}
	var req ticketRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	t, err := h.svc.UpdateTicket(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newTicketResponse(t))
}

func (h *ticketHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "ticketID")
	if !ok {
		return
	}
	res, err := h.svc.DeleteTicket(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{
		AttendeesDeleted: res.AttendeesDeleted,
		TicketsDeleted:   res.TicketsDeleted,
	})
}
