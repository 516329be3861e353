package http

import (
	"log/slog"
	"net/http"
)

type profileHandler struct {
	svc    ProfileService
	logger *slog.Logger
}

func (h *profileHandler) create(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.svc.CreateProfile(r.Context(), req.input())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, newProfileResponse(p))
}

func (h *profileHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "profileID")
	if !ok {
		return
	}
	p, err := h.svc.GetProfile(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newProfileResponse(p))
}

func (h *profileHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "profileID")
	if !ok {
		return
	}
	var req profileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.svc.UpdateProfile(r.Context(), id, req.input())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newProfileResponse(p))
}
