package http

import (
	"log/slog"
	"net/http"
)

type dashboardHandler struct {
	svc    DashboardService
	logger *slog.Logger
}

func (h *dashboardHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "profileID")
	if !ok {
		return
	}
	d, err := h.svc.Dashboard(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboardResponse{
		Metrics:      newMetricsResponse(d.Metrics),
		Performance:  newPerformanceResponse(d.Performance),
		Distribution: newDistributionResponse(d.Distribution),
	})
}

func (h *dashboardHandler) metrics(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "profileID")
	if !ok {
		return
	}
	m, err := h.svc.Metrics(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newMetricsResponse(m))
}

func (h *dashboardHandler) performance(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "profileID")
	if !ok {
		return
	}
	rows, err := h.svc.Performance(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newPerformanceResponse(rows))
}

func (h *dashboardHandler) distribution(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathID(w, r, "profileID")
	if !ok {
		return
	}
	rows, err := h.svc.Distribution(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newDistributionResponse(rows))
}
