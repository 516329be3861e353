package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cimillas/event-admin/internal/domain"
)

const (
	codeMethodNotAllowed    = "method_not_allowed"
	codeNotFound            = "not_found"
	codeInvalidRequestBody  = "invalid_request_body"
	codeInvalidID           = "invalid_id"
	codeInvalidInput        = "invalid_input"
	codeProfileNotFound     = "profile_not_found"
	codeEventNotFound       = "event_not_found"
	codeTicketNotFound      = "ticket_not_found"
	codeDuplicateEmail      = "duplicate_email"
	codeDatabaseUnavailable = "database_unavailable"
	codeForbidden           = "forbidden"
	codeInternalError       = "internal_error"
	codeRequestCanceled     = "request_canceled"
)

// statusClientClosedRequest is the nginx convention for a client that left
// before the response.
const statusClientClosedRequest = 499

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// writeServiceError maps a service error onto its status and code. Only
// unclassified errors are logged; their text never reaches the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, codeInvalidInput, verr.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, codeInvalidInput, err.Error())
	case errors.Is(err, domain.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, codeProfileNotFound, domain.ErrProfileNotFound.Error())
	case errors.Is(err, domain.ErrEventNotFound):
		writeError(w, http.StatusNotFound, codeEventNotFound, domain.ErrEventNotFound.Error())
	case errors.Is(err, domain.ErrTicketNotFound):
		writeError(w, http.StatusNotFound, codeTicketNotFound, domain.ErrTicketNotFound.Error())
	case errors.Is(err, domain.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, codeDuplicateEmail, domain.ErrDuplicateEmail.Error())
	case errors.Is(err, domain.ErrConnection):
		logger.WarnContext(r.Context(), "database unavailable", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusServiceUnavailable, codeDatabaseUnavailable, domain.ErrConnection.Error())
	case errors.Is(err, domain.ErrCanceled), errors.Is(err, context.Canceled):
		logger.InfoContext(r.Context(), "request canceled", "path", r.URL.Path)
		writeError(w, statusClientClosedRequest, codeRequestCanceled, domain.ErrCanceled.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
