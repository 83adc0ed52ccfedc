package web

// errors.go provides unified error response handling for the API.
//
// Every error is logged with full technical detail server-side and
// returned to the client as a coded, user-friendly JSON message via
// core.MapError.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/clientportal/stockmonitor/internal/core"
	"github.com/clientportal/stockmonitor/internal/logging"
	"github.com/clientportal/stockmonitor/internal/webhook"
)

// ErrorResponse is the JSON structure for API error responses. Code is
// machine-readable; Message and Action are for humans.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs the technical error with request context and writes
// the mapped user message with an appropriate status code.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := statusForError(err)
	userMsg := core.MapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   userMsg.Message,
		Message: userMsg.Message,
		Action:  userMsg.Action,
		Code:    userMsg.Code,
	})
}

// statusForError maps engine and collaborator errors to HTTP status codes.
func statusForError(err error) int {
	var mapErr *core.MappingError
	switch {
	case errors.As(err, &mapErr):
		// Configuration problem in the source sheet, not a server fault.
		return http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrNoBatch):
		return http.StatusServiceUnavailable
	case errors.Is(err, webhook.ErrNotConfigured):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON encodes v as JSON and writes it to w. Encoding errors are
// logged since headers are already sent.
func writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("json encode failed", "error", err)
	}
}
