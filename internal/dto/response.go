package dto

import (
	"encoding/json"
	"log/slog"
	"net/http"

	gerr "github.com/jekabolt/grbpwr-dashboard/internal/errors"
	"github.com/jekabolt/grbpwr-dashboard/internal/middleware"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope of every JSON response.
type Response struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// WriteSuccess writes data wrapped in a success envelope with status 200.
func WriteSuccess(w http.ResponseWriter, r *http.Request, message string, data any) {
	writeJSON(w, r, Response{
		Code:    http.StatusOK,
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// WriteError maps err onto an HTTP status and writes an error envelope.
// Messages of errors without a status are not exposed.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	code := gerr.HTTPStatus(err)
	if code >= http.StatusInternalServerError {
		middleware.Logger(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}
	writeJSON(w, r, Response{
		Code:    code,
		Status:  StatusError,
		Message: gerr.Message(err),
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't write response",
			slog.String("err", err.Error()),
		)
	}
}
