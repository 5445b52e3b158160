// Package apierror renders failures as {"error": ..., "reason": ...} bodies.
package apierror

import (
	"encoding/json"
	"net/http"

	"github.com/go-kratos/kratos/v2/errors"
)

// Messages shared by every transport.
const (
	MessageServerError = "Server error"
	MessageCORS        = "Not allowed by CORS"
)

// ReasonCORS marks requests rejected by the origin allow-list.
const ReasonCORS = "CORS_REJECTED"

// Body is the JSON error payload.
type Body struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// New builds a body.
func New(message, reason string) *Body {
	return &Body{Error: message, Reason: reason}
}

// FromError maps err to a status code and body. Server-side failures keep
// their details out of the response.
func FromError(err error) (int, *Body) {
	se := errors.FromError(err)
	status := int(se.Code)
	if status >= http.StatusInternalServerError || status < http.StatusBadRequest {
		return http.StatusInternalServerError, New(MessageServerError, "")
	}
	return status, New(se.Message, se.Reason)
}

// Write writes body with the given status.
func Write(w http.ResponseWriter, status int, body *Body) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
