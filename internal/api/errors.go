package api

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/businessthis/finplan/internal/calculation"
)

// ErrorResponse is the JSON body of every non-2xx response
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// errBadRequest marks request decoding failures
var errBadRequest = errors.New("invalid request body")

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// statusFor maps an error to its HTTP status. Only caller mistakes are 4xx.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, calculation.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
