package flight

import (
	"net/http"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

var ErrMalformedFlight = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "malformed flight data",
}
