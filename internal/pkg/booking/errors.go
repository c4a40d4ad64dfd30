package booking

import (
	"net/http"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

var (
	ErrInvalidTransition = exception.New(http.StatusConflict, "action not allowed in current booking view")

	ErrUnknownAction = exception.New(http.StatusBadRequest, "unknown booking action")

	ErrMissingPayload = exception.New(http.StatusBadRequest, "booking action payload is missing")

	ErrFlightNotInCatalog = exception.New(http.StatusUnprocessableEntity, "flight is not in the catalog")

	ErrSeatUnavailable = exception.New(http.StatusUnprocessableEntity, "seat is not available")

	ErrDateOutsideWeek = exception.New(http.StatusUnprocessableEntity, "date is not in the calendar week")
)
