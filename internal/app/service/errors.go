package service

import (
	"net/http"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

var ErrFlightNotFound = exception.ApplicationError{
	Message:    "flight not found in current search results",
	StatusCode: http.StatusNotFound,
}
