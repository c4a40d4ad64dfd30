package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

var ErrInvalidRequestBody = exception.New(http.StatusBadRequest, "invalid request body")

// MakeHandlerFunc serves a go-kit endpoint, encoding errors with ErrorResponse.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(
		e,
		dec,
		enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRequest decodes the JSON body, when there is one, into a new T and
// binds it with the request. *T must implement render.Binder.
// The decoded request is returned as *T.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	var req T

	binder, ok := any(&req).(render.Binder)
	if !ok {
		return nil, fmt.Errorf("%T does not implement render.Binder", &req)
	}

	if r.Body != nil && r.Body != http.NoBody {
		if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
			return nil, ErrInvalidRequestBody.WithCause(err)
		}
	}

	if err := binder.Bind(r); err != nil {
		return nil, err
	}

	return &req, nil
}
