package transport

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/travel-booking-service/internal/app/config"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/travel-booking-service/internal/pkg/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
	limiter httptransport.RateLimiter,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", httptransport.MakeHandlerFunc(
		endpoint.Nop,
		kithttp.NopRequestDecoder,
		httptransport.NoContentResponse,
	))
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(cfg.HTTP.AllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			httptransport.Metrics(),
			httptransport.RateLimit(limiter, cfg.HTTP.RateLimitRPS),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Route("/flights", func(router chi.Router) {
			router.Get("/", httptransport.MakeHandlerFunc(
				endpts.FlightEndpoint.ListFlights,
				httptransport.DecodeRequest[dto.ListFlightsRequest],
				httptransport.ResponseWithBody,
			))

			router.Post("/search", httptransport.MakeHandlerFunc(
				endpts.FlightEndpoint.SearchFlights,
				httptransport.DecodeRequest[dto.SearchFlightRequest],
				httptransport.ResponseWithBody,
			))
		})

		router.Post("/sessions", httptransport.MakeHandlerFunc(
			endpts.SessionEndpoint.CreateSession,
			httptransport.DecodeRequest[dto.CreateSessionRequest],
			httptransport.CreatedResponseWithBody,
		))

		router.Route("/sessions/{"+dto.SessionIDParam+"}", func(router chi.Router) {
			router.Use(httptransport.SessionID(dto.SessionIDParam))

			router.Get("/", httptransport.MakeHandlerFunc(
				endpts.SessionEndpoint.GetSession,
				httptransport.DecodeRequest[dto.GetSessionRequest],
				httptransport.ResponseWithBody,
			))

			router.Post("/navigate", httptransport.MakeHandlerFunc(
				endpts.SessionEndpoint.Navigate,
				httptransport.DecodeRequest[dto.NavigateRequest],
				httptransport.ResponseWithBody,
			))

			router.Post("/booking", httptransport.MakeHandlerFunc(
				endpts.SessionEndpoint.DispatchBooking,
				httptransport.DecodeRequest[dto.BookingActionRequest],
				httptransport.ResponseWithBody,
			))

			router.Post("/profile", httptransport.MakeHandlerFunc(
				endpts.SessionEndpoint.DispatchProfile,
				httptransport.DecodeRequest[dto.ProfileActionRequest],
				httptransport.ResponseWithBody,
			))
		})

		router.Get("/notifications", httptransport.MakeHandlerFunc(
			endpts.NotificationEndpoint.ListNotifications,
			httptransport.DecodeRequest[dto.ListNotificationsRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
