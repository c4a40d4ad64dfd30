package booking

import (
	"slices"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
)

type ViewKind string

const (
	ViewMain             ViewKind = "main"
	ViewHotelDetails     ViewKind = "hotel_details"
	ViewTransportDetails ViewKind = "transport_details"
	ViewSearchDetails    ViewKind = "search_details"
	ViewFilter           ViewKind = "filter"
	ViewSeatSelection    ViewKind = "seat_selection"
	ViewBoarding         ViewKind = "boarding"
)

// View is the booking screen currently shown. Flight is set only for
// SeatSelection and Boarding, Passengers only for Boarding.
type View struct {
	Kind       ViewKind
	Flight     *dto.Flight
	Passengers []dto.Passenger
}

func MainView() View {
	return View{Kind: ViewMain}
}

func SeatSelectionView(flight dto.Flight) View {
	return View{Kind: ViewSeatSelection, Flight: &flight}
}

func BoardingView(flight dto.Flight, passengers []dto.Passenger) View {
	return View{
		Kind:       ViewBoarding,
		Flight:     &flight,
		Passengers: slices.Clone(passengers),
	}
}

func (v View) ToDTO() dto.BookingView {
	out := dto.BookingView{
		Kind:       string(v.Kind),
		Passengers: slices.Clone(v.Passengers),
	}

	if v.Flight != nil {
		flight := *v.Flight
		out.Flight = &flight
	}

	return out
}
