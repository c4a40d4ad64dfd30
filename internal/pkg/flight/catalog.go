package flight

import (
	"slices"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/samber/lo"
)

// sample flights, fixed for the lifetime of the process
var sampleFlights = []dto.Flight{
	{Origin: "New York", Destination: "London", Date: "2024-07-06", Departure: "09:30", Price: "$650", Number: "BA178"},
	{Origin: "Tokyo", Destination: "Sydney", Date: "2024-07-06", Departure: "23:45", Price: "$780", Number: "QF22"},
	{Origin: "Paris", Destination: "Rome", Date: "2024-07-07", Departure: "14:15", Price: "$210", Number: "AZ324"},
	{Origin: "Dubai", Destination: "Singapore", Date: "2024-07-07", Departure: "01:20", Price: "$420", Number: "EK404"},
	{Origin: "Los Angeles", Destination: "Chicago", Date: "2024-07-08", Departure: "11:05", Price: "$320", Number: "UA846"},
	{Origin: "Berlin", Destination: "Moscow", Date: "2024-07-08", Departure: "16:50", Price: "$280", Number: "SU2313"},
	{Origin: "Mumbai", Destination: "Bangkok", Date: "2024-07-09", Departure: "20:30", Price: "$310", Number: "TG318"},
	{Origin: "São Paulo", Destination: "Buenos Aires", Date: "2024-07-09", Departure: "08:45", Price: "$390", Number: "LA8012"},
	{Origin: "Amsterdam", Destination: "Barcelona", Date: "2024-07-10", Departure: "13:10", Price: "$180", Number: "VY8318"},
	{Origin: "Hong Kong", Destination: "Seoul", Date: "2024-07-10", Departure: "10:25", Price: "$290", Number: "KE608"},
	{Origin: "Toronto", Destination: "Vancouver", Date: "2024-07-11", Departure: "15:40", Price: "$270", Number: "AC118"},
	{Origin: "Istanbul", Destination: "Athens", Date: "2024-07-11", Departure: "07:55", Price: "$160", Number: "TK1845"},
	{Origin: "Mexico City", Destination: "Cancun", Date: "2024-07-12", Departure: "12:30", Price: "$150", Number: "AM824"},
	{Origin: "Copenhagen", Destination: "Stockholm", Date: "2024-07-12", Departure: "18:20", Price: "$140", Number: "SK1419"},
	{Origin: "Cairo", Destination: "Dubai", Date: "2024-07-13", Departure: "22:05", Price: "$330", Number: "MS916"},
	{Origin: "Johannesburg", Destination: "Cape Town", Date: "2024-07-13", Departure: "06:15", Price: "$200", Number: "SA317"},
	{Origin: "Zurich", Destination: "Vienna", Date: "2024-07-14", Departure: "09:50", Price: "$170", Number: "OS564"},
	{Origin: "Dublin", Destination: "Edinburgh", Date: "2024-07-14", Departure: "17:35", Price: "$120", Number: "EI3250"},
	{Origin: "San Francisco", Destination: "Seattle", Date: "2024-07-14", Departure: "14:00", Price: "$190", Number: "AS1532"},
	{Origin: "Helsinki", Destination: "Oslo", Date: "2024-07-14", Departure: "11:45", Price: "$230", Number: "AY913"},
}

// Catalog is the read-only set of flights available to search.
type Catalog struct {
	flights []dto.Flight
}

// NewCatalog returns the catalog of sample flights.
func NewCatalog() *Catalog {
	return NewCatalogFrom(sampleFlights)
}

// NewCatalogFrom builds a catalog over a copy of flights.
func NewCatalogFrom(flights []dto.Flight) *Catalog {
	return &Catalog{
		flights: slices.Clone(flights),
	}
}

// All returns every flight in catalog order. The result is a copy.
func (c *Catalog) All() []dto.Flight {
	return slices.Clone(c.flights)
}

// ForDate returns the flights departing on date, in catalog order.
// An unmatched date gives an empty, non-nil slice.
func (c *Catalog) ForDate(date string) []dto.Flight {
	return lo.Filter(c.flights, func(flight dto.Flight, _ int) bool {
		return flight.Date == date
	})
}

// Contains reports whether flight is one of the catalog flights.
func (c *Catalog) Contains(flight dto.Flight) bool {
	return lo.Contains(c.flights, flight)
}
