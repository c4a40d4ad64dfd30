package endpoints

// Endpoints holds every endpoint group served over HTTP.
type Endpoints struct {
	FlightEndpoint       FlightEndpoint
	SessionEndpoint      SessionEndpoint
	NotificationEndpoint NotificationEndpoint
}
