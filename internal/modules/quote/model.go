// README: Quote domain types: booking request, legs, and the computed quote.
package quote

// BookingRequest carries the rider-supplied fields. Everything except the
// locations is passthrough data echoed back in the response.
type BookingRequest struct {
	Name                   string   `json:"name"`
	Email                  string   `json:"email"`
	Phone                  string   `json:"phone"`
	PickupLocation         string   `json:"pickupLocation"`
	PrimaryDestination     string   `json:"primaryDestination"`
	AdditionalDestinations []string `json:"additionalDestinations"`
	PassengerRequests      string   `json:"passengerRequests"`
}

// Leg is one resolved point-to-point segment of the itinerary.
type Leg struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// Quote is the fare estimate with its supporting leg breakdown.
// Totals are exact sums over the unrounded leg values; leg values and
// totals are rounded to 2 decimals for presentation when the quote is built.
type Quote struct {
	Legs                 []Leg   `json:"calculated_legs"`
	TotalDistanceKm      float64 `json:"total_distance_km"`
	TotalDurationMinutes float64 `json:"total_duration_minutes"`
	EstimatedCost        float64 `json:"estimated_cost_usd"`
}
