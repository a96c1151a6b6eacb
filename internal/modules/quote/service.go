// README: Itinerary aggregator: stop sequence, per-leg resolution, totals, fare.
package quote

import "context"

// LegResolver returns distance and duration between two location strings.
// One outbound provider call per invocation; errors are not retried.
type LegResolver interface {
	Resolve(ctx context.Context, origin, destination string) (Leg, error)
}

// ResolverFunc adapts a function to the LegResolver interface.
type ResolverFunc func(ctx context.Context, origin, destination string) (Leg, error)

func (f ResolverFunc) Resolve(ctx context.Context, origin, destination string) (Leg, error) {
	return f(ctx, origin, destination)
}

// Service computes quotes for booking requests. It holds no mutable state;
// a single instance serves concurrent requests.
type Service struct {
	resolver    LegResolver
	fixedOrigin string
	rates       Rates
}

// NewService creates a quote service. fixedOrigin may be empty, in which
// case no depot leg is prepended to the itinerary.
func NewService(resolver LegResolver, fixedOrigin string, rates Rates) *Service {
	return &Service{resolver: resolver, fixedOrigin: fixedOrigin, rates: rates}
}

// Validate checks the required request fields. Locations are opaque strings;
// no validation beyond non-empty.
func (r BookingRequest) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"phone", r.Phone},
		{"pickupLocation", r.PickupLocation},
		{"primaryDestination", r.PrimaryDestination},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.field}
		}
	}
	return nil
}

// stops builds the ordered itinerary for a request.
func (s *Service) stops(req BookingRequest) []string {
	seq := make([]string, 0, len(req.AdditionalDestinations)+3)
	if s.fixedOrigin != "" {
		seq = append(seq, s.fixedOrigin)
	}
	seq = append(seq, req.PickupLocation, req.PrimaryDestination)
	seq = append(seq, req.AdditionalDestinations...)
	return seq
}

// Quote resolves every consecutive stop pair in order, sums the results and
// applies the fare formula. The first resolver failure aborts the whole
// computation; subsequent legs are not attempted.
func (s *Service) Quote(ctx context.Context, req BookingRequest) (Quote, error) {
	if err := req.Validate(); err != nil {
		return Quote{}, err
	}

	stops := s.stops(req)

	var (
		legs          = make([]Leg, 0, len(stops)-1)
		totalDistance float64
		totalDuration float64
	)
	for i := 1; i < len(stops); i++ {
		from, to := stops[i-1], stops[i]
		leg, err := s.resolver.Resolve(ctx, from, to)
		if err != nil {
			return Quote{}, &LegError{From: from, To: to, Err: err}
		}

		// Totals accumulate the unrounded values; rounding happens only
		// at the presentation edge.
		totalDistance += leg.DistanceKm
		totalDuration += leg.DurationMinutes

		leg.From, leg.To = from, to
		leg.DistanceKm = round2(leg.DistanceKm)
		leg.DurationMinutes = round2(leg.DurationMinutes)
		legs = append(legs, leg)
	}

	return Quote{
		Legs:                 legs,
		TotalDistanceKm:      round2(totalDistance),
		TotalDurationMinutes: round2(totalDuration),
		EstimatedCost:        EstimateCost(s.rates, totalDistance, totalDuration),
	}, nil
}
