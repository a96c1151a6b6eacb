package maps

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"googlemaps.github.io/maps"

	"ridequote/internal/modules/quote"
)

// outboundTimeout bounds every Distance Matrix call so a hung provider
// cannot block a request forever.
const outboundTimeout = 10 * time.Second

// DistanceService resolves itinerary legs through the Google Distance
// Matrix API. It issues one single-origin, single-destination query per leg.
type DistanceService struct {
	client *maps.Client
}

// NewDistanceService creates a DistanceService with the given API key.
func NewDistanceService(apiKey string) (*DistanceService, error) {
	return newDistanceService(
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: outboundTimeout}),
	)
}

func newDistanceService(opts ...maps.ClientOption) (*DistanceService, error) {
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DistanceService{client: client}, nil
}

// Resolve returns the driving distance and duration between origin and
// destination. Transport failures, non-OK statuses and empty responses all
// surface as errors; there are no retries.
func (s *DistanceService) Resolve(ctx context.Context, origin, destination string) (quote.Leg, error) {
	if origin == "" || destination == "" {
		return quote.Leg{}, errors.New("origin and destination are required")
	}

	r := &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	}

	resp, err := s.client.DistanceMatrix(ctx, r)
	if err != nil {
		return quote.Leg{}, fmt.Errorf("distance matrix request: %w", err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return quote.Leg{}, errors.New("distance matrix returned no elements")
	}

	elem := resp.Rows[0].Elements[0]
	if elem.Status != "OK" {
		return quote.Leg{}, fmt.Errorf("distance matrix element status: %s", elem.Status)
	}

	return quote.Leg{
		From:            origin,
		To:              destination,
		DistanceKm:      float64(elem.Distance.Meters) / 1000,
		DurationMinutes: elem.Duration.Minutes(),
	}, nil
}

// Unconfigured is the LegResolver wired in when no Maps API key is set.
// The process stays up; every quote fails with a configuration error.
type Unconfigured struct{}

func (Unconfigured) Resolve(ctx context.Context, origin, destination string) (quote.Leg, error) {
	return quote.Leg{}, errors.New("maps API key not configured on backend")
}
