// README: Booking endpoint tests over the full router.
package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "ridequote/internal/http"
	"ridequote/internal/modules/quote"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(resolver quote.LegResolver, fixedOrigin string) *gin.Engine {
	rates := quote.Rates{BaseFareUSD: 2.00, PerKmUSD: 0.50, PerMinuteUSD: 0.20}
	svc := quote.NewService(resolver, fixedOrigin, rates)
	return httptransport.NewRouter(svc, []string{"*"}, zap.NewNop())
}

func tableResolver(t *testing.T, legs map[string]quote.Leg) quote.ResolverFunc {
	t.Helper()
	return func(ctx context.Context, origin, destination string) (quote.Leg, error) {
		leg, ok := legs[origin+"|"+destination]
		if !ok {
			return quote.Leg{}, errors.New("no route found")
		}
		return leg, nil
	}
}

func postBookRide(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/book-ride", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validBody = `{
	"name": "Tariro M",
	"email": "tariro@example.com",
	"phone": "+263771234567",
	"pickupLocation": "A",
	"primaryDestination": "B",
	"additionalDestinations": ["C"],
	"passengerRequests": "child seat please"
}`

func TestBookRideSuccess(t *testing.T) {
	resolver := tableResolver(t, map[string]quote.Leg{
		"A|B": {DistanceKm: 10, DurationMinutes: 15},
		"B|C": {DistanceKm: 5, DurationMinutes: 10},
	})
	router := newTestRouter(resolver, "")

	w := postBookRide(router, validBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var resp struct {
		Message        string `json:"message"`
		BookingDetails struct {
			Name                   string   `json:"name"`
			Email                  string   `json:"email"`
			Phone                  string   `json:"phone"`
			PickupLocation         string   `json:"pickupLocation"`
			PrimaryDestination     string   `json:"primaryDestination"`
			AdditionalDestinations []string `json:"additionalDestinations"`
			PassengerRequests      string   `json:"passengerRequests"`
			TotalDistanceKm        float64  `json:"total_distance_km"`
			TotalDurationMinutes   float64  `json:"total_duration_minutes"`
			EstimatedCostUSD       float64  `json:"estimated_cost_usd"`
			CalculatedLegs         []struct {
				From            string  `json:"from"`
				To              string  `json:"to"`
				DistanceKm      float64 `json:"distance_km"`
				DurationMinutes float64 `json:"duration_minutes"`
			} `json:"calculated_legs"`
		} `json:"booking_details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Ride booking request received and processed!", resp.Message)

	d := resp.BookingDetails
	assert.Equal(t, "Tariro M", d.Name)
	assert.Equal(t, "child seat please", d.PassengerRequests)
	assert.Equal(t, []string{"C"}, d.AdditionalDestinations)
	assert.Equal(t, 15.0, d.TotalDistanceKm)
	assert.Equal(t, 25.0, d.TotalDurationMinutes)
	assert.Equal(t, 14.50, d.EstimatedCostUSD)
	require.Len(t, d.CalculatedLegs, 2)
	assert.Equal(t, "A", d.CalculatedLegs[0].From)
	assert.Equal(t, "B", d.CalculatedLegs[0].To)
	assert.Equal(t, "C", d.CalculatedLegs[1].To)
}

func TestBookRideEchoesEmptyAdditionalDestinations(t *testing.T) {
	resolver := tableResolver(t, map[string]quote.Leg{
		"A|B": {DistanceKm: 10, DurationMinutes: 15},
	})
	router := newTestRouter(resolver, "")

	body := `{"name":"n","email":"e","phone":"p","pickupLocation":"A","primaryDestination":"B"}`
	w := postBookRide(router, body)
	require.Equal(t, http.StatusOK, w.Code)

	// [] rather than null, matching the documented response shape.
	assert.Contains(t, w.Body.String(), `"additionalDestinations":[]`)
}

func TestBookRideMissingRequiredField(t *testing.T) {
	called := false
	resolver := quote.ResolverFunc(func(ctx context.Context, origin, destination string) (quote.Leg, error) {
		called = true
		return quote.Leg{}, nil
	})
	router := newTestRouter(resolver, "")

	body := `{"name":"n","email":"e","phone":"p","primaryDestination":"B"}`
	w := postBookRide(router, body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "pickupLocation")
	assert.False(t, called, "validation failure must not reach the provider")
}

func TestBookRideInvalidJSON(t *testing.T) {
	router := newTestRouter(quote.ResolverFunc(nil), "")

	w := postBookRide(router, `{"name": `)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid JSON body")
}

func TestBookRideProviderFailure(t *testing.T) {
	// Leg B->C fails; leg A->B succeeded but no partial quote leaks out.
	resolver := tableResolver(t, map[string]quote.Leg{
		"A|B": {DistanceKm: 10, DurationMinutes: 15},
	})
	router := newTestRouter(resolver, "")

	w := postBookRide(router, validBody)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, `"B" -> "C"`)
	assert.NotContains(t, w.Body.String(), "booking_details")
}

func TestHealth(t *testing.T) {
	router := newTestRouter(quote.ResolverFunc(nil), "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
