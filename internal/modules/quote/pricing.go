// README: Linear fare formula and currency rounding.
package quote

import "math"

// Rates holds the fare constants. Compiled-in defaults live in config;
// the struct exists so alternate tariffs are a config change, not a fork.
type Rates struct {
	BaseFareUSD  float64
	PerKmUSD     float64
	PerMinuteUSD float64
}

// EstimateCost applies the linear formula to the trip totals and rounds
// to currency precision.
func EstimateCost(r Rates, distanceKm, durationMinutes float64) float64 {
	cost := r.BaseFareUSD + distanceKm*r.PerKmUSD + durationMinutes*r.PerMinuteUSD
	return round2(cost)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
