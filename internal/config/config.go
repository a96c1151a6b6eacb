// README: Config loader with env defaults for HTTP, CORS, maps key, and pricing.
package config

import (
	"os"
	"strings"

	"ridequote/internal/modules/quote"
)

// Fare constants are compiled-in defaults, deliberately not env-overridable.
const (
	defaultBaseFareUSD  = 2.00
	defaultPerKmUSD     = 0.50
	defaultPerMinuteUSD = 0.20
)

// defaultFixedOrigin is the placeholder depot used when FIXED_ORIGIN is unset.
// Set FIXED_ORIGIN to an empty string to disable the depot leg entirely.
const defaultFixedOrigin = "Harare, Zimbabwe"

type Config struct {
	HTTP struct {
		Addr string
	}
	Maps struct {
		APIKey string
	}
	Quote struct {
		FixedOrigin string
		Rates       quote.Rates
	}
	CORS struct {
		AllowedOrigins []string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("RIDEQUOTE_HTTP_ADDR", ":8080")
	cfg.Maps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	cfg.Quote.FixedOrigin = envOrDefault("FIXED_ORIGIN", defaultFixedOrigin)
	cfg.Quote.Rates = quote.Rates{
		BaseFareUSD:  defaultBaseFareUSD,
		PerKmUSD:     defaultPerKmUSD,
		PerMinuteUSD: defaultPerMinuteUSD,
	}
	cfg.CORS.AllowedOrigins = splitList(envOrDefault("RIDEQUOTE_ALLOWED_ORIGINS", "*"))
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
