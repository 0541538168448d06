package domain

import (
	"context"
	"log/slog"
)

// DefaultRainfallMM is the fallback annual rainfall when no figure is supplied
// and no lookup succeeds.
const DefaultRainfallMM = 1000.0

// Rainfall source labels recorded on events and metrics.
const (
	RainfallSourceSupplied    = "supplied"
	RainfallSourceCoordinates = "coordinates"
	RainfallSourcePlace       = "place"
	RainfallSourceDefault     = "default"
)

// ResolveRainfall determines the annual rainfall to assess with, returning the
// figure and its source label. A supplied figure always wins, even zero or
// negative. Otherwise the provider is queried by coordinates when both are
// non-zero, then by place name. Lookup failures and zero results degrade to
// DefaultRainfallMM; nothing here fails the assessment. A nil provider skips
// lookups entirely.
func ResolveRainfall(ctx context.Context, site SiteInput, provider RainfallProvider, logger *slog.Logger) (float64, string) {
	if site.RainfallMM != nil {
		return *site.RainfallMM, RainfallSourceSupplied
	}
	if provider == nil {
		return DefaultRainfallMM, RainfallSourceDefault
	}

	if site.Latitude != 0 && site.Longitude != 0 {
		mm, err := provider.AnnualByCoordinates(ctx, site.Latitude, site.Longitude)
		if err != nil {
			logger.Warn("rainfall lookup by coordinates failed, using default",
				"lat", site.Latitude, "lon", site.Longitude, "error", err)
			return DefaultRainfallMM, RainfallSourceDefault
		}
		if mm == 0 {
			return DefaultRainfallMM, RainfallSourceDefault
		}
		return mm, RainfallSourceCoordinates
	}

	if site.Location != "" {
		mm, err := provider.AnnualByPlace(ctx, site.Location)
		if err != nil {
			logger.Warn("rainfall lookup by place failed, using default",
				"location", site.Location, "error", err)
			return DefaultRainfallMM, RainfallSourceDefault
		}
		if mm == 0 {
			return DefaultRainfallMM, RainfallSourceDefault
		}
		return mm, RainfallSourcePlace
	}

	return DefaultRainfallMM, RainfallSourceDefault
}
