package domain

import "context"

// RainfallProvider resolves an annual rainfall estimate in millimeters for a
// geographic query. Implementations return an error rather than a fabricated
// figure when the source is unavailable; callers degrade to DefaultRainfallMM.
// A returned value of zero means the source reported no rainfall.
type RainfallProvider interface {
	AnnualByCoordinates(ctx context.Context, lat, lon float64) (float64, error)
	AnnualByPlace(ctx context.Context, place string) (float64, error)
}
