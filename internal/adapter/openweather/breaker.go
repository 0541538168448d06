package openweather

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/hydranaut/rtrwh-assessment/internal/domain"
)

// BreakerProvider wraps a RainfallProvider with a circuit breaker so a failing
// upstream cannot hold every assessment on a timing-out socket. While the
// breaker is open, lookups fail immediately and the rainfall resolver falls
// back to the default figure.
type BreakerProvider struct {
	inner   domain.RainfallProvider
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerProvider creates a breaker decorator around a rainfall provider.
// The breaker opens after threshold consecutive failures and probes the
// upstream again after cooldown.
func NewBreakerProvider(inner domain.RainfallProvider, threshold int, cooldown time.Duration, logger *slog.Logger) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:    "openweather",
		Timeout: cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(threshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("rainfall provider breaker state change",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	}
	return &BreakerProvider{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *BreakerProvider) AnnualByCoordinates(ctx context.Context, lat, lon float64) (float64, error) {
	return b.execute(func() (float64, error) {
		return b.inner.AnnualByCoordinates(ctx, lat, lon)
	})
}

func (b *BreakerProvider) AnnualByPlace(ctx context.Context, place string) (float64, error) {
	return b.execute(func() (float64, error) {
		return b.inner.AnnualByPlace(ctx, place)
	})
}

func (b *BreakerProvider) execute(lookup func() (float64, error)) (float64, error) {
	v, err := b.breaker.Execute(func() (any, error) {
		return lookup()
	})
	if err != nil {
		return 0, err
	}
	return v.(float64), nil
}
