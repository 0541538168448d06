package assess

import (
	"context"
	"log/slog"
	"time"

	"github.com/hydranaut/rtrwh-assessment/internal/domain"
	"github.com/hydranaut/rtrwh-assessment/internal/observability"
)

// Publisher emits assessment events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event domain.AssessmentEvent) error
}

// Service runs feasibility assessments: it resolves the annual rainfall for a
// site, derives the structure recommendation and cost figures, and emits an
// event per assessment.
type Service struct {
	provider  domain.RainfallProvider
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Service. Both provider and publisher may be nil: assessments
// then use the default rainfall and skip event publication.
func New(provider domain.RainfallProvider, publisher Publisher, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		provider:  provider,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// Assess computes the full feasibility assessment for one site.
func (s *Service) Assess(ctx context.Context, site domain.SiteInput) domain.AssessmentResult {
	start := time.Now()

	rainfall, source := domain.ResolveRainfall(ctx, site, s.provider, s.logger)
	s.metrics.RainfallLookups.WithLabelValues(source).Inc()

	result := domain.BuildAssessment(site, rainfall)

	s.metrics.AssessmentsTotal.WithLabelValues(result.RecommendedStructure, result.Feasibility).Inc()
	s.metrics.AssessmentDuration.Observe(time.Since(start).Seconds())

	s.logger.Info("assessment completed",
		"location", site.Location,
		"feasibility", result.Feasibility,
		"structure", result.RecommendedStructure,
		"rainfall_mm", rainfall,
		"rainfall_source", source,
	)

	s.publish(ctx, site, result, source)
	return result
}

// publish emits the assessment event. Failures are logged and counted, never
// returned: the assessment response does not depend on the event stream.
func (s *Service) publish(ctx context.Context, site domain.SiteInput, result domain.AssessmentResult, source string) {
	if s.publisher == nil {
		return
	}
	event := domain.NewAssessmentEvent(site, result, source)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish assessment event failed", "error", err, "event_id", event.ID)
		s.metrics.PublishErrors.Inc()
		return
	}
	s.metrics.EventsPublished.Inc()
}

// CheckReadiness reports whether the service can take assessment requests.
// There is no warm-up phase, so the service is ready once constructed; the
// method exists to back the readiness probe.
func (s *Service) CheckReadiness(_ context.Context) error {
	return nil
}
