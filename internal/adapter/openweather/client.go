package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hydranaut/rtrwh-assessment/internal/observability"
)

// Client implements domain.RainfallProvider using the OpenWeather current
// weather API. The API reports the rainfall volume of the trailing one- or
// three-hour window; the client extrapolates that snapshot to an annual
// figure, which is an approximation, not a true annual aggregate.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an OpenWeather rainfall client.
func NewClient(apiKey string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		metrics: metrics,
		logger:  logger,
	}
}

// AnnualByCoordinates estimates annual rainfall at a coordinate pair.
func (c *Client) AnnualByCoordinates(ctx context.Context, lat, lon float64) (float64, error) {
	params := url.Values{
		"lat":   {formatCoord(lat)},
		"lon":   {formatCoord(lon)},
		"appid": {c.apiKey},
	}
	return c.doRequest(ctx, params, "coordinates")
}

// AnnualByPlace estimates annual rainfall for a named place.
func (c *Client) AnnualByPlace(ctx context.Context, place string) (float64, error) {
	params := url.Values{
		"q":     {place},
		"appid": {c.apiKey},
	}
	return c.doRequest(ctx, params, "place")
}

func (c *Client) doRequest(ctx context.Context, params url.Values, query string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues(query, "error").Inc()
		return 0, fmt.Errorf("%s weather request: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.ProviderRequests.WithLabelValues(query, "error").Inc()
		return 0, fmt.Errorf("openweather API error: status %d: %s", resp.StatusCode, body)
	}

	var weather weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&weather); err != nil {
		c.metrics.ProviderRequests.WithLabelValues(query, "error").Inc()
		return 0, fmt.Errorf("decode response: %w", err)
	}

	hourly := weather.Rain.volume()
	if hourly == 0 {
		c.metrics.ProviderRequests.WithLabelValues(query, "empty").Inc()
		return 0, nil
	}

	annual := annualize(hourly)
	c.metrics.ProviderRequests.WithLabelValues(query, "success").Inc()
	c.logger.Debug("rainfall lookup succeeded", "query", query, "hourly_mm", hourly, "annual_mm", annual)
	return annual, nil
}

// annualize extrapolates an hourly rainfall volume to a full year, rounded to
// two decimals.
func annualize(hourlyMM float64) float64 {
	return math.Round(hourlyMM*24*365*100) / 100
}

// formatCoord renders a coordinate in its shortest decimal form.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// OpenWeather API response types.

type weatherResponse struct {
	Rain rainVolumes `json:"rain"`
}

type rainVolumes struct {
	OneHour   *float64 `json:"1h"`
	ThreeHour *float64 `json:"3h"`
}

// volume selects the reported rainfall: the 1h window when present (even if
// zero), else the 3h window, else zero.
func (r rainVolumes) volume() float64 {
	if r.OneHour != nil {
		return *r.OneHour
	}
	if r.ThreeHour != nil {
		return *r.ThreeHour
	}
	return 0
}
