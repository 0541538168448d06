package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/hydranaut/rtrwh-assessment/internal/adapter/http"
	"github.com/hydranaut/rtrwh-assessment/internal/assess"
	"github.com/hydranaut/rtrwh-assessment/internal/observability"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

func newTestServer(readyErr error) *httpadapter.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := assess.New(nil, nil, logger, observability.NewMetricsForTesting())
	return httpadapter.NewServer(":0", svc, &mockReadiness{err: readyErr}, logger)
}

func postAssess(t *testing.T, srv *httpadapter.Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.ServeHTTP(rec, req)
	return rec
}

func TestAssessReturnsFullReport(t *testing.T) {
	srv := newTestServer(nil)
	rec := postAssess(t, srv, `{
		"name": "Green Villa",
		"location": "Pune",
		"dwellers": 5,
		"roof_area": 100,
		"open_space": 50,
		"rainfall_mm": 800
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	want := map[string]any{
		"feasibility":            "Feasible",
		"runoff_capacity":        76000.0,
		"recommended_structure":  "Recharge Trench (medium)",
		"estimated_cost":         70000.0,
		"benefit_ratio":          "Low benefit",
		"depth_to_groundwater_m": 0.0,
		"yearly_demand_liters":   246375.0,
		"coverage_percentage":    30.85,
		"demand_met_status":      "Partial (30.85%)",
		"structure_dimensions":   "1m width × 1.5m depth × 10m length, 6 trench sections",
		"rainfall_used_mm":       800.0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestAssessIsDeterministic(t *testing.T) {
	srv := newTestServer(nil)
	body := `{"dwellers":5,"roof_area":100,"open_space":50,"rainfall_mm":800}`

	first := postAssess(t, srv, body)
	second := postAssess(t, srv, body)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestAssessEmptyObjectUsesDefaults(t *testing.T) {
	srv := newTestServer(nil)
	rec := postAssess(t, srv, `{}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	// No roof or open space: zero potential, not feasible.
	assert.Equal(t, "Not Feasible", got["feasibility"])
	assert.Equal(t, 0.0, got["runoff_capacity"])
	assert.Equal(t, 1000.0, got["rainfall_used_mm"])
	// One dweller by default.
	assert.Equal(t, 49275.0, got["yearly_demand_liters"])
}

func TestAssessUncoercibleRainfallFallsBack(t *testing.T) {
	srv := newTestServer(nil)
	rec := postAssess(t, srv, `{"roof_area":"50","rainfall_mm":"heavy"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 1000.0, got["rainfall_used_mm"])
	assert.Equal(t, 40000.0, got["runoff_capacity"])
}

func TestAssessRejectsMalformedJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"truncated object", `{"dwellers": 5`},
		{"empty body", ``},
		{"json null", `null`},
		{"json array", `[1, 2, 3]`},
		{"bare string", `"assess me"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(nil)
			rec := postAssess(t, srv, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Invalid JSON input", body["error"])
		})
	}
}

func TestAssessRejectsUncoercibleFields(t *testing.T) {
	srv := newTestServer(nil)
	rec := postAssess(t, srv, `{"roof_area": "ten"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "roof_area")
}

func TestAssessRejectsGet(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/assess", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthzReturns200(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	srv := newTestServer(fmt.Errorf("rainfall provider unreachable"))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "rainfall provider unreachable", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
