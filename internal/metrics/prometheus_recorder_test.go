package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg, "")
	pr.ObserveParseDuration(150 * time.Microsecond)
	pr.IncParseOutcome(OutcomeComplete)
	pr.IncParseOutcome(OutcomeComplete)
	pr.IncParseOutcome(OutcomePartial)
	pr.IncFailureCategory("unterminated")
	pr.ObserveNodeCount(12)
	pr.ObserveInputBytes(2048)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	byName := map[string]*dto.MetricFamily{}
	names := make([]string, 0, len(mfs))
	for _, mf := range mfs {
		names = append(names, mf.GetName())
		byName[mf.GetName()] = mf
	}
	assert.ElementsMatch(t, []string{
		"markup_parse_duration_seconds",
		"markup_parse_outcomes_total",
		"markup_parse_failures_total",
		"markup_ast_nodes",
		"markup_input_bytes",
	}, names)

	outcomes := byName["markup_parse_outcomes_total"].GetMetric()
	require.Len(t, outcomes, 2)
	for _, m := range outcomes {
		switch m.GetLabel()[0].GetValue() {
		case "complete":
			assert.InDelta(t, 2, m.GetCounter().GetValue(), 0)
		case "partial":
			assert.InDelta(t, 1, m.GetCounter().GetValue(), 0)
		}
	}
	nodes := byName["markup_ast_nodes"].GetMetric()
	require.Len(t, nodes, 1)
	assert.Equal(t, uint64(1), nodes[0].GetHistogram().GetSampleCount())
}

func TestPrometheusRecorderNamespace(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg, "docs")
	pr.IncParseOutcome(OutcomeFailed)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(mfs))
	for _, mf := range mfs {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "docs_parse_outcomes_total")
	assert.NotContains(t, names, "docs_parse_failures_total", "untouched vectors export no series")
}

func TestHTTPHandlerServesRegistry(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg, "")
	pr.IncParseOutcome(OutcomeComplete)

	srv := httptest.NewServer(HTTPHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `markup_parse_outcomes_total{outcome="complete"} 1`)
}
