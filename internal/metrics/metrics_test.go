package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSolve(t *testing.T) {
	m := New()
	m.ObserveSolve(OutcomeConverged, 120, time.Millisecond)
	m.ObserveSolve(OutcomeConverged, 8, time.Millisecond)
	m.ObserveSolve(OutcomeNoConvergence, 10000, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.solves.WithLabelValues(OutcomeConverged)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.solves.WithLabelValues(OutcomeNoConvergence)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.solves.WithLabelValues(OutcomeInvalidInput)))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveSolve(OutcomeConverged, 3, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `batchrating_solves_total{outcome="converged"} 1`))
	assert.Contains(t, body, "batchrating_solve_rounds_count 1")
}
