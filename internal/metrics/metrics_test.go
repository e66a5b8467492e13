package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordSearchCountsByKindAndOutcome(t *testing.T) {
	foundBefore := testutil.ToFloat64(searchesTotal.WithLabelValues("crossing", "found"))
	missBefore := testutil.ToFloat64(searchesTotal.WithLabelValues("station", "not_found"))

	RecordSearch("crossing", "found", 7, 3*time.Millisecond)
	RecordSearch("crossing", "found", 12, 5*time.Millisecond)
	RecordSearch("station", "not_found", 0, time.Millisecond)

	if got := testutil.ToFloat64(searchesTotal.WithLabelValues("crossing", "found")); got != foundBefore+2 {
		t.Errorf("crossing/found counter = %v, want %v", got, foundBefore+2)
	}
	if got := testutil.ToFloat64(searchesTotal.WithLabelValues("station", "not_found")); got != missBefore+1 {
		t.Errorf("station/not_found counter = %v, want %v", got, missBefore+1)
	}
}

// TestRecordSearchIterationsOnlyOnFound verifies that unsuccessful searches
// never skew the iteration histogram: a not-found sweep performs zero
// refinement and observing its 0 would drag the distribution down.
func TestRecordSearchIterationsOnlyOnFound(t *testing.T) {
	before := testutil.CollectAndCount(refineIterations)

	RecordSearch("station", "not_found", 0, time.Millisecond)
	RecordSearch("station", "error", 0, time.Millisecond)

	if got := testutil.CollectAndCount(refineIterations); got != before {
		t.Errorf("iteration histogram gained series on non-found outcomes: %d -> %d", before, got)
	}

	RecordSearch("station", "found", 4, time.Millisecond)
	if got := testutil.CollectAndCount(refineIterations); got != before+1 {
		t.Errorf("expected one new station series after a found search, got %d -> %d", before, got)
	}
}
