package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"ulascansenturk/allergy-forecast/internal/metrics"
)

func TestObserveUpstream(t *testing.T) {
	before := testutil.ToFloat64(metrics.UpstreamRequests("asthma", "current", metrics.OutcomeSuccess))

	metrics.ObserveUpstream("asthma", "current", metrics.OutcomeSuccess, 0.12)
	metrics.ObserveUpstream("asthma", "current", metrics.OutcomeSuccess, 0.08)

	after := testutil.ToFloat64(metrics.UpstreamRequests("asthma", "current", metrics.OutcomeSuccess))
	assert.Equal(t, before+2, after)
}

func TestCacheLookup(t *testing.T) {
	before := testutil.ToFloat64(metrics.CacheLookups(metrics.CacheHit))

	metrics.CacheLookup(metrics.CacheHit)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CacheLookups(metrics.CacheHit)))
}

func TestCoalesced(t *testing.T) {
	before := testutil.ToFloat64(metrics.CoalescedRequests())

	metrics.Coalesced(1)
	assert.Equal(t, before, testutil.ToFloat64(metrics.CoalescedRequests()))

	metrics.Coalesced(4)
	assert.Equal(t, before+3, testutil.ToFloat64(metrics.CoalescedRequests()))
}
