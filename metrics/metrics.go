// Package metrics provides Prometheus instrumentation for Accumulator
// and Update operations.
package metrics

import (
	"fmt"

	"github.com/luxfi/metric"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters and gauges recorded by Accumulator and
// Update. A nil *Metrics is valid and every method is a no-op on it,
// so callers that don't want metrics can simply omit one.
type Metrics struct {
	adds             prometheus.Counter
	deletes          prometheus.Counter
	verificationsOK  prometheus.Counter
	verificationsBad prometheus.Counter
	updatesApplied   prometheus.Counter
	accumulatorBits  prometheus.Gauge
}

// New creates a Metrics instance backed by its own private
// prometheus.Registry, then — if gatherer is non-nil — registers that
// registry under namespace inside gatherer via metric.MultiGatherer's
// namespacing. Registering a private registry under a name, rather
// than registering these collectors directly against one shared
// prometheus.Registerer, is what lets more than one Accumulator/Update
// pair coexist in a single process's /metrics endpoint: each gets its
// own namespace instead of colliding on "rsaacc_adds_total" the moment
// a second instance calls New. gatherer may be nil for callers (e.g.
// tests) that only want the counters/gauges without exposing them.
func New(gatherer metric.MultiGatherer, namespace string) (*Metrics, error) {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		adds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rsaacc_adds_total",
			Help: "Number of elements added to the accumulator.",
		}),
		deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rsaacc_deletes_total",
			Help: "Number of elements deleted from the accumulator.",
		}),
		verificationsOK: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "rsaacc_verifications_total",
			Help:        "Number of witness verifications performed.",
			ConstLabels: prometheus.Labels{"result": "ok"},
		}),
		verificationsBad: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "rsaacc_verifications_total",
			Help:        "Number of witness verifications performed.",
			ConstLabels: prometheus.Labels{"result": "fail"},
		}),
		updatesApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rsaacc_updates_applied_total",
			Help: "Number of times an Update aggregate was applied to a witness.",
		}),
		accumulatorBits: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rsaacc_accumulator_bitlen",
			Help: "Bit length of the current accumulation value z.",
		}),
	}
	for _, c := range []prometheus.Collector{
		m.adds, m.deletes, m.verificationsOK, m.verificationsBad,
		m.updatesApplied, m.accumulatorBits,
	} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	if gatherer != nil {
		if err := gatherer.Register(namespace, registry); err != nil {
			return nil, fmt.Errorf("metrics: registering namespace %q: %w", namespace, err)
		}
	}
	return m, nil
}

// ObserveAdd records one Add operation.
func (m *Metrics) ObserveAdd() {
	if m == nil {
		return
	}
	m.adds.Inc()
}

// ObserveDelete records one Delete operation.
func (m *Metrics) ObserveDelete() {
	if m == nil {
		return
	}
	m.deletes.Inc()
}

// ObserveVerify records one Verify call and its outcome.
func (m *Metrics) ObserveVerify(ok bool) {
	if m == nil {
		return
	}
	if ok {
		m.verificationsOK.Inc()
	} else {
		m.verificationsBad.Inc()
	}
}

// ObserveUpdateApplied records one Update.Apply call.
func (m *Metrics) ObserveUpdateApplied() {
	if m == nil {
		return
	}
	m.updatesApplied.Inc()
}

// SetAccumulatorBitLen records the current bit-length of z.
func (m *Metrics) SetAccumulatorBitLen(bits int) {
	if m == nil {
		return
	}
	m.accumulatorBits.Set(float64(bits))
}
