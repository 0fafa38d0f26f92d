package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Field names for metric labels.
const (
	FieldMethod = "method"
	FieldStore  = "store"
)

// Common metrics subsystems.
const (
	subsystemErr = "err"
	subsystemOp  = "op"
)

// BucketsStore are used for Histograms observing database latencies.
var BucketsStore = []float64{
	.0005,
	.001,
	.0025,
	.005,
	.01,
	.025,
	.05,
	.1,
	.25,
	.5,
	1,
}

// Key is the set of metrics every instrumented component reports.
type Key struct {
	ErrCount  *prometheus.CounterVec
	OpCount   *prometheus.CounterVec
	OpLatency *prometheus.HistogramVec
}

// KeyMetrics creates and registers the key metrics for namespace on reg.
func KeyMetrics(reg prometheus.Registerer, namespace string, fieldKeys ...string) (*Key, error) {
	k := &Key{
		ErrCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemErr,
			Name:      "count",
			Help:      fmt.Sprintf("Number of failed %s operations", namespace),
		}, fieldKeys),
		OpCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemOp,
			Name:      "count",
			Help:      fmt.Sprintf("Number of %s operations performed", namespace),
		}, fieldKeys),
		OpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystemOp,
			Name:      "latency_seconds",
			Help:      fmt.Sprintf("Distribution of %s op duration in seconds", namespace),
			Buckets:   BucketsStore,
		}, fieldKeys),
	}
	for _, c := range []prometheus.Collector{k.ErrCount, k.OpCount, k.OpLatency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return k, nil
}
