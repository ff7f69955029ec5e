package generator

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/realtransducer/transducer"
)

// Rejection reasons used as the "reason" label.
const (
	ReasonNonContiguous      = "non_contiguous"
	ReasonInvalidField       = "invalid_field"
	ReasonIncomplete         = "incomplete"
	ReasonAmbiguous          = "ambiguous"
	ReasonPrintlessCycle     = "printless_cycle"
	ReasonUnreachable        = "unreachable"
	ReasonInconsistentCircle = "inconsistent_circle"
	ReasonOther              = "other"
)

var reasons = []struct {
	err    error
	reason string
}{
	{transducer.ErrNonContiguousNodeSet, ReasonNonContiguous},
	{transducer.ErrMissingOrInvalidField, ReasonInvalidField},
	{transducer.ErrIncompleteTransition, ReasonIncomplete},
	{transducer.ErrAmbiguousTransition, ReasonAmbiguous},
	{transducer.ErrPrintlessCycle, ReasonPrintlessCycle},
	{transducer.ErrUnreachableState, ReasonUnreachable},
	{transducer.ErrInconsistentCircleBehavior, ReasonInconsistentCircle},
}

// Reason maps a validation error to its metric label.
func Reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}

	return ReasonOther
}

// Metrics counts enumeration outcomes. A nil *Metrics records nothing.
type Metrics struct {
	Candidates prometheus.Counter
	Accepted   prometheus.Counter
	Rejected   *prometheus.CounterVec
}

// NewMetrics creates the generator counters and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rtrans",
			Subsystem: "generator",
			Name:      "candidates_total",
			Help:      "Decorated graphs submitted to validation",
		}),
		Accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rtrans",
			Subsystem: "generator",
			Name:      "accepted_total",
			Help:      "Candidates that validated as real transducers",
		}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rtrans",
			Subsystem: "generator",
			Name:      "rejected_total",
			Help:      "Candidates rejected by validation, by reason",
		}, []string{"reason"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Candidates, m.Accepted, m.Rejected} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("generator: register metrics: %w", err)
		}
	}

	return m, nil
}

// observe records one validation outcome.
func (m *Metrics) observe(err error) {
	if m == nil {
		return
	}
	m.Candidates.Inc()
	if err == nil {
		m.Accepted.Inc()
		return
	}
	m.Rejected.WithLabelValues(Reason(err)).Inc()
}
