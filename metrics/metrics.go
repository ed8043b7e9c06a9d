package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ftl/rds-encoder/rds"
)

// Frame directions
const (
	Sent     = "sent"
	Received = "received"
)

// NewRegistry creates a registry with the default Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Metrics collects the traffic with the encoder. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Frames     *prometheus.CounterVec   // labels: protocol, direction
	Errors     *prometheus.CounterVec   // labels: protocol, kind
	Exchanges  *prometheus.HistogramVec // labels: protocol
	Operations *prometheus.CounterVec   // labels: protocol, operation, result
}

// New registers and returns the encoder metrics.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rds_frames_total",
			Help: "Frames exchanged with the encoder.",
		}, []string{"protocol", "direction"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rds_errors_total",
			Help: "Failed encoder operations by error kind.",
		}, []string{"protocol", "kind"}),
		Exchanges: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rds_exchange_seconds",
			Help:    "Duration of request/reply exchanges.",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"protocol"}),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rds_operations_total",
			Help: "Encoder operations by result.",
		}, []string{"protocol", "operation", "result"}),
	}
	reg.MustRegister(m.Frames, m.Errors, m.Exchanges, m.Operations)
	return m
}

func (m *Metrics) FrameSent(protocol string) {
	if m == nil {
		return
	}
	m.Frames.WithLabelValues(protocol, Sent).Inc()
}

func (m *Metrics) FrameReceived(protocol string) {
	if m == nil {
		return
	}
	m.Frames.WithLabelValues(protocol, Received).Inc()
}

// Error counts the given error by its kind. Nil errors are ignored.
func (m *Metrics) Error(protocol string, err error) {
	if m == nil || err == nil {
		return
	}
	m.Errors.WithLabelValues(protocol, ErrorKind(err)).Inc()
}

func (m *Metrics) ObserveExchange(protocol string, duration time.Duration) {
	if m == nil {
		return
	}
	m.Exchanges.WithLabelValues(protocol).Observe(duration.Seconds())
}

// Operation counts one finished operation.
func (m *Metrics) Operation(protocol string, op rds.Operation, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = ErrorKind(err)
	}
	m.Operations.WithLabelValues(protocol, op.String(), result).Inc()
}

// ErrorKind maps an error to a short label value.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, rds.ErrProtocolViolation):
		return "protocol_violation"
	case errors.Is(err, rds.ErrTimeout):
		return "timeout"
	case errors.Is(err, rds.ErrUnsupported):
		return "unsupported"
	case errors.Is(err, rds.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, rds.ErrIO):
		return "io"
	case errors.Is(err, rds.ErrBusy):
		return "busy"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "other"
	}
}
