// Package metrics defines the prometheus metric types for an InSim
// actor and provides convenience methods to add accounting around the
// frame read/write loop.
//
// When adding new measurements, these are the values worth tracking:
//   - things coming into or out of the actor: frames, reconnects.
//   - the success or error status of any of the above.
//   - the distribution of anything latency related.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FramesReceived counts frames successfully decoded off the wire,
	// labelled by packet type name.
	//
	// Provides metrics:
	//   insim_frames_received_total
	// Example usage:
	//   metrics.FramesReceived.With(prometheus.Labels{"type": "MSO"}).Inc()
	FramesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insim_frames_received_total",
			Help: "Number of InSim frames received, by packet type.",
		}, []string{"type"})

	// FramesSent counts frames written to the wire, labelled by packet
	// type name.
	FramesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insim_frames_sent_total",
			Help: "Number of InSim frames sent, by packet type.",
		}, []string{"type"})

	// FramesDropped counts frames discarded without delivery to a
	// subscriber, e.g. because the subscriber's channel was full.
	//
	// Provides metrics:
	//   insim_frames_dropped_total
	FramesDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insim_frames_dropped_total",
			Help: "Number of received frames dropped before delivery, by reason.",
		}, []string{"reason"})

	// ErrorCount measures the number of errors encountered, by class.
	//
	// Provides metrics:
	//   insim_error_total
	// Example usage:
	//   metrics.ErrorCount.With(prometheus.Labels{"type": "decode"}).Inc()
	ErrorCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insim_error_total",
			Help: "The total number of errors encountered, by class.",
		}, []string{"type"})

	// ReconnectCount counts reconnect attempts made by the backoff
	// loop, whether or not they succeeded.
	ReconnectCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "insim_reconnect_total",
			Help: "Number of reconnect attempts made.",
		},
	)

	// ConnectLatencyHistogram tracks the time from dial to a completed
	// handshake (Init sent, Version received).
	ConnectLatencyHistogram = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "insim_connect_latency_seconds",
			Help:    "Time from dial to completed handshake.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)

	// Level reports the Client's current connection state as an
	// enumerated gauge: 0 disconnected, 1 connecting, 2 handshaking,
	// 3 connected, 4 disconnecting, 5 backoff delay, 6 shutdown.
	//
	// Provides metrics:
	//   insim_connection_level
	Level = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "insim_connection_level",
			Help: "Current connection state (0=disconnected .. 6=shutdown).",
		},
	)
)

// Collector wraps the package-level vectors with methods scoped to
// one connection actor, so call sites pass a *Collector around
// instead of reaching for the raw CounterVecs directly.
type Collector struct{}

// New returns a Collector bound to the metrics registered above. All
// Collectors share the same underlying series; the type exists to
// give call sites named methods instead of label-keyed map access.
func New() *Collector {
	return &Collector{}
}

func (c *Collector) FrameReceived(packetType string) {
	FramesReceived.With(prometheus.Labels{"type": packetType}).Inc()
}

func (c *Collector) FrameSent(packetType string) {
	FramesSent.With(prometheus.Labels{"type": packetType}).Inc()
}

func (c *Collector) FrameDropped(reason string) {
	FramesDropped.With(prometheus.Labels{"reason": reason}).Inc()
}

func (c *Collector) Error(kind string) {
	ErrorCount.With(prometheus.Labels{"type": kind}).Inc()
}

func (c *Collector) Reconnect() {
	ReconnectCount.Inc()
}

func (c *Collector) ConnectLatency(seconds float64) {
	ConnectLatencyHistogram.Observe(seconds)
}

func (c *Collector) SetLevel(level float64) {
	Level.Set(level)
}
