package schipperke

/*------------------------------------------------------------------
 *
 * Purpose:	Receive-path counters, exported in Prometheus format
 *		when a metrics listen address is configured.
 *
 *----------------------------------------------------------------*/

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	metric_buffers = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schipperke_buffers_processed_total",
		Help: "Sample buffers read from the source and swept.",
	})

	metric_frames = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schipperke_frames_decoded_total",
			Help: "Frames that passed the FCS check, by AIS channel.",
		},
		[]string{"channel"},
	)

	metric_crc_errors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schipperke_crc_errors_total",
		Help: "Located frames discarded for a bad FCS.",
	})

	metric_sync_failures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schipperke_sync_failures_total",
		Help: "Carrier bursts with no HDLC synchronisation.",
	})

	metric_unknown = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schipperke_unknown_messages_total",
		Help: "Valid frames with a message ID we do not decode.",
	})
)

// metrics_serve registers the counters and serves /metrics on addr.
// Call at most once.

func metrics_serve(addr string) {
	prometheus.MustRegister(metric_buffers)
	prometheus.MustRegister(metric_frames)
	prometheus.MustRegister(metric_crc_errors)
	prometheus.MustRegister(metric_sync_failures)
	prometheus.MustRegister(metric_unknown)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Error("metrics listener failed", "addr", addr, "err", err)
		}
	}()
}

// MetricsServe is the exported entry used by the CLI.

func MetricsServe(addr string) {
	metrics_serve(addr)
}
