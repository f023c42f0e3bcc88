package broadcast

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listenersGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pointhub_stream_listeners",
		Help: "Number of currently connected stream listeners.",
	})

	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pointhub_broadcast_events_total",
		Help: "Events published to the broadcast hub, by kind.",
	}, []string{"kind"})

	droppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pointhub_broadcast_dropped_listeners_total",
		Help: "Listeners dropped because their delivery buffer was full.",
	})
)
