package finder

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// =============================================================================
// Prometheus Metrics for the Search
// =============================================================================

var (
	// searchesTotal counts finished searches.
	// Labels: termination (exhausted, round-limit, error)
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "frfinder",
		Subsystem: "finder",
		Name:      "searches_total",
		Help:      "Total finished searches by termination reason",
	}, []string{"termination"})

	// roundsTotal counts committed rounds.
	roundsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "frfinder",
		Subsystem: "finder",
		Name:      "rounds_total",
		Help:      "Total committed merge rounds",
	})

	// candidatesTotal counts evaluated candidate pairs.
	candidatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "frfinder",
		Subsystem: "finder",
		Name:      "candidates_total",
		Help:      "Total candidate pairs merged and evaluated",
	})

	// acceptedTotal counts regions that passed the acceptance filters.
	acceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "frfinder",
		Subsystem: "finder",
		Name:      "accepted_regions_total",
		Help:      "Total regions accepted into results",
	})

	// roundDuration measures evaluation plus commit time per round.
	roundDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "frfinder",
		Subsystem: "finder",
		Name:      "round_duration_seconds",
		Help:      "Wall time of one search round in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
	})

	// liveRegions tracks the live working set of the current search.
	liveRegions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "frfinder",
		Subsystem: "finder",
		Name:      "live_regions",
		Help:      "Live regions in the working set",
	})
)
