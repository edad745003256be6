package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	blastSearches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edna_blast_searches_total",
			Help: "Total BLAST search requests by database and outcome",
		},
		[]string{"database", "outcome"},
	)

	uploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edna_uploads_total",
			Help: "Total file intake requests by outcome",
		},
		[]string{"outcome"},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(blastSearches, uploads)
	})
}

// RecordBlastSearch records the outcome of a search request.
func RecordBlastSearch(database, outcome string) {
	blastSearches.WithLabelValues(database, outcome).Inc()
}

// RecordUpload records the outcome of a file intake request.
func RecordUpload(outcome string) {
	uploads.WithLabelValues(outcome).Inc()
}
