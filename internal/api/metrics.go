package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scribe_uploads_total",
		Help: "Chat export uploads received, by endpoint.",
	}, []string{"endpoint"})

	emptyParsesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scribe_empty_parses_total",
		Help: "Uploads that yielded no recognisable messages.",
	})

	analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scribe_analyses_total",
		Help: "AI analyses attempted, by outcome.",
	}, []string{"status"})
)
