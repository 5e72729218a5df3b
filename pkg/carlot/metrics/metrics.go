package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the ingestion counters exposed at /metrics.
type Registry struct {
	reg          *prometheus.Registry
	CarsIngested prometheus.Counter
	Skipped      prometheus.Counter
	Sellers      prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	ingested := prometheus.NewCounter(prometheus.CounterOpts{Name: "carlot_cars_ingested_total"})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{Name: "carlot_records_skipped_total"})
	sellers := prometheus.NewGauge(prometheus.GaugeOpts{Name: "carlot_sellers"})

	r.MustRegister(ingested, skipped, sellers)
	return &Registry{
		reg:          r,
		CarsIngested: ingested,
		Skipped:      skipped,
		Sellers:      sellers,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
