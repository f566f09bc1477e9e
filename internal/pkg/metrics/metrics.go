package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QueryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cadastre_query_duration_seconds",
		Help:    "Spatial store query duration in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"entity", "operation"})
	QueryErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cadastre_query_errors_total",
		Help: "Spatial store query errors",
	}, []string{"entity", "operation"})
	InvalidGeometryTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cadastre_invalid_geometry_total",
		Help: "Rejected filter geometries by input encoding",
	}, []string{"field"})
)

func init() {
	prometheus.MustRegister(QueryDuration)
	prometheus.MustRegister(QueryErrorsTotal)
	prometheus.MustRegister(InvalidGeometryTotal)
}

// Handler - обработчик /metrics для fiber
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
