package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pubstock_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pubstock_http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint", "status"},
	)
	remoteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pubstock_remote_failures_total",
			Help: "Failed calls to the product collection, by operation.",
		},
		[]string{"operation"},
	)
	productsTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pubstock_products",
		Help: "Products currently held by the inventory store.",
	})
	lowStockTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pubstock_low_stock_products",
		Help: "Products whose quantity is below their minimum threshold.",
	})
	ordersGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pubstock_supplier_orders_total",
		Help: "Supplier order documents generated.",
	})
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, remoteFailures, productsTotal, lowStockTotal, ordersGenerated)
}

// RecordRequest records metrics for one HTTP request.
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

func RecordRemoteFailure(operation string) {
	remoteFailures.WithLabelValues(operation).Inc()
}

func SetInventory(total, lowStock int) {
	productsTotal.Set(float64(total))
	lowStockTotal.Set(float64(lowStock))
}

func RecordOrderGenerated() {
	ordersGenerated.Inc()
}

// Middleware records every request under its chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		endpoint := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				endpoint = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		RecordRequest(r.Method, endpoint, status, time.Since(start))
	})
}

// classifyStatus maps an HTTP status code to its class.
func classifyStatus(statusCode int) string {
	if statusCode >= 100 && statusCode < 600 {
		return strconv.Itoa(statusCode/100) + "xx"
	}
	return "unknown"
}

// Handler exposes the Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
