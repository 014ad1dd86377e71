package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "car_rental"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	lifecycleEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rentals",
			Name:      "events_total",
			Help:      "Total number of rental lifecycle events.",
		},
		[]string{"event"},
	)

	bookedRevenue = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rentals",
			Name:      "booked_cost_total",
			Help:      "Sum of the total cost of opened rentals.",
		},
	)

	penaltiesIssued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rentals",
			Name:      "penalties_amount_total",
			Help:      "Sum of penalty amounts issued, by kind.",
		},
		[]string{"kind"},
	)

	carsReleased = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rentals",
			Name:      "cars_released_total",
			Help:      "Number of transitions that returned a car to Available.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		lifecycleEvents,
		bookedRevenue,
		penaltiesIssued,
		carsReleased,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request count and latency per matched route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := strings.ToUpper(c.Request.Method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Dispatcher counts rental lifecycle events and the money they move.
type Dispatcher struct{}

// NewDispatcher returns an event dispatcher backed by the package collectors.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Dispatch(_ context.Context, e domain.RentalEvent) {
	lifecycleEvents.WithLabelValues(e.EventName()).Inc()

	switch ev := e.(type) {
	case domain.RentalCreatedEvent:
		bookedRevenue.Add(ev.Rental.TotalCost.InexactFloat64())
	case domain.RentalCompletedEvent:
		if ev.LateFee.IsPositive() {
			penaltiesIssued.WithLabelValues(string(domain.PenaltyLateReturn)).Add(ev.LateFee.InexactFloat64())
		}
		if ev.CarNowFree {
			carsReleased.Inc()
		}
	case domain.RentalCancelledEvent:
		if ev.CarNowFree {
			carsReleased.Inc()
		}
	case domain.PenaltyAttachedEvent:
		penaltiesIssued.WithLabelValues(string(ev.Penalty.Kind)).Add(ev.Penalty.Amount.InexactFloat64())
	}
}
