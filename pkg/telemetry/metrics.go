package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lifedash",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests, labelled by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lifedash",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	TasksRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lifedash",
		Subsystem: "priority",
		Name:      "tasks_rejected_total",
		Help:      "Tasks left out of a ranked view because they could not be scored.",
	}, []string{"reason"})

	RemindersSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lifedash",
		Subsystem: "reminder",
		Name:      "sent_total",
		Help:      "Class reminders delivered to Telegram.",
	})

	RemindersFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lifedash",
		Subsystem: "reminder",
		Name:      "failed_total",
		Help:      "Class reminders that could not be delivered.",
	})

	LoginThrottled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lifedash",
		Subsystem: "auth",
		Name:      "login_throttled_total",
		Help:      "Login attempts rejected by the rate limiter.",
	})
)
