// Package metrics содержит счётчики Prometheus доменных событий.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "course_portal"

var (
	// Registrations регистрации по результату (ok, duplicate, degraded, error).
	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "User registrations by result.",
	}, []string{"result"})

	// Logins входы по результату.
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Login attempts by result.",
	}, []string{"result"})

	// Payments завершённые платёжные сессии по итоговому состоянию.
	Payments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_total",
		Help:      "Checkouts by final state.",
	}, []string{"state"})

	// Notifications уведомления по виду и результату доставки.
	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Notifications by kind and delivery result.",
	}, []string{"kind", "result"})

	// FallbackUses обращения к локальному хранилищу при недоступной базе.
	FallbackUses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "local_fallback_total",
		Help:      "Operations served by the local fallback store.",
	}, []string{"operation"})
)

// Result метки результата.
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultDegraded = "degraded"
	ResultRejected = "rejected"
	ResultSkipped  = "skipped"
)
