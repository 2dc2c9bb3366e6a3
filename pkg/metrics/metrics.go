package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "agenda"

// Metrics набор метрик сервиса.
// Все методы безопасны для nil-получателя (метрики выключены).
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	durationResolutions *prometheus.CounterVec
	draftValidations    *prometheus.CounterVec
	authAttempts        *prometheus.CounterVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests by method, route and status",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency by method and route",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		durationResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "availability",
			Name:        "duration_resolutions_total",
			Help:        "Effective duration resolutions by the fallback step that produced them",
			ConstLabels: labels,
		}, []string{"step"}),
		draftValidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "booking",
			Name:        "draft_validations_total",
			Help:        "Booking draft validations by result",
			ConstLabels: labels,
		}, []string{"result"}),
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "auth",
			Name:        "attempts_total",
			Help:        "Credential checks by result",
			ConstLabels: labels,
		}, []string{"result"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.durationResolutions,
		m.draftValidations,
		m.authAttempts,
	)

	return m
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveDurationResolution учитывает шаг, на котором была выбрана длительность
func (m *Metrics) ObserveDurationResolution(step string) {
	if m == nil {
		return
	}
	m.durationResolutions.WithLabelValues(step).Inc()
}

// ObserveDraftValidation учитывает результат проверки черновика бронирования
func (m *Metrics) ObserveDraftValidation(valid bool) {
	if m == nil {
		return
	}
	m.draftValidations.WithLabelValues(resultLabel(valid)).Inc()
}

// ObserveAuthentication учитывает результат проверки учетных данных
func (m *Metrics) ObserveAuthentication(success bool) {
	if m == nil {
		return
	}
	m.authAttempts.WithLabelValues(resultLabel(success)).Inc()
}

func resultLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
