package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hailamir/academic-report-api/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP
// surface and the generation pipeline.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	reportsTotal    *prometheus.CounterVec
	reportDuration  prometheus.Histogram
	toleranceMisses prometheus.Counter
	pdfFallbacks    prometheus.Counter
	jobFailures     prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors on a private
// registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	reportsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reports_generated_total",
		Help: "Reports generated, labelled by language and citation style",
	}, []string{"language", "style"})

	reportDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "report_generation_duration_seconds",
		Help:    "End-to-end duration of report generation jobs",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})

	toleranceMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_tolerance_misses_total",
		Help: "Reports whose body word count ended outside the tolerance band",
	})

	pdfFallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_pdf_fallbacks_total",
		Help: "Reports delivered without a full PDF rendering",
	})

	jobFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_job_failures_total",
		Help: "Generation jobs that exhausted retries and failed",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, reportsTotal, reportDuration, toleranceMisses, pdfFallbacks, jobFailures, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		reportsTotal:    reportsTotal,
		reportDuration:  reportDuration,
		toleranceMisses: toleranceMisses,
		pdfFallbacks:    pdfFallbacks,
		jobFailures:     jobFailures,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveReportGenerated records one finished generation run.
func (m *MetricsService) ObserveReportGenerated(lang models.Language, style models.CitationStyle, toleranceMet, pdfFallback bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.reportsTotal.WithLabelValues(string(lang), string(style)).Inc()
	m.reportDuration.Observe(duration.Seconds())
	if !toleranceMet {
		m.toleranceMisses.Inc()
	}
	if pdfFallback {
		m.pdfFallbacks.Inc()
	}
}

// ObserveJobFailure records a terminally failed generation job.
func (m *MetricsService) ObserveJobFailure() {
	if m == nil {
		return
	}
	m.jobFailures.Inc()
}
