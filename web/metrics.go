package web

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles Prometheus collectors for the storefront pages.
type Metrics struct {
	Registry       *prometheus.Registry
	PageViews      *prometheus.CounterVec
	RenderDuration prometheus.Histogram
	CartActions    *prometheus.CounterVec
	EmptyResults   prometheus.Counter
}

// NewMetrics constructs and registers all metrics on a dedicated registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	pageViews := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_page_views_total",
			Help: "Total page renders by page.",
		},
		[]string{"page"},
	)
	renderDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storefront_render_duration_seconds",
			Help:    "Page render latency.",
			Buckets: prometheus.DefBuckets,
		},
	)
	cartActions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_actions_total",
			Help: "Total cart-affecting actions by type.",
		},
		[]string{"action"},
	)
	emptyResults := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_empty_results_total",
			Help: "Total listing renders where filters excluded every product.",
		},
	)

	registry.MustRegister(pageViews, renderDuration, cartActions, emptyResults)

	return &Metrics{
		Registry:       registry,
		PageViews:      pageViews,
		RenderDuration: renderDuration,
		CartActions:    cartActions,
		EmptyResults:   emptyResults,
	}
}

// IncPageView increments the page view counter.
func (m *Metrics) IncPageView(page string) {
	if m == nil {
		return
	}
	m.PageViews.WithLabelValues(page).Inc()
}

// ObserveRender records a page render duration.
func (m *Metrics) ObserveRender(d time.Duration) {
	if m == nil {
		return
	}
	m.RenderDuration.Observe(d.Seconds())
}

// IncCartAction increments the cart action counter for an action label.
func (m *Metrics) IncCartAction(action string) {
	if m == nil {
		return
	}
	m.CartActions.WithLabelValues(action).Inc()
}

// IncEmptyResult increments the empty result counter.
func (m *Metrics) IncEmptyResult() {
	if m == nil {
		return
	}
	m.EmptyResults.Inc()
}
