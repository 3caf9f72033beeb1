package folio

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// renderMetrics counts page renders by chrome branch.
type renderMetrics struct {
	pages *prometheus.CounterVec
}

func newRenderMetrics(reg *prometheus.Registry) *renderMetrics {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := &renderMetrics{
		pages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "page_renders_total",
			Help:      "Pages rendered, by chrome branch and page kind.",
		}, []string{"branch", "page"}),
	}
	reg.MustRegister(m.pages)
	return m
}

func (m *renderMetrics) observe(isRoot bool, page string) {
	if m == nil {
		return
	}
	branch := "subpage"
	if isRoot {
		branch = "root"
	}
	m.pages.WithLabelValues(branch, page).Inc()
}

func (a *App) metricsMiddleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "folio",
		Registerer: a.registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	})
}

func (a *App) metricsHandler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: a.registry,
	})
}
