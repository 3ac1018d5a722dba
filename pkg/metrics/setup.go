package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Logger defines the interface for logging operations within the metrics
// package.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=metrics
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Metrics holds the registry the LD lookup instruments register on and
// the HTTP server exposing them for scraping.
type Metrics struct {
	Server   *http.Server
	Registry *prometheus.Registry

	// Namespace prefixes every instrument registered by this package.
	Namespace string

	// registerer is the Registry wrapped with the service label; all
	// package instruments register through it.
	registerer prometheus.Registerer
}

// NewMetrics sets up an isolated registry labelled with the service
// name, optionally the default runtime collectors, and the scrape
// server. Service name and namespace default to "ldlink".
func NewMetrics(cfg Config) *Metrics {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "ldlink"
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "ldlink"
	}

	registry := prometheus.NewRegistry()

	// Every metric carries service="<name>" so several plugins scraped
	// by the same Prometheus stay distinguishable.
	wrappedRegistry := prometheus.WrapRegistererWith(prometheus.Labels{"service": serviceName}, registry)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	server := &http.Server{
		Addr:    cfg.Address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	return &Metrics{
		Server:     server,
		Registry:   registry,
		Namespace:  namespace,
		registerer: wrappedRegistry,
	}
}
