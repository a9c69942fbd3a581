package metrics

import (
	"duplog/internal/global"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sets up HTTP listener configuration for metric scraping on /metrics
func SetupListener(addr string, collector prometheus.Collector) (server *http.Server, err error) {
	registry := prometheus.NewRegistry()
	err = registry.Register(collector)
	if err != nil {
		err = fmt.Errorf("failed to register pipeline collector: %w", err)
		return
	}

	requestMultiplexer := http.NewServeMux()
	requestMultiplexer.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Server configuration
	server = &http.Server{
		Addr:         addr,
		Handler:      requestMultiplexer,
		ReadTimeout:  global.HTTPReadTimeout,
		WriteTimeout: global.HTTPWriteTimeout,
		IdleTimeout:  global.HTTPIdleTimeout,
		ErrorLog:     log.New(httpLogWriter{}, "", 0),
	}
	return
}

// Starts the metric HTTP server and waits for requests
func Start(server *http.Server) {
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "Error: metric server failed: %v\n", err)
	}
}

// Routes HTTP server errors to stderr
type httpLogWriter struct{}

func (httpLogWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	if n == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: metric server: %s\n", strings.TrimSpace(string(p)))
	return
}
