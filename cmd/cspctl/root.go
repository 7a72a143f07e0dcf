package main

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/arcweld/cspsolver/pkg/metrics"
)

var rootCmd = &cobra.Command{
	Use:   "cspctl",
	Short: "Solve, benchmark, and replay constraint satisfaction problems",
}

var (
	metricsEnabled bool
	logger         = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&metricsEnabled, "metrics", false, "export solve metrics to a local Prometheus registry")
}

// newEventPublisher wires the Prometheus adapter when --metrics is set,
// otherwise nil (the solver falls back to its own no-op publisher).
func newEventPublisher() *metrics.PrometheusPublisher {
	if !metricsEnabled {
		return nil
	}
	return metrics.NewPrometheusPublisher(prometheus.DefaultRegisterer, "cspctl")
}
