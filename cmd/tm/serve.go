package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/tui"
	httpAdapter "github.com/aretw0/turing/pkg/adapters/http"
	"github.com/aretw0/turing/pkg/harness"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serves the problem catalogue, runs, reports and Prometheus metrics over HTTP.
Reports are kept in Redis when TM_REDIS_ADDR is set, in memory otherwise.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		addr := a.cfg.HTTPAddr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return err
		}

		store, closeStore := a.store()
		defer closeStore()

		h := harness.New(
			harness.WithLogger(a.logger),
			harness.WithMaxSteps(a.cfg.MaxSteps),
			harness.WithWorkers(a.cfg.Workers),
			harness.WithLifecycleHooks(metrics.Hooks()),
		)
		handler := httpAdapter.NewHandler(a.reg, h,
			httpAdapter.WithStore(store),
			httpAdapter.WithGatherer(reg),
			httpAdapter.WithLifecycleHooks(metrics.Hooks()),
			httpAdapter.WithMaxSteps(a.cfg.MaxSteps),
			httpAdapter.WithLogger(a.logger),
		)

		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		if isTerminal(os.Stderr) {
			tui.PrintBanner(os.Stderr, strings.TrimSpace(turing.Version))
		}

		serverErrors := make(chan error, 1)
		go func() {
			a.logger.Info("http server listening", "addr", addr, "problems", len(a.reg.Names()))
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-cmd.Context().Done():
			a.logger.Info("shutting down")
			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				_ = srv.Close()
				return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (default TM_HTTP_ADDR)")
}
