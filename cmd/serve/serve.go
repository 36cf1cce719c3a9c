// Package serve handles the HTTP metrics server command
package serve

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"jcarver/finpipe/cmd/root"
	"jcarver/finpipe/internal/api"
	"jcarver/finpipe/internal/logging"
	"jcarver/finpipe/internal/metrics"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the metrics endpoints over HTTP",
	Long: `Start the HTTP server exposing the aggregation endpoints under /metrics.
The server reads the marts tables built by the pipeline command.`,
	RunE: serveFunc,
}

func serveFunc(cmd *cobra.Command, args []string) error {
	tableStore, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := tableStore.Close(); err != nil {
			root.Log.WithError(err).Warn("failed to close store")
		}
	}()

	engine := metrics.NewEngine(tableStore, root.Log)
	server := &http.Server{
		Addr:    root.Cfg.Server.Addr,
		Handler: api.NewServer(engine, root.Log).Handler(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		root.Log.Info("serving metrics", logging.Field{Key: "addr", Value: server.Addr})
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	root.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
