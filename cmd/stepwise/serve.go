package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/stepwise/internal/cli"
	"github.com/aretw0/stepwise/internal/presentation/tui"
	httpAdapter "github.com/aretw0/stepwise/pkg/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Serves POST /api/run_algorithm and the catalog, health, docs and metrics endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		if dir, _ := cmd.Flags().GetString("static"); dir != "" {
			cfg.Server.StaticDir = dir
		}

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		rt, err := cli.NewRuntime(sc, cfg, logger)
		if err != nil {
			return err
		}
		defer rt.Close()

		opts := []httpAdapter.Option{
			httpAdapter.WithLogger(logger),
			httpAdapter.WithCORSOrigins(cfg.Server.CORSOrigins...),
			httpAdapter.WithStaticDir(cfg.Server.StaticDir),
		}
		if rt.Metrics != nil {
			opts = append(opts, httpAdapter.WithMetrics(rt.Metrics))
		}
		handler, err := httpAdapter.NewHandler(rt.Engine, opts...)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}

		if cli.IsTerminal(os.Stderr) {
			tui.PrintBanner(os.Stderr)
		}

		g, ctx := errgroup.WithContext(sc)
		g.Go(func() error {
			logger.Info("Starting Stepwise Server", "addr", srv.Addr, "static_dir", cfg.Server.StaticDir)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			logger.Info("Start shutdown...", "signal", sc.Signal())

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", cfg.Server.ShutdownTimeout, "error", err)
				return srv.Close()
			}
			logger.Info("Stepwise Server stopped gracefully")
			return nil
		})
		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (default from config, \":5000\")")
	serveCmd.Flags().String("static", "", "Directory of static files served at /")
}
