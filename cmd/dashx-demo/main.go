package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dashxhq/dashx-go/internal/demo"
	"github.com/dashxhq/dashx-go/pkg/config"
	"github.com/dashxhq/dashx-go/pkg/sdk"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "dashx-demo",
		Short:        "DashX SDK demo server",
		SilenceUsage: true,
	}
	cmd.AddCommand(serveCmd())
	return cmd
}

func serveCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		debug      bool
	)

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo REST API using the default DashX instance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer func() { _ = zap.L().Sync() }()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if debug {
				cfg.Debug = true
			}

			dx := sdk.Default()
			if err := dx.Configure(cfg); err != nil {
				zap.L().Error("invalid DashX configuration", zap.Error(err))
				return err
			}
			defer sdk.ResetInstances()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := &demo.Server{
				Addr:    addr,
				Handler: demo.NewHandler(dx, prometheus.DefaultRegisterer, prometheus.DefaultGatherer),
			}
			return s.Run(ctx)
		},
	}

	c.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file with a top-level 'dashx' key (optional; DASHX_* env vars override)")
	c.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
	c.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	return c
}
