package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/buildwise/buildwise/internal/concrete"
	"github.com/buildwise/buildwise/internal/config"
	"github.com/buildwise/buildwise/internal/estimate"
	"github.com/buildwise/buildwise/internal/logging"
	"github.com/buildwise/buildwise/internal/lumber"
	"github.com/buildwise/buildwise/internal/project"
	"github.com/buildwise/buildwise/internal/server"
	"github.com/buildwise/buildwise/internal/steel"
)

func dashboardCmd() *cobra.Command {
	var (
		host string
		port int
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Serve the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}

			logger, err := logging.New(dev)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer logger.Sync()

			storage, err := project.NewStorage(settings.ProjectDir, logger)
			if err != nil {
				return err
			}

			srv := server.New(
				concrete.NewCalculator(),
				lumber.NewCalculator(),
				steel.NewCalculator(),
				estimate.NewEstimator(settings.MaterialPrices, nil),
				storage,
				logger,
			)

			addr := fmt.Sprintf("%s:%d", host, port)
			logger.Info("listening", zap.String("addr", addr))
			if err := http.ListenAndServe(addr, srv.Router()); err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "bind address")
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP port")
	cmd.Flags().BoolVar(&dev, "dev", false, "console logging at debug level")

	return cmd
}
