package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	httpapi "eye-detector/internal/api/http"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve POST /detect over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, models, err := loadContainer()
		if err != nil {
			return err
		}
		defer models.Close()

		server, err := httpapi.NewServer(
			httpapi.WithFiber(httpapi.NewFiber(cfg.BodyLimitMB)),
			httpapi.WithLogger(logger),
			httpapi.WithHandler(httpapi.NewDetectionHandler(logger, httpapi.NewValidator(), c.DetectionService)),
		)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Run(cfg.AppPort)
		}()

		select {
		case err := <-errCh:
			return err
		case <-cmd.Context().Done():
		}

		logger.Info("Shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
