package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"eye-detector/internal/infrastructure/vision"
)

const windowTitle = "Eye Detection"

var cameraCmd = &cobra.Command{
	Use:   "camera",
	Short: "Show the camera feed with face and eye boxes, press q to quit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, models, err := loadContainer()
		if err != nil {
			return err
		}
		defer models.Close()

		camera, err := vision.OpenCamera(cfg.CameraDevice)
		if err != nil {
			return fmt.Errorf("open camera %d: %w", cfg.CameraDevice, err)
		}
		defer camera.Close()

		window, err := vision.NewWindow(windowTitle)
		if err != nil {
			return fmt.Errorf("open window: %w", err)
		}
		defer window.Close()

		logger.WithField("device", cfg.CameraDevice).Info("Camera loop started, press q to quit")
		return c.CameraService.Run(cmd.Context(), camera, window)
	},
}

func init() {
	rootCmd.AddCommand(cameraCmd)
}
