package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"eye-detector/config"
	"eye-detector/internal/container"
	"eye-detector/internal/infrastructure/vision"
	"eye-detector/pkg/log"
)

const version = "0.1.0"

var (
	cfg    *config.Config
	logger *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:          "eye-detector",
	Short:        "Face and eye detection for camera frames and uploaded images",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger = log.NewLogger(log.Options{
			Level:  cfg.LogLevel,
			Dir:    cfg.LogDir,
			AppEnv: cfg.AppEnv,
		})
		return nil
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// loadContainer загружает каскады и собирает сервисы приложения.
// Модели нужно закрыть после остановки команды.
func loadContainer() (*container.Container, *vision.Models, error) {
	models, err := vision.LoadModels(cfg.FaceCascadePath, cfg.EyeCascadePath)
	if err != nil {
		log.Error(log.Fields{
			"face_model": cfg.FaceCascadePath,
			"eye_model":  cfg.EyeCascadePath,
			"error":      err.Error(),
		}, "Failed to load cascade models")
		return nil, nil, err
	}

	log.Debug(log.Fields{
		"face_model": cfg.FaceCascadePath,
		"eye_model":  cfg.EyeCascadePath,
	}, "Cascade models loaded")

	return container.New(models.Face, models.Eye, vision.NewCodec(), logger), models, nil
}
