package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"eye-detector/internal/api/telegram"
)

var errNoTelegramToken = errors.New("TELEGRAM_TOKEN is required")

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot that marks faces and eyes on photos",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.TelegramToken == "" {
			return errNoTelegramToken
		}

		c, models, err := loadContainer()
		if err != nil {
			return err
		}
		defer models.Close()

		bot, err := telegram.NewBot(cfg.TelegramToken, c.DetectionService, logger)
		if err != nil {
			return fmt.Errorf("failed to create bot: %w", err)
		}

		logger.Info("Bot is running")
		return bot.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
}
