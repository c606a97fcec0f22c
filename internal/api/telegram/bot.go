package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	app "eye-detector/internal/application"
	"eye-detector/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я бот для поиска глаз на фотографиях.

📸 Отправьте мне фото лица, и я отмечу лицо и глаза на снимке.

📋 Команды:
/help — справка`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото (можно файлом)
2️⃣ Бот найдёт лицо и глаза на нём
3️⃣ Вы получите фото с разметкой и результат проверки

💡 Рекомендации:
• Лицо должно смотреть в камеру
• Снимайте при хорошем освещении
• В кадре должен быть один человек`

	msgSendPhoto       = "📸 Пожалуйста, отправьте фото лица."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю изображение..."
	msgNotAnImage      = "⚠️ Не удалось прочитать изображение. Отправьте фото в формате JPEG или PNG."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте ещё раз позже."

	captionNoFace      = "🙈 Лицо не найдено."
	captionEyes        = "✅ Глаза обнаружены (найдено: %d)."
	captionNoEyes      = "❌ Глаза не обнаружены (найдено: %d)."
	resultFileName     = "result.jpg"
	updateTimeout      = 60
	imageDocumentMedia = "image/"
)

// ImageDetector часть DetectionService, нужная боту
type ImageDetector interface {
	DetectImage(ctx context.Context, data []byte, preset entity.Preset) (*app.DetectionOutput, error)
}

// Bot представляет Telegram-бота. Состояния между сообщениями не хранит:
// каждое фото обрабатывается отдельно.
type Bot struct {
	api       *tgbotapi.BotAPI
	detection ImageDetector
	client    *http.Client
	log       *logrus.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, detection ImageDetector, logger *logrus.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authorize bot: %w", err)
	}

	logger.WithField("account", api.Self.UserName).Info("Authorized on Telegram")

	return &Bot{
		api:       api,
		detection: detection,
		client:    http.DefaultClient,
		log:       logger,
	}, nil
}

// Run обрабатывает обновления, пока не отменят ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeout

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			b.log.Info("Bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}

	fileID, ok := imageFileID(msg)
	if !ok {
		b.sendMessage(msg.Chat.ID, msgSendPhoto)
		return
	}

	b.handlePhoto(ctx, msg.Chat.ID, fileID)
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sendMessage(msg.Chat.ID, msgStart)
	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)
	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

func (b *Bot) handlePhoto(ctx context.Context, chatID int64, fileID string) {
	b.sendMessage(chatID, msgProcessing)

	imageData, err := b.downloadFile(ctx, fileID)
	if err != nil {
		b.log.WithFields(logrus.Fields{
			"chat_id": chatID,
			"error":   err.Error(),
		}).Error("Error downloading photo")
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	out, err := b.detection.DetectImage(ctx, imageData, entity.ServerPreset())
	if err != nil {
		b.log.WithFields(logrus.Fields{
			"chat_id": chatID,
			"bytes":   len(imageData),
			"error":   err.Error(),
		}).Warn("Detection failed")
		b.sendMessage(chatID, failureMessage(err))
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: resultFileName, Bytes: out.Image})
	photo.Caption = caption(out.Result)
	if _, err := b.api.Send(photo); err != nil {
		b.log.WithFields(logrus.Fields{
			"chat_id": chatID,
			"error":   err.Error(),
		}).Error("Error sending photo")
	}
}

// imageFileID выбирает файл из сообщения: самое большое фото или документ
// с картинкой.
func imageFileID(msg *tgbotapi.Message) (string, bool) {
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID, true
	}
	if msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, imageDocumentMedia) {
		return msg.Document.FileID, true
	}
	return "", false
}

func caption(result *entity.DetectionResult) string {
	if !result.HasFace() {
		return captionNoFace
	}
	if result.EyesDetected {
		return fmt.Sprintf(captionEyes, len(result.Eyes))
	}
	return fmt.Sprintf(captionNoEyes, len(result.Eyes))
}

func failureMessage(err error) string {
	if errors.Is(err, app.ErrUndecodableImage) || errors.Is(err, app.ErrEmptyImage) {
		return msgNotAnImage
	}
	return msgProcessingError
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.WithFields(logrus.Fields{
			"chat_id": chatID,
			"error":   err.Error(),
		}).Error("Error sending message")
	}
}
