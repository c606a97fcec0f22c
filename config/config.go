package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultFaceCascadePath = "haarcascade_frontalface_default.xml"
	DefaultEyeCascadePath  = "haarcascade_eye.xml"
)

type Config struct {
	AppEnv  string
	AppPort string

	LogLevel string
	LogDir   string

	FaceCascadePath string // модель Хаара для лиц
	EyeCascadePath  string // модель Хаара для глаз
	CameraDevice    int    // индекс устройства видеозахвата

	TelegramToken string
	BodyLimitMB   int // лимит тела HTTP-запроса
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		AppPort:         getEnv("APP_PORT", "5000"),
		LogLevel:        getEnv("LOG_LEVEL", "debug"),
		LogDir:          getEnv("LOG_DIR", "./storage/logs"),
		FaceCascadePath: getEnv("FACE_CASCADE_PATH", DefaultFaceCascadePath),
		EyeCascadePath:  getEnv("EYE_CASCADE_PATH", DefaultEyeCascadePath),
		TelegramToken:   os.Getenv("TELEGRAM_TOKEN"),
	}

	var err error
	if cfg.CameraDevice, err = getEnvInt("CAMERA_DEVICE", 0); err != nil {
		return nil, err
	}
	if cfg.BodyLimitMB, err = getEnvInt("BODY_LIMIT_MB", 20); err != nil {
		return nil, err
	}
	if cfg.BodyLimitMB <= 0 {
		return nil, fmt.Errorf("BODY_LIMIT_MB must be positive, got %d", cfg.BodyLimitMB)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
