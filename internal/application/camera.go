package app

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"eye-detector/internal/domain/entity"
	"eye-detector/internal/domain/port"
)

type CameraService struct {
	detection *DetectionService
	preset    entity.Preset
	log       *logrus.Logger
}

// NewCameraService создаёт цикл обработки потока с камеры.
func NewCameraService(detection *DetectionService, log *logrus.Logger) *CameraService {
	return &CameraService{
		detection: detection,
		preset:    entity.CameraPreset(),
		log:       log,
	}
}

// Run читает кадры, размечает их и показывает в окне. Цикл завершается,
// когда камера перестала отдавать кадры, нажата клавиша выхода или отменён ctx.
// Источник и окно закрывает вызывающий код.
func (s *CameraService) Run(ctx context.Context, source port.FrameSource, display port.Display) error {
	var (
		processed  int
		frameCount int
		lastTick   = time.Now()
	)

	defer func() {
		s.log.WithField("frames", processed).Info("Camera loop stopped")
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}

		frame, ok := source.Read()
		if !ok {
			s.log.Info("Camera returned no frame")
			return nil
		}

		err := s.processFrame(ctx, frame, display)
		frame.Close()
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
		processed++

		frameCount++
		if elapsed := time.Since(lastTick); elapsed >= time.Second {
			s.log.WithField("fps", float64(frameCount)/elapsed.Seconds()).Debug("Camera throughput")
			frameCount = 0
			lastTick = time.Now()
		}

		if display.QuitRequested() {
			s.log.Info("Quit key pressed")
			return nil
		}
	}
}

func (s *CameraService) processFrame(ctx context.Context, frame port.Frame, display port.Display) error {
	if frame.Empty() {
		return nil
	}
	if _, err := s.detection.Detect(ctx, frame, s.preset); err != nil {
		return err
	}
	display.Show(frame)
	return nil
}
