package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"eye-detector/internal/domain/entity"
	"eye-detector/internal/domain/port"
)

// Detectors загруженные один раз модели. После старта не меняются, поэтому
// их можно разделять между параллельными запросами.
type Detectors struct {
	Face port.Locator
	Eye  port.Locator
}

type DetectionService struct {
	detectors Detectors
	codec     port.FrameCodec
	log       *logrus.Logger
}

// DetectionOutput содержит результат поиска и кадр с разметкой в JPEG.
type DetectionOutput struct {
	Result *entity.DetectionResult
	Image  []byte
}

// NewDetectionService создаёт сервис, который ищет лицо и глаза на кадре.
func NewDetectionService(detectors Detectors, codec port.FrameCodec, log *logrus.Logger) *DetectionService {
	return &DetectionService{
		detectors: detectors,
		codec:     codec,
		log:       log,
	}
}

// Detect прогоняет конвейер над кадром: серый кадр, лицо, глаза внутри лица,
// разметка. Кадр размечается на месте.
func (s *DetectionService) Detect(ctx context.Context, frame port.Frame, preset entity.Preset) (*entity.DetectionResult, error) {
	if s.detectors.Face == nil || s.detectors.Eye == nil {
		return nil, ErrDetectorNotConfigured
	}
	if frame == nil || frame.Empty() {
		return nil, ErrEmptyImage
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &entity.DetectionResult{
		ImageWidth:  frame.Width(),
		ImageHeight: frame.Height(),
	}

	gray := frame.Grayscale()
	defer gray.Close()

	result.Faces = s.detectors.Face.Locate(gray, preset.Face)
	if len(result.Faces) == 0 {
		s.logResult(preset, result)
		return result, nil
	}

	// В кадре предполагается один человек: берём первое лицо в том порядке,
	// в котором его вернул детектор, без сортировки по размеру.
	face := result.Faces[0].Clip(frame.Width(), frame.Height())
	if face.Empty() {
		s.logResult(preset, result)
		return result, nil
	}
	result.Face = &face

	roi := gray.Crop(face)
	defer roi.Close()

	for _, eye := range s.detectors.Eye.Locate(roi, preset.Eye) {
		eye = eye.Clip(face.Width, face.Height)
		if eye.Empty() {
			continue
		}
		result.Eyes = append(result.Eyes, eye)
	}
	result.EyesDetected = preset.EyesDetected(len(result.Eyes))

	annotate(frame, result, preset)
	s.logResult(preset, result)

	return result, nil
}

// DetectImage декодирует изображение, прогоняет конвейер и возвращает
// размеченный кадр в JPEG.
func (s *DetectionService) DetectImage(ctx context.Context, data []byte, preset entity.Preset) (*DetectionOutput, error) {
	if s.codec == nil {
		return nil, ErrCodecNotConfigured
	}

	frame, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodableImage, err)
	}
	defer frame.Close()

	if frame.Empty() {
		return nil, ErrUndecodableImage
	}

	result, err := s.Detect(ctx, frame, preset)
	if err != nil {
		return nil, err
	}

	encoded, err := s.codec.EncodeJPEG(frame)
	if err != nil {
		return nil, fmt.Errorf("encode annotated image: %w", err)
	}

	return &DetectionOutput{Result: result, Image: encoded}, nil
}

func (s *DetectionService) logResult(preset entity.Preset, result *entity.DetectionResult) {
	if s.log == nil {
		return
	}
	s.log.WithFields(logrus.Fields{
		"variant":       preset.Variant,
		"width":         result.ImageWidth,
		"height":        result.ImageHeight,
		"faces":         len(result.Faces),
		"eyes":          len(result.Eyes),
		"eyes_detected": result.EyesDetected,
	}).Debug("Frame processed")
}
