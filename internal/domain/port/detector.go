package port

import "eye-detector/internal/domain/entity"

// Locator интерфейс каскадного детектора (лиц или глаз)
type Locator interface {
	// Locate возвращает найденные области в координатах переданного кадра.
	// Если ничего не найдено, возвращается пустой срез, а не ошибка.
	Locate(gray GrayFrame, params entity.CascadeParams) []entity.BoundingBox
}

// FrameCodec декодирует и кодирует изображения
type FrameCodec interface {
	// Decode превращает байты изображения (JPEG, PNG, ...) в цветной кадр
	Decode(data []byte) (Frame, error)

	// EncodeJPEG сжимает кадр в JPEG
	EncodeJPEG(frame Frame) ([]byte, error)
}
