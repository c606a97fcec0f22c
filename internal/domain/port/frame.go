package port

import (
	"image"
	"image/color"

	"eye-detector/internal/domain/entity"
)

// Frame цветной кадр (BGR, 8 бит на канал). Кадром владеет один вызов
// конвейера, после него кадр нужно закрыть.
type Frame interface {
	Width() int
	Height() int

	// Empty сообщает, что в кадре нет пикселей (например, не удалось декодировать)
	Empty() bool

	// Grayscale возвращает одноканальную копию кадра тех же размеров
	Grayscale() GrayFrame

	// DrawBox рисует рамку поверх кадра
	DrawBox(box entity.BoundingBox, c color.RGBA, thickness int)

	// DrawText выводит подпись, origin задаёт левый нижний угол текста
	DrawText(text string, origin image.Point, c color.RGBA, thickness int)

	Close() error
}

// GrayFrame одноканальный кадр для детекторов
type GrayFrame interface {
	Width() int
	Height() int

	// Crop возвращает область кадра. Координаты в результате отсчитываются
	// от левого верхнего угла области.
	Crop(box entity.BoundingBox) GrayFrame

	Close() error
}
