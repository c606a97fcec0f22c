package entity

import "image"

// BoundingBox описывает прямоугольную область в пиксельных координатах
type BoundingBox struct {
	X      int // координата X левого верхнего угла
	Y      int // координата Y левого верхнего угла
	Width  int // ширина области в пикселях
	Height int // высота области в пикселях
}

// BoxFromRect строит область из image.Rectangle.
func BoxFromRect(r image.Rectangle) BoundingBox {
	r = r.Canon()
	return BoundingBox{
		X:      r.Min.X,
		Y:      r.Min.Y,
		Width:  r.Dx(),
		Height: r.Dy(),
	}
}

// Rect возвращает область в виде image.Rectangle
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Center возвращает координаты центра области
func (b BoundingBox) Center() (x, y int) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Area возвращает площадь области в пикселях
func (b BoundingBox) Area() int {
	return b.Width * b.Height
}

// Empty сообщает, что у области нет площади
func (b BoundingBox) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Translate сдвигает область на (dx, dy). Так координаты глаза внутри
// области лица переводятся в координаты всего кадра.
func (b BoundingBox) Translate(dx, dy int) BoundingBox {
	b.X += dx
	b.Y += dy
	return b
}

// Clip обрезает область по границам изображения width x height.
// Если пересечения нет, возвращается пустая область.
func (b BoundingBox) Clip(width, height int) BoundingBox {
	r := b.Rect().Intersect(image.Rect(0, 0, width, height))
	if r.Empty() {
		return BoundingBox{}
	}
	return BoxFromRect(r)
}

// Within проверяет, что область целиком лежит внутри outer
func (b BoundingBox) Within(outer BoundingBox) bool {
	return b.X >= outer.X &&
		b.Y >= outer.Y &&
		b.X+b.Width <= outer.X+outer.Width &&
		b.Y+b.Height <= outer.Y+outer.Height
}
