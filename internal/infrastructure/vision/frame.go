//go:build gocv
// +build gocv

package vision

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"eye-detector/internal/domain/entity"
	"eye-detector/internal/domain/port"
)

// matFrame цветной кадр в формате BGR поверх gocv.Mat
type matFrame struct {
	mat gocv.Mat
}

func newMatFrame(mat gocv.Mat) *matFrame {
	return &matFrame{mat: mat}
}

func (f *matFrame) Width() int  { return f.mat.Cols() }
func (f *matFrame) Height() int { return f.mat.Rows() }
func (f *matFrame) Empty() bool { return f.mat.Empty() }

func (f *matFrame) Grayscale() port.GrayFrame {
	gray := gocv.NewMat()
	gocv.CvtColor(f.mat, &gray, gocv.ColorBGRToGray)
	return &grayFrame{mat: gray}
}

func (f *matFrame) DrawBox(box entity.BoundingBox, c color.RGBA, thickness int) {
	gocv.Rectangle(&f.mat, box.Rect(), c, thickness)
}

func (f *matFrame) DrawText(text string, origin image.Point, c color.RGBA, thickness int) {
	gocv.PutText(&f.mat, text, origin, gocv.FontHersheySimplex, 1, c, thickness)
}

func (f *matFrame) Close() error {
	return f.mat.Close()
}

// grayFrame одноканальный кадр. Области, полученные через Crop, делят
// память с исходным кадром и используются только для чтения.
type grayFrame struct {
	mat gocv.Mat
}

func (g *grayFrame) Width() int  { return g.mat.Cols() }
func (g *grayFrame) Height() int { return g.mat.Rows() }

func (g *grayFrame) Crop(box entity.BoundingBox) port.GrayFrame {
	box = box.Clip(g.Width(), g.Height())
	if box.Empty() {
		return &grayFrame{mat: gocv.NewMat()}
	}
	return &grayFrame{mat: g.mat.Region(box.Rect())}
}

func (g *grayFrame) Close() error {
	return g.mat.Close()
}
