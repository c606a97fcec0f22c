package httpapi

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	_ "image/png"

	"github.com/stretchr/testify/mock"

	app "eye-detector/internal/application"
	"eye-detector/internal/domain/entity"
	"eye-detector/internal/domain/port"
)

// rasterFrame кадр поверх image.RGBA, чтобы гонять конвейер без OpenCV
type rasterFrame struct {
	img   *image.RGBA
	boxes int
}

func (f *rasterFrame) Width() int  { return f.img.Bounds().Dx() }
func (f *rasterFrame) Height() int { return f.img.Bounds().Dy() }
func (f *rasterFrame) Empty() bool { return f.Width() == 0 || f.Height() == 0 }

func (f *rasterFrame) Grayscale() port.GrayFrame {
	return &rasterGray{width: f.Width(), height: f.Height()}
}

func (f *rasterFrame) DrawBox(box entity.BoundingBox, c color.RGBA, _ int) {
	r := box.Rect()
	draw.Draw(f.img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), image.NewUniform(c), image.Point{}, draw.Src)
	f.boxes++
}

func (f *rasterFrame) DrawText(string, image.Point, color.RGBA, int) {}

func (f *rasterFrame) Close() error { return nil }

type rasterGray struct {
	width, height int
}

func (g *rasterGray) Width() int  { return g.width }
func (g *rasterGray) Height() int { return g.height }

func (g *rasterGray) Crop(box entity.BoundingBox) port.GrayFrame {
	box = box.Clip(g.width, g.height)
	return &rasterGray{width: box.Width, height: box.Height}
}

func (g *rasterGray) Close() error { return nil }

type rasterCodec struct{}

func (rasterCodec) Decode(data []byte) (port.Frame, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return &rasterFrame{img: img}, nil
}

func (rasterCodec) EncodeJPEG(frame port.Frame) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, frame.(*rasterFrame).img, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fixedLocator всегда возвращает одни и те же области
type fixedLocator []entity.BoundingBox

func (l fixedLocator) Locate(port.GrayFrame, entity.CascadeParams) []entity.BoundingBox {
	return append([]entity.BoundingBox(nil), l...)
}

type mockDetector struct {
	mock.Mock
}

func (m *mockDetector) DetectImage(ctx context.Context, data []byte, preset entity.Preset) (*app.DetectionOutput, error) {
	args := m.Called(ctx, data, preset)
	out, _ := args.Get(0).(*app.DetectionOutput)
	return out, args.Error(1)
}
