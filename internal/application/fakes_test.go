package app

import (
	"errors"
	"image"
	"image/color"

	"github.com/stretchr/testify/mock"

	"eye-detector/internal/domain/entity"
	"eye-detector/internal/domain/port"
)

type drawCall struct {
	Box       entity.BoundingBox
	Text      string
	Origin    image.Point
	Color     color.RGBA
	Thickness int
}

type fakeFrame struct {
	width, height int
	draws         []drawCall
	grays         []*fakeGray
	closed        bool
}

func newFakeFrame(width, height int) *fakeFrame {
	return &fakeFrame{width: width, height: height}
}

func (f *fakeFrame) Width() int  { return f.width }
func (f *fakeFrame) Height() int { return f.height }
func (f *fakeFrame) Empty() bool { return f.width == 0 || f.height == 0 }

func (f *fakeFrame) Grayscale() port.GrayFrame {
	g := &fakeGray{width: f.width, height: f.height}
	f.grays = append(f.grays, g)
	return g
}

func (f *fakeFrame) DrawBox(box entity.BoundingBox, c color.RGBA, thickness int) {
	f.draws = append(f.draws, drawCall{Box: box, Color: c, Thickness: thickness})
}

func (f *fakeFrame) DrawText(text string, origin image.Point, c color.RGBA, thickness int) {
	f.draws = append(f.draws, drawCall{Text: text, Origin: origin, Color: c, Thickness: thickness})
}

func (f *fakeFrame) Close() error {
	f.closed = true
	return nil
}

func (f *fakeFrame) boxes(c color.RGBA) []entity.BoundingBox {
	var out []entity.BoundingBox
	for _, d := range f.draws {
		if d.Text == "" && d.Color == c {
			out = append(out, d.Box)
		}
	}
	return out
}

func (f *fakeFrame) texts() []drawCall {
	var out []drawCall
	for _, d := range f.draws {
		if d.Text != "" {
			out = append(out, d)
		}
	}
	return out
}

type fakeGray struct {
	width, height int
	origin        image.Point
	crops         []*fakeGray
	closed        bool
}

func (g *fakeGray) Width() int  { return g.width }
func (g *fakeGray) Height() int { return g.height }

func (g *fakeGray) Crop(box entity.BoundingBox) port.GrayFrame {
	c := &fakeGray{
		width:  box.Width,
		height: box.Height,
		origin: g.origin.Add(image.Pt(box.X, box.Y)),
	}
	g.crops = append(g.crops, c)
	return c
}

func (g *fakeGray) Close() error {
	g.closed = true
	return nil
}

type mockLocator struct {
	mock.Mock
}

func (m *mockLocator) Locate(gray port.GrayFrame, params entity.CascadeParams) []entity.BoundingBox {
	args := m.Called(gray, params)
	boxes, _ := args.Get(0).([]entity.BoundingBox)
	return boxes
}

// regionOf матчит серый кадр с нужным размером области
func regionOf(width, height int) interface{} {
	return mock.MatchedBy(func(g port.GrayFrame) bool {
		return g.Width() == width && g.Height() == height
	})
}

type fakeCodec struct {
	frame     *fakeFrame
	decodeErr error
	encodeErr error
	decoded   [][]byte
	encoded   []*fakeFrame
}

func (c *fakeCodec) Decode(data []byte) (port.Frame, error) {
	c.decoded = append(c.decoded, data)
	if c.decodeErr != nil {
		return nil, c.decodeErr
	}
	return c.frame, nil
}

func (c *fakeCodec) EncodeJPEG(frame port.Frame) ([]byte, error) {
	if c.encodeErr != nil {
		return nil, c.encodeErr
	}
	f, ok := frame.(*fakeFrame)
	if !ok {
		return nil, errors.New("unexpected frame type")
	}
	c.encoded = append(c.encoded, f)
	return []byte("jpeg"), nil
}

type fakeSource struct {
	frames []*fakeFrame
	reads  int
}

func (s *fakeSource) Read() (port.Frame, bool) {
	if s.reads >= len(s.frames) {
		return nil, false
	}
	f := s.frames[s.reads]
	s.reads++
	return f, true
}

func (s *fakeSource) Close() error { return nil }

type fakeDisplay struct {
	shown     []port.Frame
	quitAfter int
}

func (d *fakeDisplay) Show(frame port.Frame) {
	d.shown = append(d.shown, frame)
}

func (d *fakeDisplay) QuitRequested() bool {
	return d.quitAfter > 0 && len(d.shown) >= d.quitAfter
}

func (d *fakeDisplay) Close() error { return nil }
