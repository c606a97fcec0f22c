//go:build gocv
// +build gocv

package vision

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"eye-detector/internal/domain/port"
)

const quitKey = 'q'

// Camera источник кадров с устройства видеозахвата
type Camera struct {
	device  int
	capture *gocv.VideoCapture
}

// OpenCamera открывает устройство по индексу.
func OpenCamera(device int) (*Camera, error) {
	capture, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, errors.Wrapf(err, "open capture device %d", device)
	}
	return &Camera{device: device, capture: capture}, nil
}

// Read возвращает новый кадр, владение им переходит к вызывающему.
func (c *Camera) Read() (port.Frame, bool) {
	mat := gocv.NewMat()
	if ok := c.capture.Read(&mat); !ok {
		mat.Close()
		return nil, false
	}
	return newMatFrame(mat), true
}

func (c *Camera) Close() error {
	return c.capture.Close()
}

// Window окно HighGUI для показа кадров
type Window struct {
	window *gocv.Window
}

func NewWindow(title string) (*Window, error) {
	return &Window{window: gocv.NewWindow(title)}, nil
}

func (w *Window) Show(frame port.Frame) {
	f, ok := frame.(*matFrame)
	if !ok {
		return
	}
	w.window.IMShow(f.mat)
}

// QuitRequested ждёт клавишу 1 мс, как и обычный цикл HighGUI.
func (w *Window) QuitRequested() bool {
	return w.window.WaitKey(1)&0xFF == quitKey
}

func (w *Window) Close() error {
	return w.window.Close()
}
