//go:build !gocv
// +build !gocv

package vision

import (
	"eye-detector/internal/domain/entity"
	"eye-detector/internal/domain/port"
)

// CascadeLocator заглушка классификатора (без OpenCV).
type CascadeLocator struct{}

func newCascadeLocator(path string) (*CascadeLocator, error) {
	_ = path
	return nil, ErrBackendDisabled
}

// Locate ничего не находит, если сборка без тега gocv.
func (l *CascadeLocator) Locate(gray port.GrayFrame, params entity.CascadeParams) []entity.BoundingBox {
	_ = gray
	_ = params
	return nil
}

func (l *CascadeLocator) Close() error { return nil }

// Codec заглушка кодека (без OpenCV).
type Codec struct{}

func NewCodec() *Codec {
	return &Codec{}
}

// Decode возвращает ошибку, если сборка без тега gocv.
func (Codec) Decode(data []byte) (port.Frame, error) {
	_ = data
	return nil, ErrBackendDisabled
}

// EncodeJPEG возвращает ошибку, если сборка без тега gocv.
func (Codec) EncodeJPEG(frame port.Frame) ([]byte, error) {
	_ = frame
	return nil, ErrBackendDisabled
}

// Camera заглушка камеры (без OpenCV).
type Camera struct{}

// OpenCamera возвращает ошибку, если сборка без тега gocv.
func OpenCamera(device int) (*Camera, error) {
	_ = device
	return nil, ErrBackendDisabled
}

func (c *Camera) Read() (port.Frame, bool) { return nil, false }
func (c *Camera) Close() error { return nil }

// Window заглушка окна (без OpenCV).
type Window struct{}

// NewWindow возвращает ошибку, если сборка без тега gocv.
func NewWindow(title string) (*Window, error) {
	_ = title
	return nil, ErrBackendDisabled
}

func (w *Window) Show(frame port.Frame) {}
func (w *Window) QuitRequested() bool { return true }
func (w *Window) Close() error { return nil }
