package vision

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"eye-detector/internal/domain/port"
)

// ErrBackendDisabled возвращается, если бинарник собран без тега gocv.
var ErrBackendDisabled = errors.New("gocv build tag is not enabled")

var (
	_ port.Locator     = (*CascadeLocator)(nil)
	_ port.FrameCodec  = (*Codec)(nil)
	_ port.FrameSource = (*Camera)(nil)
	_ port.Display     = (*Window)(nil)
)

// Models обе каскадные модели, загруженные один раз при старте.
type Models struct {
	Face port.Locator
	Eye  port.Locator

	closers []io.Closer
}

// LoadModels загружает модели лиц и глаз. Ошибка называет файл, который
// не удалось загрузить.
func LoadModels(facePath, eyePath string) (*Models, error) {
	face, err := loadModel(facePath)
	if err != nil {
		return nil, err
	}

	eye, err := loadModel(eyePath)
	if err != nil {
		face.Close()
		return nil, err
	}

	return &Models{
		Face:    face,
		Eye:     eye,
		closers: []io.Closer{face, eye},
	}, nil
}

// Close освобождает классификаторы
func (m *Models) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	m.closers = nil
	return first
}

func loadModel(path string) (*CascadeLocator, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "load cascade model %q", path)
	}
	locator, err := newCascadeLocator(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load cascade model %q", path)
	}
	return locator, nil
}
