//go:build gocv
// +build gocv

package vision

import (
	"image"
	"sync"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"eye-detector/internal/domain/entity"
	"eye-detector/internal/domain/port"
)

// CascadeLocator каскадный классификатор Хаара из OpenCV
type CascadeLocator struct {
	// OpenCV не гарантирует реентерабельность detectMultiScale
	mu         sync.Mutex
	classifier gocv.CascadeClassifier
	path       string
}

func newCascadeLocator(path string) (*CascadeLocator, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(path) {
		classifier.Close()
		return nil, errors.New("classifier rejected the file")
	}
	return &CascadeLocator{classifier: classifier, path: path}, nil
}

// Locate ищет объекты на сером кадре. Флаги и ограничения размера:
// значения OpenCV по умолчанию.
func (l *CascadeLocator) Locate(gray port.GrayFrame, params entity.CascadeParams) []entity.BoundingBox {
	g, ok := gray.(*grayFrame)
	if !ok || g.mat.Empty() {
		return nil
	}

	l.mu.Lock()
	rects := l.classifier.DetectMultiScaleWithParams(
		g.mat,
		params.ScaleFactor,
		params.MinNeighbors,
		0,
		image.Point{},
		image.Point{},
	)
	l.mu.Unlock()

	boxes := make([]entity.BoundingBox, 0, len(rects))
	for _, r := range rects {
		boxes = append(boxes, entity.BoxFromRect(r))
	}
	return boxes
}

func (l *CascadeLocator) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.classifier.Close()
}
