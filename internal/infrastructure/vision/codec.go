//go:build gocv
// +build gocv

package vision

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"eye-detector/internal/domain/port"
)

// Codec кодирует и декодирует изображения средствами OpenCV
type Codec struct{}

func NewCodec() *Codec {
	return &Codec{}
}

// Decode превращает байты изображения в цветной кадр.
func (Codec) Decode(data []byte) (port.Frame, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, errors.Wrap(err, "decode image")
	}
	if mat.Empty() {
		mat.Close()
		return nil, errors.New("decoded image is empty")
	}
	return newMatFrame(mat), nil
}

// EncodeJPEG сжимает кадр в JPEG.
func (Codec) EncodeJPEG(frame port.Frame) ([]byte, error) {
	f, ok := frame.(*matFrame)
	if !ok {
		return nil, errors.Errorf("unsupported frame type %T", frame)
	}

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, f.mat)
	if err != nil {
		return nil, errors.Wrap(err, "encode jpeg")
	}
	defer buf.Close()

	// Копируем из нативного буфера, он освобождается при выходе.
	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}
