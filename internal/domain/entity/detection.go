package entity

const (
	StatusEyesDetected    = "Eyes Detected"
	StatusEyesNotDetected = "Eyes NOT Detected"
)

// DetectionResult хранит итог обработки одного кадра.
type DetectionResult struct {
	ImageWidth   int           // ширина кадра
	ImageHeight  int           // высота кадра
	Faces        []BoundingBox // все лица в порядке, который вернул детектор
	Face         *BoundingBox  // выбранное лицо (первое), nil если лиц нет
	Eyes         []BoundingBox // глаза в координатах области лица
	EyesDetected bool          // флаг статуса
}

// HasFace сообщает, было ли найдено хотя бы одно лицо
func (r *DetectionResult) HasFace() bool {
	return r.Face != nil
}

// FrameEyes переводит рамки глаз в координаты всего кадра.
func (r *DetectionResult) FrameEyes() []BoundingBox {
	if r.Face == nil || len(r.Eyes) == 0 {
		return nil
	}
	out := make([]BoundingBox, 0, len(r.Eyes))
	for _, eye := range r.Eyes {
		out = append(out, eye.Translate(r.Face.X, r.Face.Y))
	}
	return out
}

// StatusText возвращает подпись статуса для вывода на кадр
func (r *DetectionResult) StatusText() string {
	if r.EyesDetected {
		return StatusEyesDetected
	}
	return StatusEyesNotDetected
}
