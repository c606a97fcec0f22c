package entity

// CascadeParams параметры прохода каскадного классификатора
type CascadeParams struct {
	ScaleFactor  float64 // во сколько раз уменьшается изображение на каждом уровне пирамиды
	MinNeighbors int     // сколько соседних кандидатов нужно, чтобы область осталась
}

var (
	// CameraFaceParams: поиск лица в потоке с камеры.
	CameraFaceParams = CascadeParams{ScaleFactor: 1.3, MinNeighbors: 5}
	// ServerFaceParams: поиск лица на загруженном изображении.
	ServerFaceParams = CascadeParams{ScaleFactor: 1.1, MinNeighbors: 4}
	// DefaultEyeParams совпадают со значениями OpenCV по умолчанию.
	DefaultEyeParams = CascadeParams{ScaleFactor: 1.1, MinNeighbors: 3}
)

// Variant входная точка, для которой подобраны параметры
type Variant string

const (
	VariantCamera Variant = "camera" // живой поток с камеры
	VariantServer Variant = "server" // HTTP-запрос или фото из бота
)

// Preset набор правил конвейера для конкретной входной точки.
//
// Пороги по числу глаз у вариантов разные намеренно: камера даёт мягкую
// обратную связь (достаточно одного глаза), сервер отвечает на строгий
// вопрос «видны ли оба глаза».
type Preset struct {
	Variant Variant
	Face    CascadeParams
	Eye     CascadeParams
	MinEyes int // минимальное число глаз для статуса «глаза найдены»

	// DrawLabel включает подпись статуса поверх кадра.
	DrawLabel bool
	// DrawEyesBelowThreshold рисует рамки глаз даже если порог не достигнут.
	DrawEyesBelowThreshold bool
}

// CameraPreset правила для камеры: один глаз, подпись на кадре.
func CameraPreset() Preset {
	return Preset{
		Variant:                VariantCamera,
		Face:                   CameraFaceParams,
		Eye:                    DefaultEyeParams,
		MinEyes:                1,
		DrawLabel:              true,
		DrawEyesBelowThreshold: true,
	}
}

// ServerPreset правила для сервера: оба глаза, без подписи.
func ServerPreset() Preset {
	return Preset{
		Variant: VariantServer,
		Face:    ServerFaceParams,
		Eye:     DefaultEyeParams,
		MinEyes: 2,
	}
}

// EyesDetected решает статус по числу найденных глаз
func (p Preset) EyesDetected(eyes int) bool {
	return eyes >= p.MinEyes
}
