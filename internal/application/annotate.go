package app

import (
	"image"
	"image/color"

	"eye-detector/internal/domain/entity"
	"eye-detector/internal/domain/port"
)

const (
	boxThickness   = 2
	labelThickness = 2
)

var (
	faceColor   = color.RGBA{B: 255, A: 255}
	eyeColor    = color.RGBA{G: 255, A: 255}
	okColor     = color.RGBA{G: 255, A: 255}
	failColor   = color.RGBA{R: 255, A: 255}
	labelOrigin = image.Pt(20, 40)
)

// annotate рисует на кадре рамку лица, подпись статуса и рамки глаз.
// Глаза сначала переводятся в координаты кадра, потом рисуются.
func annotate(frame port.Frame, result *entity.DetectionResult, preset entity.Preset) {
	if result.Face == nil {
		return
	}

	frame.DrawBox(*result.Face, faceColor, boxThickness)

	if preset.DrawLabel {
		c := failColor
		if result.EyesDetected {
			c = okColor
		}
		frame.DrawText(result.StatusText(), labelOrigin, c, labelThickness)
	}

	if !result.EyesDetected && !preset.DrawEyesBelowThreshold {
		return
	}
	for _, eye := range result.FrameEyes() {
		frame.DrawBox(eye, eyeColor, boxThickness)
	}
}
