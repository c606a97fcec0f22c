package container

import (
	"github.com/sirupsen/logrus"

	app "eye-detector/internal/application"
	"eye-detector/internal/domain/port"
)

type Container struct {
	DetectionService *app.DetectionService
	CameraService    *app.CameraService
}

func New(faces, eyes port.Locator, codec port.FrameCodec, log *logrus.Logger) *Container {
	detectionService := app.NewDetectionService(app.Detectors{Face: faces, Eye: eyes}, codec, log)
	cameraService := app.NewCameraService(detectionService, log)

	return &Container{
		DetectionService: detectionService,
		CameraService:    cameraService,
	}
}
