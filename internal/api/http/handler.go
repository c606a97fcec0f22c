package httpapi

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	app "eye-detector/internal/application"
	"eye-detector/internal/domain/entity"
	"eye-detector/pkg/dataurl"
	"eye-detector/pkg/log"
)

const responseMediaType = "image/jpeg"

// ImageDetector часть DetectionService, нужная обработчику
type ImageDetector interface {
	DetectImage(ctx context.Context, data []byte, preset entity.Preset) (*app.DetectionOutput, error)
}

type DetectionHandler struct {
	log       *logrus.Logger
	validator *validator.Validate
	detection ImageDetector
	errors    *ErrorHandler
}

func NewDetectionHandler(logger *logrus.Logger, validate *validator.Validate, detection ImageDetector) *DetectionHandler {
	return &DetectionHandler{
		log:       logger,
		validator: validate,
		detection: detection,
		errors:    NewErrorHandler(logger),
	}
}

func (h *DetectionHandler) Start(srv fiber.Router) {
	srv.Post("/detect", h.Detect)
}

// Detect принимает data URL с изображением, ищет лицо и оба глаза и
// возвращает размеченный JPEG.
func (h *DetectionHandler) Detect(ctx *fiber.Ctx) error {
	requestID := GetRequestID(ctx)

	var req DetectRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Debug("Body parser failed")
		return h.errors.Handle(ctx, requestID, ErrInvalidBody, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return h.errors.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	img, err := dataurl.Decode(req.Image)
	if err != nil {
		return h.errors.Handle(ctx, requestID, err, ctx.Path(), "decode_data_url")
	}

	h.log.WithFields(log.Fields{
		"request_id":    requestID,
		"declared_type": img.DeclaredType,
		"detected_type": img.DetectedType,
		"bytes":         len(img.Data),
	}).Debug("Processing detection request")

	out, err := h.detection.DetectImage(ctx.UserContext(), img.Data, entity.ServerPreset())
	if err != nil {
		return h.errors.Handle(ctx, requestID, err, ctx.Path(), "detect_eyes")
	}

	h.log.WithFields(log.Fields{
		"request_id":    requestID,
		"faces":         len(out.Result.Faces),
		"eyes":          len(out.Result.Eyes),
		"eyes_detected": out.Result.EyesDetected,
	}).Info("Detection finished")

	return ctx.Status(fiber.StatusOK).JSON(DetectResponse{
		EyesDetected: out.Result.EyesDetected,
		Image:        dataurl.Encode(responseMediaType, out.Image),
	})
}
