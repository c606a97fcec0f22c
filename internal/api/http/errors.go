package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	app "eye-detector/internal/application"
	"eye-detector/pkg/dataurl"
	"eye-detector/pkg/log"
	"eye-detector/pkg/response"
)

const (
	CodeInvalidBody     = "INVALID_BODY"
	CodeInvalidImage    = "INVALID_IMAGE"
	CodeValidationError = "VALIDATION_ERROR"
)

var ErrInvalidBody = response.NewError(http.StatusBadRequest, "request body must be a JSON object with an \"image\" field")

type ErrorHandler struct {
	logger *logrus.Logger
}

func NewErrorHandler(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle превращает ошибку в JSON-ответ. Ошибки клиента отдаются с 400 и
// описанием, всё остальное с 500 и trace id.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	if errors.Is(err, ErrInvalidBody) {
		h.logger.WithFields(fields).Warn("Invalid request body")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: ErrInvalidBody.Error(),
			Code:  CodeInvalidBody,
		})
	}

	if dataurl.IsInvalid(err) ||
		errors.Is(err, app.ErrUndecodableImage) ||
		errors.Is(err, app.ErrEmptyImage) {
		h.logger.WithFields(fields).Warn("Invalid image")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
			Code:  CodeInvalidImage,
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		fields["code"] = respErr.Code
		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(ErrorResponse{
			Error: err.Error(),
			Code:  statusCode(respErr.Code),
		})
	}

	traceID := log.ErrorWithTraceID(fields, "Unexpected error")
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "An unexpected error occurred",
		TraceID: traceID,
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error: "Validation failed: " + err.Error(),
		Code:  CodeValidationError,
	})
}

// fiberErrorHandler отвечает JSON-ом на ошибки самого fiber (404, 405, паника).
func fiberErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	msg := err.Error()
	if code == fiber.StatusInternalServerError {
		msg = "An unexpected error occurred"
	}

	return c.Status(code).JSON(ErrorResponse{
		Error: msg,
		Code:  statusCode(code),
	})
}

// statusCode: 404 -> "NOT_FOUND"
func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
