package httpapi

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const apiPrefix = "/api/v1"

func NewFiber(bodyLimitMB int) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:          "Eye Detector",
			BodyLimit:        bodyLimitMB * 1024 * 1024,
			DisableKeepalive: false,
			StrictRouting:    true,
			CaseSensitive:    true,
			JSONEncoder:      jsoniter.Marshal,
			JSONDecoder:      jsoniter.Unmarshal,
			ErrorHandler:     fiberErrorHandler,
		})

	return app
}

func NewValidator() *validator.Validate {
	return validator.New()
}

type ServerOption func(*Server) error

type Server struct {
	engine   *fiber.App
	log      *logrus.Logger
	handlers []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	server.setupMiddleware()
	server.setupHealthCheck()
	for _, h := range server.handlers {
		h.Start(server.engine)
		h.Start(server.engine.Group(apiPrefix))
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithHandler(h handler) ServerOption {
	return func(s *Server) error {
		if h == nil {
			return fmt.Errorf("handler is nil")
		}
		s.handlers = append(s.handlers, h)
		return nil
	}
}

// App отдаёт fiber-приложение (нужно тестам)
func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run(port string) error {
	s.log.Infof("Listening on :%s", port)
	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.engine.ShutdownWithContext(ctx)
}

func (s *Server) setupMiddleware() {
	s.engine.Use(recover.New())
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
	}))
	s.engine.Use(RequestID())
	s.engine.Use(AccessLog())
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
