package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/cadastre-search-api/internal/config"
	"github.com/cadastre-search-api/internal/delivery/http/handler"
	"github.com/cadastre-search-api/internal/delivery/http/middleware"
	"github.com/cadastre-search-api/internal/domain"
	"github.com/cadastre-search-api/internal/domain/repository"
	apperrors "github.com/cadastre-search-api/internal/pkg/errors"
	"github.com/cadastre-search-api/internal/pkg/metrics"
	"github.com/cadastre-search-api/internal/pkg/utils"
	"github.com/cadastre-search-api/internal/usecase"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	catalogs      *usecase.Catalogs
	healthHandler *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	catalogs *usecase.Catalogs,
	health repository.HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Cadastre Search API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.Search.QueryTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		catalogs:      catalogs,
		healthHandler: handler.NewHealthHandler(health, logger),
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App возвращает приложение fiber
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSAllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", metrics.Handler())

	api := s.app.Group("/api/v1")
	api.Get("/health", s.healthHandler.Health)

	search := s.config.Search
	c := s.catalogs

	// Административные единицы и адреса
	mountBoundary(api, "/counties", handler.NewEntityHandler[domain.County](c.Counties, search, s.logger))
	mountBoundary(api, "/municipalities", handler.NewEntityHandler[domain.Municipality](c.Municipalities, search, s.logger))
	mountBoundary(api, "/elderships", handler.NewEntityHandler[domain.Eldership](c.Elderships, search, s.logger))
	mountBoundary(api, "/residential-areas", handler.NewEntityHandler[domain.ResidentialArea](c.ResidentialAreas, search, s.logger))
	mountBoundary(api, "/streets", handler.NewEntityHandler[domain.Street](c.Streets, search, s.logger))
	mount(api, "/addresses", handler.NewEntityHandler[domain.Address](c.Addresses, search, s.logger))
	mount(api, "/rooms", handler.NewEntityHandler[domain.Room](c.Rooms, search, s.logger))

	// Участки и классификаторы
	mount(api, "/parcels", handler.NewEntityHandler[domain.Parcel](c.Parcels, search, s.logger))
	mount(api, "/purpose-groups", handler.NewEntityHandler[domain.PurposeGroup](c.PurposeGroups, search, s.logger))
	mount(api, "/purpose-types", handler.NewEntityHandler[domain.Purpose](c.PurposeTypes, search, s.logger))
	mount(api, "/status-types", handler.NewEntityHandler[domain.Status](c.StatusTypes, search, s.logger))
}

func mount[T any](r fiber.Router, prefix string, h *handler.EntityHandler[T]) fiber.Router {
	g := r.Group(prefix)
	g.Post("/search", h.Search)
	g.Get("/:code", h.Get)
	return g
}

// mountBoundary добавляет к маршрутам границы отдельный запрос геометрии
func mountBoundary[T any](r fiber.Router, prefix string, h *handler.EntityHandler[T]) {
	g := mount(r, prefix, h)
	g.Get("/:code/geometry", h.GetWithGeometry)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами (404 маршрута, 405, паника)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code == fiber.StatusNotFound {
				return utils.SendError(c, apperrors.ErrNotFound)
			}
			return c.Status(fe.Code).JSON(utils.ErrorResponse{
				Error: apperrors.New("HTTP_ERROR", fe.Message, fe.Code),
			})
		}

		logger.Error("HTTP Error",
			zap.String("request_id", middleware.RequestID(c)),
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return utils.SendError(c, err)
	}
}
