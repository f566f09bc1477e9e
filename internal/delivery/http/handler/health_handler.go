package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cadastre-search-api/internal/domain/repository"
	"github.com/cadastre-search-api/internal/pkg/errors"
	"github.com/cadastre-search-api/internal/pkg/utils"
	"github.com/cadastre-search-api/internal/usecase/dto"
)

// HealthHandler - проверка доступности сервиса и PostGIS
type HealthHandler struct {
	checker repository.HealthChecker
	logger  *zap.Logger
}

// NewHealthHandler - создание нового HealthHandler
func NewHealthHandler(checker repository.HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		logger:  logger,
	}
}

// Health godoc
// @Summary Состояние сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.HealthResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	if err := h.checker.Health(ctx); err != nil {
		h.logger.Warn("Health check failed", zap.Error(err))
		return utils.SendError(c, errors.ErrServiceUnavailable)
	}

	return utils.SendSuccess(c, dto.HealthResponse{
		Status:   "healthy",
		Database: "ok",
	}, nil)
}
