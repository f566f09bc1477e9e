package handler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/cadastre-search-api/internal/delivery/http/handler"
	apperrors "github.com/cadastre-search-api/internal/pkg/errors"
)

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Health(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		healthErr  error
		wantStatus int
	}{
		{"healthy", nil, fiber.StatusOK},
		{"database down", errors.New("dial tcp: connection refused"), fiber.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := new(MockHealthChecker)
			checker.On("Health", mock.Anything).Return(tt.healthErr)

			app := fiber.New()
			app.Get("/health", handler.NewHealthHandler(checker, zap.NewNop()).Health)

			status, env := do(t, app, fiber.MethodGet, "/health", "")

			assert.Equal(t, tt.wantStatus, status)
			if tt.healthErr != nil {
				assert.Equal(t, apperrors.ErrServiceUnavailable.Code, env.Error.Code)
			}
		})
	}
}
