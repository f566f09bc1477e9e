package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cadastre-search-api/internal/pkg/errors"
	"github.com/cadastre-search-api/internal/pkg/validator"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page,omitempty"`
	Limit int   `json:"limit,omitempty"`
	Pages int   `json:"pages,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendError отправляет AppError с его статусом; ошибки валидации - 400,
// остальные - 500 без деталей
func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	if details := validator.Details(err); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: errors.ErrInvalidRequest.WithDetails(details),
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
