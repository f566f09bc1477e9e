package handler

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cadastre-search-api/internal/config"
	"github.com/cadastre-search-api/internal/domain"
	"github.com/cadastre-search-api/internal/pkg/errors"
	"github.com/cadastre-search-api/internal/pkg/utils"
	"github.com/cadastre-search-api/internal/pkg/validator"
	"github.com/cadastre-search-api/internal/usecase/dto"
)

// Catalog - поиск и получение по коду для одной сущности
type Catalog[T any] interface {
	Search(ctx context.Context, req domain.SearchRequest) (*domain.Page[T], error)
	GetByCode(ctx context.Context, code int64, out domain.GeometryOutput) (*T, error)
	SupportsSort(field domain.SortField) bool
}

// EntityHandler - обработчик поиска и получения по коду для одной сущности
type EntityHandler[T any] struct {
	catalog Catalog[T]
	search  config.SearchConfig
	logger  *zap.Logger
}

// NewEntityHandler - создание нового EntityHandler
func NewEntityHandler[T any](catalog Catalog[T], search config.SearchConfig, logger *zap.Logger) *EntityHandler[T] {
	return &EntityHandler[T]{
		catalog: catalog,
		search:  search,
		logger:  logger,
	}
}

// Search godoc
// @Summary Поиск объектов кадастра
// @Description Группы фильтров объединяются через OR, условия внутри группы - через AND. Пустой список групп не возвращает объектов.
// @Tags Cadastre
// @Accept json
// @Produce json
// @Param entities path string true "Сущность" Enums(counties, municipalities, elderships, residential-areas, streets, addresses, rooms, parcels, purpose-groups, purpose-types, status-types)
// @Param sort_by query string false "Поле сортировки (по умолчанию первое поле сущности)"
// @Param sort_order query string false "Направление сортировки" Enums(asc, desc) default(asc)
// @Param srid query int false "SRID выходной геометрии"
// @Param geometry_output_format query string false "Формат выходной геометрии" Enums(ewkt, ewkb)
// @Param page query int false "Номер страницы" default(1)
// @Param size query int false "Размер страницы" default(50)
// @Param request body dto.SearchBody true "Группы фильтров"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/{entities}/search [post]
func (h *EntityHandler[T]) Search(c *fiber.Ctx) error {
	var params dto.SearchParams
	if err := c.QueryParser(&params); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"query": err.Error(),
		}))
	}

	var body dto.SearchBody
	if err := c.BodyParser(&body); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON body",
		}))
	}

	if err := validator.Validate(&params); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(&body); err != nil {
		return utils.SendError(c, err)
	}

	if params.Size > h.search.MaxPageSize {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"size": "max=" + strconv.Itoa(h.search.MaxPageSize),
		}))
	}
	if params.SortBy != "" && !h.catalog.SupportsSort(domain.SortField(params.SortBy)) {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"sort_by": params.SortBy,
		}))
	}

	req := params.ToSearchRequest(body, h.search.DefaultPageSize)

	page, err := h.catalog.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, page.Items, &utils.Meta{
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Size,
		Pages: page.Pages,
	})
}

// Get godoc
// @Summary Объект кадастра по коду
// @Description Для участков поиск по коду не фильтрует и возвращает первый объект.
// @Tags Cadastre
// @Produce json
// @Param entities path string true "Сущность"
// @Param code path int true "Код объекта"
// @Param srid query int false "SRID выходной геометрии"
// @Param geometry_output_format query string false "Формат выходной геометрии" Enums(ewkt, ewkb)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/{entities}/{code} [get]
func (h *EntityHandler[T]) Get(c *fiber.Ctx) error {
	return h.get(c, false)
}

// GetWithGeometry godoc
// @Summary Граница по коду вместе с геометрией
// @Tags Cadastre
// @Produce json
// @Param entities path string true "Сущность" Enums(counties, municipalities, elderships, residential-areas, streets)
// @Param code path int true "Код объекта"
// @Param srid query int false "SRID выходной геометрии" default(3346)
// @Param geometry_output_format query string false "Формат выходной геометрии" Enums(ewkt, ewkb) default(ewkt)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/{entities}/{code}/geometry [get]
func (h *EntityHandler[T]) GetWithGeometry(c *fiber.Ctx) error {
	return h.get(c, true)
}

func (h *EntityHandler[T]) get(c *fiber.Ctx, withGeometry bool) error {
	code, err := c.ParamsInt("code")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"code": c.Params("code"),
		}))
	}

	var params dto.GeometryParams
	if err := c.QueryParser(&params); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"query": err.Error(),
		}))
	}
	if err := validator.Validate(&params); err != nil {
		return utils.SendError(c, err)
	}

	out := params.Output()
	if withGeometry {
		out = params.OutputOrDefault()
	}

	item, err := h.catalog.GetByCode(c.Context(), int64(code), out)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, item, nil)
}
