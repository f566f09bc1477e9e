package usecase

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cadastre-search-api/internal/domain"
	"github.com/cadastre-search-api/internal/domain/repository"
	"github.com/cadastre-search-api/internal/filter"
	"github.com/cadastre-search-api/internal/pkg/errors"
	"github.com/cadastre-search-api/internal/query"
)

// DefaultPageSize - размер страницы, если он не задан в запросе
const DefaultPageSize = 50

// Catalog - use case поиска и получения по ключу для одной сущности.
// Не хранит состояния запроса и безопасен для конкурентного использования.
type Catalog[T any] struct {
	spec      *entitySpec
	filter    *filter.EntityFilter
	executor  repository.QueryExecutor
	paginator repository.Paginator
	logger    *zap.Logger
}

func newCatalog[T any](
	spec *entitySpec,
	geometry *filter.GeometryValidator,
	executor repository.QueryExecutor,
	paginator repository.Paginator,
	logger *zap.Logger,
) (*Catalog[T], error) {
	f, err := filter.NewEntityFilter(spec.entity, geometry)
	if err != nil {
		return nil, err
	}

	return &Catalog[T]{
		spec:      spec,
		filter:    f,
		executor:  executor,
		paginator: paginator,
		logger:    logger.With(zap.String("entity", string(spec.entity))),
	}, nil
}

// Entity возвращает сущность каталога
func (c *Catalog[T]) Entity() domain.Entity {
	return c.spec.entity
}

// SortFields - поля сортировки сущности; первое используется по умолчанию
func (c *Catalog[T]) SortFields() []domain.SortField {
	return c.spec.sortFields
}

// SupportsSort сообщает, можно ли сортировать по полю
func (c *Catalog[T]) SupportsSort(field domain.SortField) bool {
	return c.spec.supportsSort(field)
}

// Search - поиск по группам фильтров: группы объединяются через OR,
// предикаты внутри группы - через AND. Без групп строк не возвращается.
func (c *Catalog[T]) Search(ctx context.Context, req domain.SearchRequest) (*domain.Page[T], error) {
	if req.Page.Page < 1 {
		req.Page.Page = 1
	}
	if req.Page.Size < 1 {
		req.Page.Size = DefaultPageSize
	}

	where, err := c.where(ctx, req.Filters)
	if err != nil {
		return nil, err
	}

	columns, err := c.spec.projection(req.Output)
	if err != nil {
		return nil, err
	}

	order, err := c.spec.orderBy(req.SortBy, req.SortOrder)
	if err != nil {
		return nil, err
	}

	q := query.Select{
		Label:   string(c.spec.entity) + ".search",
		Columns: columns,
		From:    c.spec.from,
		Joins:   c.spec.joins,
		Where:   where,
		OrderBy: order,
	}

	var items []T
	total, err := c.paginator.Paginate(ctx, &items, q, req.Page)
	if err != nil {
		c.logger.Error("Failed to search", zap.Error(err))
		return nil, fmt.Errorf("search %s: %w", c.spec.entity, err)
	}

	return domain.NewPage(items, total, req.Page), nil
}

// GetByCode - получение одной записи по ключу.
// У участков ключа нет: возвращается первая строка без фильтрации.
func (c *Catalog[T]) GetByCode(ctx context.Context, code int64, out domain.GeometryOutput) (*T, error) {
	columns, err := c.spec.projection(out)
	if err != nil {
		return nil, err
	}

	q := query.Select{
		Label:   string(c.spec.entity) + ".get",
		Columns: columns,
		From:    c.spec.from,
		Joins:   c.spec.joins,
		Limit:   2,
	}
	if c.spec.key != "" {
		q.Where = query.Eq(c.spec.key, code)
	} else {
		// TODO: фильтровать участки по ключу, когда unique_number станет уникальным в данных
		c.logger.Debug("Lookup by key is not filtered", zap.Int64("code", code))
		q.Limit = 1
	}

	var items []T
	if err := c.executor.Select(ctx, &items, q); err != nil {
		c.logger.Error("Failed to get by code", zap.Int64("code", code), zap.Error(err))
		return nil, fmt.Errorf("get %s %d: %w", c.spec.entity, code, err)
	}

	switch len(items) {
	case 0:
		return nil, errors.ErrNotFound.WithDetails(map[string]interface{}{
			"entity": string(c.spec.entity),
			"code":   code,
		})
	case 1:
		return &items[0], nil
	default:
		c.logger.Error("Code is not unique", zap.Int64("code", code))
		return nil, errors.ErrDuplicateCode.WithDetails(map[string]interface{}{
			"entity": string(c.spec.entity),
			"code":   code,
		})
	}
}

// where собирает OR по группам; группа без предикатов пропускается
func (c *Catalog[T]) where(ctx context.Context, groups []domain.FilterGroup) (query.Predicate, error) {
	clauses := make([]query.Predicate, 0, len(groups))

	for i := range groups {
		preds, err := c.filter.Apply(ctx, &groups[i])
		if err != nil {
			return nil, c.filterError(i, err)
		}
		if len(preds) == 0 {
			continue
		}
		clauses = append(clauses, query.And(preds...))
	}

	return query.Or(clauses...), nil
}

func (c *Catalog[T]) filterError(group int, err error) error {
	var geomErr *domain.InvalidGeometryError
	if stderrors.As(err, &geomErr) {
		return errors.ErrInvalidGeometry.WithDetails(map[string]interface{}{
			"field": geomErr.Field,
			"value": geomErr.Value,
			"group": group,
		})
	}
	if stderrors.Is(err, filter.ErrUnknownFilterMethod) {
		return errors.ErrUnknownFilterMethod.WithDetails(map[string]interface{}{
			"group": group,
		})
	}

	c.logger.Error("Failed to build filter", zap.Int("group", group), zap.Error(err))
	return fmt.Errorf("filter group %d: %w", group, err)
}
