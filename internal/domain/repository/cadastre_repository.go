package repository

import (
	"context"

	"github.com/cadastre-search-api/internal/domain"
	"github.com/cadastre-search-api/internal/query"
)

// SpatialEngine - пространственный движок хранилища
type SpatialEngine interface {
	// IsValid проверяет топологическую корректность геометрии.
	// Ошибки выполнения движка (неразборчивая геометрия) возвращаются как false без ошибки.
	IsValid(ctx context.Context, geom query.Geometry) (bool, error)
}

// QueryExecutor выполняет собранные запросы
type QueryExecutor interface {
	// Select сканирует все строки запроса в dest (указатель на слайс структур)
	Select(ctx context.Context, dest interface{}, q query.Select) error
}

// Paginator выполняет запрос постранично
type Paginator interface {
	// Paginate сканирует страницу строк в dest и возвращает общее количество строк
	Paginate(ctx context.Context, dest interface{}, q query.Select, page domain.PageRequest) (int64, error)
}

// HealthChecker проверяет доступность хранилища
type HealthChecker interface {
	Health(ctx context.Context) error
}
