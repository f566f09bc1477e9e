package filter

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/cadastre-search-api/internal/domain"
	"github.com/cadastre-search-api/internal/domain/repository"
	"github.com/cadastre-search-api/internal/pkg/metrics"
	"github.com/cadastre-search-api/internal/query"
)

// ErrUnknownFilterMethod - метод геометрического фильтра вне перечня
var ErrUnknownFilterMethod = errors.New("unknown geometry filter method")

const (
	fieldEWKB    = "ewkb"
	fieldEWKT    = "ewkt"
	fieldGeoJSON = "geojson"
)

// GeometryValidator разбирает геометрию фильтра, перепроецирует ее в рабочий
// SRID и проверяет топологическую корректность через пространственный движок.
type GeometryValidator struct {
	engine repository.SpatialEngine
	logger *zap.Logger
}

// NewGeometryValidator - создание нового GeometryValidator
func NewGeometryValidator(engine repository.SpatialEngine, logger *zap.Logger) *GeometryValidator {
	return &GeometryValidator{
		engine: engine,
		logger: logger,
	}
}

// Predicates возвращает по одному предикату на каждую заданную кодировку
func (v *GeometryValidator) Predicates(
	ctx context.Context,
	f *domain.GeometryFilter,
	target query.Column,
) ([]query.Predicate, error) {
	if f == nil {
		return nil, nil
	}

	method, err := spatialMethod(f.Method)
	if err != nil {
		return nil, err
	}

	var preds []query.Predicate

	if f.EWKB != nil {
		raw, decodeErr := hex.DecodeString(*f.EWKB)
		if decodeErr != nil {
			return nil, v.invalid(fieldEWKB, *f.EWKB)
		}
		p, err := v.predicate(ctx, fieldEWKB, *f.EWKB, query.GeomFromEWKB(raw), method, target)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}

	if f.EWKT != nil {
		p, err := v.predicate(ctx, fieldEWKT, *f.EWKT, query.GeomFromEWKT(*f.EWKT), method, target)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}

	if f.GeoJSON != nil {
		// синтаксически битый GeoJSON отсекаем без запроса к движку
		if _, parseErr := geojson.UnmarshalGeometry([]byte(*f.GeoJSON)); parseErr != nil {
			return nil, v.invalid(fieldGeoJSON, *f.GeoJSON)
		}
		p, err := v.predicate(ctx, fieldGeoJSON, *f.GeoJSON, query.GeomFromGeoJSON(*f.GeoJSON), method, target)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}

	return preds, nil
}

func (v *GeometryValidator) predicate(
	ctx context.Context,
	field, raw string,
	parsed query.Geometry,
	method func(a, b query.Geometry) query.Predicate,
	target query.Column,
) (query.Predicate, error) {
	geom := query.Transform(parsed, domain.WorkingSRID)

	valid, err := v.engine.IsValid(ctx, geom)
	if err != nil {
		return nil, fmt.Errorf("check %s geometry validity: %w", field, err)
	}
	if !valid {
		return nil, v.invalid(field, raw)
	}

	return method(geom, target), nil
}

func (v *GeometryValidator) invalid(field, raw string) error {
	metrics.InvalidGeometryTotal.WithLabelValues(field).Inc()
	v.logger.Debug("Invalid filter geometry", zap.String("field", field))
	return &domain.InvalidGeometryError{Field: field, Value: raw}
}

func spatialMethod(m domain.GeometryFilterMethod) (func(a, b query.Geometry) query.Predicate, error) {
	switch m {
	case domain.GeometryMethodIntersects, "":
		return query.Intersects, nil
	case domain.GeometryMethodContains:
		return query.Contains, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilterMethod, m)
	}
}
