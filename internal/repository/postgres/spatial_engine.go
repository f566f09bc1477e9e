package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/cadastre-search-api/internal/domain/repository"
	"github.com/cadastre-search-api/internal/query"
)

type spatialEngine struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewSpatialEngine создает проверку геометрий на стороне PostGIS
func NewSpatialEngine(db *DB) repository.SpatialEngine {
	return &spatialEngine{
		db:     db.DB,
		logger: db.logger,
	}
}

// IsValid выполняет ST_IsValid. Ошибка разбора геометрии движком означает
// некорректную геометрию, а не сбой хранилища.
func (e *spatialEngine) IsValid(ctx context.Context, geom query.Geometry) (bool, error) {
	stmt, args := query.ValiditySQL(geom)

	var valid sql.NullBool
	if err := e.db.GetContext(ctx, &valid, stmt, args...); err != nil {
		if isGeometryError(err) {
			e.logger.Debug("Spatial engine rejected geometry", zap.Error(err))
			return false, nil
		}
		e.logger.Error("Failed to check geometry validity", zap.Error(err))
		return false, fmt.Errorf("check geometry validity: %w", err)
	}

	return valid.Valid && valid.Bool, nil
}

// isGeometryError - ошибка выполнения внутри движка: класс 22 (data exception)
// или XX (internal error, так PostGIS сообщает о неразборчивой геометрии)
func isGeometryError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return isGeometryErrorClass(pgErr.Code)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return isGeometryErrorClass(string(pqErr.Code))
	}

	return false
}

func isGeometryErrorClass(code string) bool {
	if len(code) < 2 {
		return false
	}
	switch code[:2] {
	case "22", "XX":
		return true
	}
	return false
}
