package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/cadastre-search-api/internal/domain"
	"github.com/cadastre-search-api/internal/pkg/metrics"
	"github.com/cadastre-search-api/internal/query"
)

// CadastreRepository выполняет собранные запросы к кадастровым таблицам
// и реализует repository.QueryExecutor и repository.Paginator
type CadastreRepository struct {
	db      *sqlx.DB
	logger  *zap.Logger
	timeout time.Duration
}

// NewCadastreRepository создает новый экземпляр CadastreRepository.
// timeout ограничивает каждый запрос; 0 - без ограничения.
func NewCadastreRepository(db *DB, timeout time.Duration) *CadastreRepository {
	return &CadastreRepository{
		db:      db.DB,
		logger:  db.logger,
		timeout: timeout,
	}
}

// Select сканирует все строки запроса в dest
func (r *CadastreRepository) Select(ctx context.Context, dest interface{}, q query.Select) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	stmt, args := q.SQL()
	return r.observe(q.Label, func() error {
		return r.db.SelectContext(ctx, dest, stmt, args...)
	})
}

// Paginate считает строки запроса и сканирует одну страницу в dest.
// При нулевом количестве страница не запрашивается.
func (r *CadastreRepository) Paginate(
	ctx context.Context,
	dest interface{},
	q query.Select,
	page domain.PageRequest,
) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	countStmt, countArgs := q.CountSQL()

	var total int64
	err := r.observe(q.Label+".count", func() error {
		return r.db.GetContext(ctx, &total, countStmt, countArgs...)
	})
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	stmt, args := q.Page(page.Size, page.Offset()).SQL()
	err = r.observe(q.Label, func() error {
		return r.db.SelectContext(ctx, dest, stmt, args...)
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *CadastreRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// observe пишет длительность и ошибки запроса в метрики; label вида "street.search"
func (r *CadastreRepository) observe(label string, run func() error) error {
	entity, operation, _ := strings.Cut(label, ".")

	start := time.Now()
	err := run()
	metrics.QueryDuration.WithLabelValues(entity, operation).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.QueryErrorsTotal.WithLabelValues(entity, operation).Inc()
		r.logger.Error("Query failed",
			zap.String("entity", entity),
			zap.String("operation", operation),
			zap.Error(err),
		)
		return fmt.Errorf("%s: %w", label, err)
	}

	r.logger.Debug("Query executed",
		zap.String("entity", entity),
		zap.String("operation", operation),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}
