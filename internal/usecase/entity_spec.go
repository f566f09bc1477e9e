package usecase

import (
	"github.com/cadastre-search-api/internal/domain"
	"github.com/cadastre-search-api/internal/pkg/errors"
	"github.com/cadastre-search-api/internal/query"
)

// sortColumn - колонка, на которую отображается поле сортировки
type sortColumn struct {
	column query.Column
	// textual - сортировка без учета регистра
	textual bool
	// natural - сначала по числовому префиксу ("2" раньше "101A")
	natural bool
}

// entitySpec - статическое описание выборки сущности: таблица, соединения,
// проекция, колонка геометрии, ключ поиска и таблица сортировки
type entitySpec struct {
	entity  domain.Entity
	from    string
	joins   []query.Join
	columns func() []string

	geometry       query.Column
	alwaysGeometry bool

	// key - колонка ключа для GetByCode; пустая означает, что поиск по ключу не фильтрует
	key query.Column
	// tiebreak - колонка code для детерминированного порядка; пустая у сущностей без code
	tiebreak query.Column

	sortFields  []domain.SortField
	sortColumns map[domain.SortField]sortColumn
}

// projection возвращает колонки выборки с геометрией или без нее
func (s *entitySpec) projection(out domain.GeometryOutput) ([]string, error) {
	cols := s.columns()

	if s.alwaysGeometry {
		out = out.OrDefault()
	}
	if s.geometry == "" || !out.Requested() {
		return cols, nil
	}

	geom, err := geometryObject(s.geometry, out)
	if err != nil {
		return nil, err
	}
	return append(cols, geom), nil
}

// orderBy разрешает поле сортировки в выражения ORDER BY
func (s *entitySpec) orderBy(field domain.SortField, order domain.SortOrder) ([]string, error) {
	if field == "" {
		field = s.sortFields[0]
	}

	sc, ok := s.sortColumns[field]
	if !ok {
		return nil, errors.ErrUnknownSortField.WithDetails(map[string]interface{}{
			"entity": string(s.entity),
			"field":  string(field),
		})
	}

	dir := query.Asc
	if order == domain.SortDesc {
		dir = query.Desc
	}

	var exprs []string
	switch {
	case sc.natural:
		exprs = append(exprs, dir(query.NaturalKey(sc.column)), dir(query.Lower(sc.column)))
	case sc.textual:
		exprs = append(exprs, dir(query.Lower(sc.column)))
	default:
		exprs = append(exprs, dir(string(sc.column)))
	}

	if s.tiebreak != "" && sc.column != s.tiebreak {
		exprs = append(exprs, query.Asc(string(s.tiebreak)))
	}

	return exprs, nil
}

// supportsSort сообщает, есть ли поле в перечне сортировки сущности
func (s *entitySpec) supportsSort(field domain.SortField) bool {
	_, ok := s.sortColumns[field]
	return ok
}

func sortTable(fields ...sortEntry) ([]domain.SortField, map[domain.SortField]sortColumn) {
	names := make([]domain.SortField, 0, len(fields))
	cols := make(map[domain.SortField]sortColumn, len(fields))
	for _, f := range fields {
		names = append(names, f.field)
		cols[f.field] = f.sortColumn
	}
	return names, cols
}

type sortEntry struct {
	field domain.SortField
	sortColumn
}

func plain(field domain.SortField, col query.Column) sortEntry {
	return sortEntry{field, sortColumn{column: col}}
}

func textual(field domain.SortField, col query.Column) sortEntry {
	return sortEntry{field, sortColumn{column: col, textual: true}}
}

func natural(field domain.SortField, col query.Column) sortEntry {
	return sortEntry{field, sortColumn{column: col, textual: true, natural: true}}
}
