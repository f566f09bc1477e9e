// Package filter строит наборы предикатов из групп фильтров поискового запроса.
package filter

import (
	"github.com/cadastre-search-api/internal/domain"
	"github.com/cadastre-search-api/internal/query"
)

// StringPredicates - предикат по строковому полю. Применяется первый заданный
// вариант в порядке exact, starts, contains; остальные игнорируются.
func StringPredicates(column query.Column, f *domain.StringFilter) []query.Predicate {
	if f == nil {
		return nil
	}

	switch {
	case f.Exact != nil:
		return []query.Predicate{query.EqualFold(column, *f.Exact)}
	case f.Starts != nil:
		return []query.Predicate{query.HasPrefixFold(column, *f.Starts)}
	case f.Contains != nil:
		return []query.Predicate{query.ContainsFold(column, *f.Contains)}
	}

	return nil
}

// NumberPredicates - предикаты по числовому полю. Eq применяется один;
// иначе верхняя граница (lt, затем lte) и нижняя граница (gt, затем gte).
func NumberPredicates(column query.Column, f *domain.NumberFilter) []query.Predicate {
	if f == nil {
		return nil
	}

	if f.Eq != nil {
		return []query.Predicate{query.Eq(column, *f.Eq)}
	}

	var preds []query.Predicate
	switch {
	case f.Lt != nil:
		preds = append(preds, query.Lt(column, *f.Lt))
	case f.Lte != nil:
		preds = append(preds, query.Lte(column, *f.Lte))
	}
	switch {
	case f.Gt != nil:
		preds = append(preds, query.Gt(column, *f.Gt))
	case f.Gte != nil:
		preds = append(preds, query.Gte(column, *f.Gte))
	}

	return preds
}

// SetPredicates - принадлежность набору; пустой набор не ограничивает
func SetPredicates(column query.Column, values []int64) []query.Predicate {
	if len(values) == 0 {
		return nil
	}
	return []query.Predicate{query.In(column, values)}
}
