// Package query описывает SQL запросы к пространственному хранилищу в виде
// дерева предикатов и рендерит их с позиционными аргументами PostgreSQL.
package query

import (
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// Args - накопитель позиционных аргументов ($1, $2, ...)
type Args struct {
	values []interface{}
}

// Bind добавляет значение и возвращает его плейсхолдер
func (a *Args) Bind(v interface{}) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

// Values возвращает накопленные значения
func (a *Args) Values() []interface{} {
	return a.values
}

// Column - квалифицированное имя колонки, например "counties.code"
type Column string

// Predicate - булево выражение WHERE
type Predicate interface {
	render(a *Args) string
}

// Render рендерит предикат отдельно от запроса
func Render(p Predicate) (string, []interface{}) {
	var a Args
	s := p.render(&a)
	return s, a.Values()
}

type literal bool

func (l literal) render(*Args) string {
	if l {
		return "TRUE"
	}
	return "FALSE"
}

type compare struct {
	column Column
	op     string
	value  interface{}
}

func (c compare) render(a *Args) string {
	return string(c.column) + " " + c.op + " " + a.Bind(c.value)
}

// Eq - column = value
func Eq(column Column, value interface{}) Predicate { return compare{column, "=", value} }

// Lt - column < value
func Lt(column Column, value interface{}) Predicate { return compare{column, "<", value} }

// Lte - column <= value
func Lte(column Column, value interface{}) Predicate { return compare{column, "<=", value} }

// Gt - column > value
func Gt(column Column, value interface{}) Predicate { return compare{column, ">", value} }

// Gte - column >= value
func Gte(column Column, value interface{}) Predicate { return compare{column, ">=", value} }

type lowerEq struct {
	column Column
	value  string
}

func (l lowerEq) render(a *Args) string {
	return "lower(" + string(l.column) + ") = " + a.Bind(strings.ToLower(l.value))
}

// EqualFold - регистронезависимое точное совпадение
func EqualFold(column Column, value string) Predicate { return lowerEq{column, value} }

type iLike struct {
	column  Column
	pattern string
}

func (l iLike) render(a *Args) string {
	return string(l.column) + " ILIKE " + a.Bind(l.pattern)
}

// HasPrefixFold - регистронезависимое совпадение по префиксу
func HasPrefixFold(column Column, prefix string) Predicate {
	return iLike{column, escapeLike(prefix) + "%"}
}

// ContainsFold - регистронезависимое вхождение подстроки
func ContainsFold(column Column, substr string) Predicate {
	return iLike{column, "%" + escapeLike(substr) + "%"}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type anyOf struct {
	column Column
	values []int64
}

func (i anyOf) render(a *Args) string {
	return string(i.column) + " = ANY(" + a.Bind(pq.Array(i.values)) + ")"
}

// In - column входит в набор значений
func In(column Column, values []int64) Predicate { return anyOf{column, values} }

type junction struct {
	op    string
	items []Predicate
	empty literal
}

func (j junction) render(a *Args) string {
	switch len(j.items) {
	case 0:
		return j.empty.render(a)
	case 1:
		return j.items[0].render(a)
	}
	parts := make([]string, len(j.items))
	for i, p := range j.items {
		parts[i] = "(" + p.render(a) + ")"
	}
	return strings.Join(parts, " "+j.op+" ")
}

// And объединяет предикаты через AND. Пустой AND истинен.
func And(items ...Predicate) Predicate { return junction{"AND", items, true} }

// Or объединяет предикаты через OR. Пустой OR ложен: запрос без групп фильтров
// не возвращает строк.
func Or(items ...Predicate) Predicate { return junction{"OR", items, false} }
