package query

import (
	"strconv"
	"strings"
)

// Join - LEFT JOIN к родительской таблице
type Join struct {
	Table string
	On    string
}

// Select - описание запроса: проекция, соединения, предикаты, порядок, страница
type Select struct {
	// Label - метка запроса для логов и метрик
	Label   string
	Columns []string
	From    string
	Joins   []Join
	Where   Predicate
	OrderBy []string
	Limit   int
	Offset  int
}

// SQL рендерит запрос целиком
func (s Select) SQL() (string, []interface{}) {
	var a Args
	var b strings.Builder

	b.WriteString("SELECT ")
	b.WriteString(strings.Join(s.Columns, ", "))
	s.writeBody(&b, &a)

	if len(s.OrderBy) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(s.OrderBy, ", "))
	}
	if s.Limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(a.Bind(s.Limit))
	}
	if s.Offset > 0 {
		b.WriteString(" OFFSET ")
		b.WriteString(a.Bind(s.Offset))
	}

	return b.String(), a.Values()
}

// CountSQL рендерит подсчет строк без проекции, порядка и страницы
func (s Select) CountSQL() (string, []interface{}) {
	var a Args
	var b strings.Builder

	b.WriteString("SELECT count(*)")
	s.writeBody(&b, &a)

	return b.String(), a.Values()
}

// Page возвращает копию запроса с LIMIT/OFFSET
func (s Select) Page(limit, offset int) Select {
	s.Limit = limit
	s.Offset = offset
	return s
}

func (s Select) writeBody(b *strings.Builder, a *Args) {
	b.WriteString(" FROM ")
	b.WriteString(s.From)
	for _, j := range s.Joins {
		b.WriteString(" LEFT JOIN ")
		b.WriteString(j.Table)
		b.WriteString(" ON ")
		b.WriteString(j.On)
	}
	if s.Where != nil {
		b.WriteString(" WHERE ")
		b.WriteString(s.Where.render(a))
	}
}

// Asc - элемент ORDER BY по возрастанию
func Asc(expr string) string { return expr + " ASC" }

// Desc - элемент ORDER BY по убыванию
func Desc(expr string) string { return expr + " DESC" }

// Lower - выражение для регистронезависимой сортировки
func Lower(c Column) string { return "lower(" + string(c) + ")" }

// NaturalKey - числовой префикс строкового значения: "101A" -> 101, "A" -> 0
func NaturalKey(c Column) string {
	return "COALESCE(substring(" + string(c) + " FROM '^[0-9]+')::numeric, 0)"
}

// Literal рендерит целое число в текст запроса (только для доверенных значений)
func Literal(n int) string { return strconv.Itoa(n) }
