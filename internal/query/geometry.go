package query

import "strconv"

// Geometry - геометрическое выражение на стороне PostGIS
type Geometry interface {
	renderGeometry(a *Args) string
}

func (c Column) renderGeometry(*Args) string { return string(c) }

type geomFunc struct {
	name  string
	value interface{}
	cast  string
}

func (g geomFunc) renderGeometry(a *Args) string {
	return g.name + "(" + a.Bind(g.value) + g.cast + ")"
}

// GeomFromEWKB разбирает EWKB (bytea)
func GeomFromEWKB(b []byte) Geometry { return geomFunc{"ST_GeomFromEWKB", b, ""} }

// GeomFromEWKT разбирает EWKT
func GeomFromEWKT(s string) Geometry { return geomFunc{"ST_GeomFromEWKT", s, ""} }

// GeomFromGeoJSON разбирает GeoJSON; SRID берется из crs, иначе 4326.
// У функции есть перегрузки для text, json и jsonb, поэтому тип задан явно.
func GeomFromGeoJSON(s string) Geometry { return geomFunc{"ST_GeomFromGeoJSON", s, "::text"} }

type transform struct {
	geom Geometry
	srid int
}

func (t transform) renderGeometry(a *Args) string {
	return "ST_Transform(" + t.geom.renderGeometry(a) + ", " + strconv.Itoa(t.srid) + ")"
}

// Transform перепроецирует геометрию в srid
func Transform(g Geometry, srid int) Geometry { return transform{g, srid} }

type spatial struct {
	name string
	a, b Geometry
}

func (s spatial) render(a *Args) string {
	return s.name + "(" + s.a.renderGeometry(a) + ", " + s.b.renderGeometry(a) + ")"
}

// Intersects - геометрии имеют хотя бы одну общую точку
func Intersects(a, b Geometry) Predicate { return spatial{"ST_Intersects", a, b} }

// Contains - b целиком лежит внутри a
func Contains(a, b Geometry) Predicate { return spatial{"ST_Contains", a, b} }

// ValiditySQL возвращает запрос проверки топологической корректности
func ValiditySQL(g Geometry) (string, []interface{}) {
	var a Args
	s := "SELECT ST_IsValid(" + g.renderGeometry(&a) + ")"
	return s, a.Values()
}

// RenderGeometry рендерит геометрическое выражение отдельно
func RenderGeometry(g Geometry) (string, []interface{}) {
	var a Args
	s := g.renderGeometry(&a)
	return s, a.Values()
}
