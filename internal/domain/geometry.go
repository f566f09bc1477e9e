package domain

import (
	"encoding/json"
	"fmt"
)

// WorkingSRID - система координат, в которой хранятся все геометрии (LKS-94)
const WorkingSRID = 3346

// GeometryOutputFormat - формат сериализации геометрии в ответе
type GeometryOutputFormat string

const (
	GeometryFormatEWKT GeometryOutputFormat = "ewkt"
	GeometryFormatEWKB GeometryOutputFormat = "ewkb"
)

// GeometryOutput - запрошенный вывод геометрии. Нулевое значение означает "без геометрии".
type GeometryOutput struct {
	SRID   int
	Format GeometryOutputFormat
}

// Requested возвращает true, если заданы и SRID, и формат
func (o GeometryOutput) Requested() bool {
	return o.SRID > 0 && o.Format != ""
}

// DefaultGeometryOutput - вывод по умолчанию для сущностей, которые всегда содержат геометрию
func DefaultGeometryOutput() GeometryOutput {
	return GeometryOutput{SRID: WorkingSRID, Format: GeometryFormatEWKT}
}

// OrDefault дополняет незаданные SRID и формат значениями по умолчанию по отдельности
func (o GeometryOutput) OrDefault() GeometryOutput {
	def := DefaultGeometryOutput()
	if o.SRID > 0 {
		def.SRID = o.SRID
	}
	if o.Format != "" {
		def.Format = o.Format
	}
	return def
}

// Geometry - сериализованная геометрия
type Geometry struct {
	SRID int    `json:"srid"`
	Data string `json:"data"`
}

// Scan читает геометрию из jsonb колонки
func (g *Geometry) Scan(src interface{}) error {
	return scanJSON(src, g)
}

// GeometryFilterMethod - пространственный предикат фильтра
type GeometryFilterMethod string

const (
	GeometryMethodIntersects GeometryFilterMethod = "intersects"
	GeometryMethodContains   GeometryFilterMethod = "contains"
)

// InvalidGeometryError - геометрия фильтра не разобрана или топологически некорректна.
// Field указывает кодировку (ewkb, ewkt, geojson), Value - исходное значение.
type InvalidGeometryError struct {
	Field string
	Value string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry in %s", e.Field)
}

func scanJSON(src interface{}, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported json source type %T", src)
	}
}
