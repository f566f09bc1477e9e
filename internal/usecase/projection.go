package usecase

import (
	"strings"

	"github.com/cadastre-search-api/internal/domain"
	"github.com/cadastre-search-api/internal/pkg/errors"
	"github.com/cadastre-search-api/internal/query"
)

// jsonObject собирает jsonb_build_object из пар ключ - выражение
func jsonObject(pairs ...string) string {
	var b strings.Builder
	b.WriteString("jsonb_build_object(")
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("'")
		b.WriteString(pairs[i])
		b.WriteString("', ")
		b.WriteString(pairs[i+1])
	}
	b.WriteString(")")
	return b.String()
}

// optional возвращает NULL вместо объекта, если предок не найден соединением
func optional(key query.Column, object string) string {
	return "CASE WHEN " + string(key) + " IS NULL THEN NULL ELSE " + object + " END"
}

func as(expr, alias string) string {
	return expr + " AS " + alias
}

func countyObject() string {
	return jsonObject(
		"code", "counties.code",
		"feature_id", "counties.feature_id",
		"name", "counties.name",
	)
}

func municipalityObject() string {
	return jsonObject(
		"code", "municipalities.code",
		"feature_id", "municipalities.feature_id",
		"name", "municipalities.name",
		"county", optional("counties.code", countyObject()),
	)
}

func flatResidentialAreaObject() string {
	return jsonObject(
		"code", "residential_areas.code",
		"feature_id", "residential_areas.feature_id",
		"name", "residential_areas.name",
	)
}

func residentialAreaObject() string {
	return jsonObject(
		"code", "residential_areas.code",
		"feature_id", "residential_areas.feature_id",
		"name", "residential_areas.name",
		"municipality", optional("municipalities.code", municipalityObject()),
	)
}

func flatStreetObject() string {
	return jsonObject(
		"code", "streets.code",
		"feature_id", "streets.feature_id",
		"name", "streets.name",
		"full_name", "streets.full_name",
	)
}

func addressObject() string {
	return jsonObject(
		"code", "addresses.code",
		"feature_id", "addresses.feature_id",
		"plot_or_building_number", "addresses.plot_or_building_number",
		"building_block_number", "addresses.building_block_number",
		"postal_code", "addresses.postal_code",
		"street", optional("streets.code", flatStreetObject()),
		"residential_area", optional("residential_areas.code", flatResidentialAreaObject()),
		"municipality", optional("municipalities.code", municipalityObject()),
	)
}

func purposeGroupObject() string {
	return jsonObject(
		"group_id", "purpose_groups.group_id",
		"name", "purpose_groups.name",
		"full_name", "purpose_groups.full_name",
	)
}

func purposeObject() string {
	return jsonObject(
		"purpose_id", "purpose_types.purpose_id",
		"purpose_group", optional("purpose_groups.group_id", purposeGroupObject()),
		"name", "purpose_types.name",
		"full_name", "purpose_types.full_name",
		"full_name_en", "purpose_types.full_name_en",
	)
}

func statusObject() string {
	return jsonObject(
		"status_id", "status_types.status_id",
		"name", "status_types.name",
		"name_en", "status_types.name_en",
		"full_name", "status_types.full_name",
		"full_name_en", "status_types.full_name_en",
	)
}

// geometryObject - геометрия в запрошенных SRID и формате: {"srid": ..., "data": ...}
func geometryObject(column query.Column, out domain.GeometryOutput) (string, error) {
	transformed := "ST_Transform(" + string(column) + ", " + query.Literal(out.SRID) + ")"

	var data string
	switch out.Format {
	case domain.GeometryFormatEWKT:
		data = "ST_AsEWKT(" + transformed + ")"
	case domain.GeometryFormatEWKB:
		data = "encode(ST_AsEWKB(" + transformed + "), 'hex')"
	default:
		return "", errors.ErrUnknownOutputFormat.WithDetails(map[string]interface{}{
			"format": string(out.Format),
		})
	}

	return as(jsonObject("srid", query.Literal(out.SRID), "data", data), "geometry"), nil
}
