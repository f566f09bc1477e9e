package dto

import (
	"github.com/cadastre-search-api/internal/domain"
)

// SearchParams - параметры поиска из query string
type SearchParams struct {
	SortBy               string `query:"sort_by"`
	SortOrder            string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
	SRID                 int    `query:"srid" validate:"omitempty,min=1"`
	GeometryOutputFormat string `query:"geometry_output_format" validate:"omitempty,oneof=ewkt ewkb"`
	Page                 int    `query:"page" validate:"omitempty,min=1"`
	Size                 int    `query:"size" validate:"omitempty,min=1"`
}

// SearchBody - тело поискового запроса: группы фильтров объединяются через OR
type SearchBody struct {
	Filters []domain.FilterGroup `json:"filters" validate:"dive"`
}

// GeometryParams - запрошенный вывод геометрии для получения по коду
type GeometryParams struct {
	SRID                 int    `query:"srid" validate:"omitempty,min=1"`
	GeometryOutputFormat string `query:"geometry_output_format" validate:"omitempty,oneof=ewkt ewkb"`
}

// Output возвращает вывод геометрии; без SRID или формата геометрия не запрашивается
func (p GeometryParams) Output() domain.GeometryOutput {
	return domain.GeometryOutput{
		SRID:   p.SRID,
		Format: domain.GeometryOutputFormat(p.GeometryOutputFormat),
	}
}

// OutputOrDefault - то же, но с рабочим SRID и EWKT для незаданных значений
func (p GeometryParams) OutputOrDefault() domain.GeometryOutput {
	return p.Output().OrDefault()
}

// ToSearchRequest собирает доменный запрос; размер страницы уже проверен вызывающим
func (p SearchParams) ToSearchRequest(body SearchBody, defaultSize int) domain.SearchRequest {
	page := p.Page
	if page == 0 {
		page = 1
	}
	size := p.Size
	if size == 0 {
		size = defaultSize
	}

	geometry := GeometryParams{SRID: p.SRID, GeometryOutputFormat: p.GeometryOutputFormat}

	return domain.SearchRequest{
		Filters:   body.Filters,
		SortBy:    domain.SortField(p.SortBy),
		SortOrder: domain.SortOrder(p.SortOrder),
		Output:    geometry.Output(),
		Page:      domain.PageRequest{Page: page, Size: size},
	}
}
