package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cadastre-search-api/internal/domain"
	"github.com/cadastre-search-api/internal/pkg/validator"
	"github.com/cadastre-search-api/internal/usecase/dto"
)

func TestSearchParams_ToSearchRequest(t *testing.T) {
	p := dto.SearchParams{SortBy: "name", SortOrder: "desc", SRID: 4326, GeometryOutputFormat: "ewkb"}
	req := p.ToSearchRequest(dto.SearchBody{Filters: []domain.FilterGroup{{}}}, 25)

	assert.Equal(t, domain.SortByName, req.SortBy)
	assert.Equal(t, domain.SortDesc, req.SortOrder)
	assert.Equal(t, domain.GeometryOutput{SRID: 4326, Format: domain.GeometryFormatEWKB}, req.Output)
	assert.Equal(t, domain.PageRequest{Page: 1, Size: 25}, req.Page)
	assert.Len(t, req.Filters, 1)
}

func TestGeometryParams_OutputOrDefault(t *testing.T) {
	assert.Equal(t, domain.DefaultGeometryOutput(), dto.GeometryParams{}.OutputOrDefault())
	assert.Equal(t,
		domain.GeometryOutput{SRID: 4326, Format: domain.GeometryFormatEWKT},
		dto.GeometryParams{SRID: 4326}.OutputOrDefault())
	assert.False(t, dto.GeometryParams{SRID: 4326}.Output().Requested())
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"valid params", &dto.SearchParams{SortOrder: "asc", GeometryOutputFormat: "ewkt", Page: 1, Size: 10}, false},
		{"bad sort order", &dto.SearchParams{SortOrder: "up"}, true},
		{"bad output format", &dto.SearchParams{GeometryOutputFormat: "wkt"}, true},
		{"negative srid", &dto.GeometryParams{SRID: -1}, true},
		{
			"bad geometry method",
			&dto.SearchBody{Filters: []domain.FilterGroup{{Geometry: &domain.GeometryFilter{Method: "touches"}}}},
			true,
		},
		{
			"good geometry method",
			&dto.SearchBody{Filters: []domain.FilterGroup{{Geometry: &domain.GeometryFilter{Method: "contains"}}}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
