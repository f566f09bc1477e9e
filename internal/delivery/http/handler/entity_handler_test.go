package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cadastre-search-api/internal/config"
	"github.com/cadastre-search-api/internal/delivery/http/handler"
	"github.com/cadastre-search-api/internal/domain"
	apperrors "github.com/cadastre-search-api/internal/pkg/errors"
)

// MockCatalog is a mock implementation of handler.Catalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Search(ctx context.Context, req domain.SearchRequest) (*domain.Page[domain.County], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.County]), args.Error(1)
}

func (m *MockCatalog) GetByCode(ctx context.Context, code int64, out domain.GeometryOutput) (*domain.County, error) {
	args := m.Called(ctx, code, out)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.County), args.Error(1)
}

func (m *MockCatalog) SupportsSort(field domain.SortField) bool {
	return field == domain.SortByCode || field == domain.SortByName
}

var searchConfig = config.SearchConfig{DefaultPageSize: 50, MaxPageSize: 100, QueryTimeout: time.Second}

func setupApp(catalog *MockCatalog) *fiber.App {
	h := handler.NewEntityHandler[domain.County](catalog, searchConfig, zap.NewNop())

	app := fiber.New()
	app.Post("/counties/search", h.Search)
	app.Get("/counties/:code", h.Get)
	app.Get("/counties/:code/geometry", h.GetWithGeometry)
	return app
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]int  `json:"meta"`
	Error struct {
		Code    string                 `json:"code"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func TestEntityHandler_Search(t *testing.T) {
	catalog := new(MockCatalog)
	app := setupApp(catalog)

	name := "vil"
	expected := domain.SearchRequest{
		Filters: []domain.FilterGroup{{
			Counties: &domain.BoundaryFilter{Name: &domain.StringFilter{Contains: &name}},
		}},
		SortBy:    domain.SortByName,
		SortOrder: domain.SortDesc,
		Output:    domain.GeometryOutput{SRID: 4326, Format: domain.GeometryFormatEWKT},
		Page:      domain.PageRequest{Page: 2, Size: 10},
	}
	page := domain.NewPage([]domain.County{{Code: 1, Name: "Vilniaus apskr."}}, 11, expected.Page)
	catalog.On("Search", mock.Anything, expected).Return(page, nil)

	status, env := do(t, app, fiber.MethodPost,
		"/counties/search?sort_by=name&sort_order=desc&srid=4326&geometry_output_format=ewkt&page=2&size=10",
		`{"filters":[{"counties":{"name":{"contains":"vil"}}}]}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 11, env.Meta["total"])
	assert.Equal(t, 2, env.Meta["pages"])

	var items []domain.County
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].Code)
	catalog.AssertExpectations(t)
}

func TestEntityHandler_SearchDefaults(t *testing.T) {
	catalog := new(MockCatalog)
	app := setupApp(catalog)

	catalog.On("Search", mock.Anything, mock.MatchedBy(func(req domain.SearchRequest) bool {
		return req.Page.Page == 1 && req.Page.Size == 50 && len(req.Filters) == 0 && !req.Output.Requested()
	})).Return(domain.NewPage[domain.County](nil, 0, domain.PageRequest{Page: 1, Size: 50}), nil)

	status, env := do(t, app, fiber.MethodPost, "/counties/search", `{"filters":[]}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, string(env.Data))
	catalog.AssertExpectations(t)
}

func TestEntityHandler_SearchRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{"malformed body", "/counties/search", `{"filters":`},
		{"unknown sort field", "/counties/search?sort_by=room_number", `{}`},
		{"bad sort order", "/counties/search?sort_order=up", `{}`},
		{"bad output format", "/counties/search?geometry_output_format=wkt", `{}`},
		{"page size above max", "/counties/search?size=101", `{}`},
		{"zero page", "/counties/search?page=0&size=-1", `{}`},
		{"bad geometry method", "/counties/search", `{"filters":[{"geometry":{"method":"touches"}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := new(MockCatalog)
			app := setupApp(catalog)

			status, env := do(t, app, fiber.MethodPost, tt.target, tt.body)

			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, apperrors.ErrInvalidRequest.Code, env.Error.Code)
			catalog.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		})
	}
}

func TestEntityHandler_SearchInvalidGeometry(t *testing.T) {
	catalog := new(MockCatalog)
	app := setupApp(catalog)

	catalog.On("Search", mock.Anything, mock.Anything).Return(nil,
		apperrors.ErrInvalidGeometry.WithDetails(map[string]interface{}{"field": "ewkt", "group": 0}))

	status, env := do(t, app, fiber.MethodPost, "/counties/search",
		`{"filters":[{"geometry":{"method":"intersects","ewkt":"POLYGON((0 0"}}]}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, apperrors.ErrInvalidGeometry.Code, env.Error.Code)
	assert.Equal(t, "ewkt", env.Error.Details["field"])
}

func TestEntityHandler_SearchStoreFailure(t *testing.T) {
	catalog := new(MockCatalog)
	app := setupApp(catalog)

	catalog.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	status, env := do(t, app, fiber.MethodPost, "/counties/search", `{}`)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, apperrors.ErrInternalServer.Code, env.Error.Code)
}

func TestEntityHandler_Get(t *testing.T) {
	catalog := new(MockCatalog)
	app := setupApp(catalog)

	catalog.On("GetByCode", mock.Anything, int64(1), domain.GeometryOutput{}).
		Return(&domain.County{Code: 1, Name: "Vilniaus apskr."}, nil)

	status, env := do(t, app, fiber.MethodGet, "/counties/1", "")

	assert.Equal(t, fiber.StatusOK, status)
	var county domain.County
	require.NoError(t, json.Unmarshal(env.Data, &county))
	assert.Equal(t, "Vilniaus apskr.", county.Name)
	assert.Nil(t, county.Geometry)
	catalog.AssertExpectations(t)
}

func TestEntityHandler_GetWithGeometry(t *testing.T) {
	catalog := new(MockCatalog)
	app := setupApp(catalog)

	catalog.On("GetByCode", mock.Anything, int64(1),
		domain.GeometryOutput{SRID: 4326, Format: domain.GeometryFormatEWKT}).
		Return(&domain.County{Code: 1, Geometry: &domain.Geometry{SRID: 4326, Data: "SRID=4326;POINT(25 54)"}}, nil)
	catalog.On("GetByCode", mock.Anything, int64(2), domain.DefaultGeometryOutput()).
		Return(&domain.County{Code: 2, Geometry: &domain.Geometry{SRID: domain.WorkingSRID}}, nil)

	status, _ := do(t, app, fiber.MethodGet, "/counties/1/geometry?srid=4326", "")
	assert.Equal(t, fiber.StatusOK, status)

	status, env := do(t, app, fiber.MethodGet, "/counties/2/geometry", "")
	assert.Equal(t, fiber.StatusOK, status)
	var county domain.County
	require.NoError(t, json.Unmarshal(env.Data, &county))
	require.NotNil(t, county.Geometry)
	assert.Equal(t, domain.WorkingSRID, county.Geometry.SRID)

	catalog.AssertExpectations(t)
}

func TestEntityHandler_GetErrors(t *testing.T) {
	catalog := new(MockCatalog)
	app := setupApp(catalog)

	catalog.On("GetByCode", mock.Anything, int64(999), domain.GeometryOutput{}).Return(nil, apperrors.ErrNotFound)

	status, env := do(t, app, fiber.MethodGet, "/counties/999", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, apperrors.ErrNotFound.Code, env.Error.Code)

	status, env = do(t, app, fiber.MethodGet, "/counties/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, apperrors.ErrInvalidRequest.Code, env.Error.Code)
}
