package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/cadastre-search-api/internal/domain"
	"github.com/cadastre-search-api/internal/domain/repository"
	"github.com/cadastre-search-api/internal/pkg/errors"
	"github.com/cadastre-search-api/internal/query"
	"github.com/cadastre-search-api/internal/repository/postgres"
	"github.com/cadastre-search-api/internal/repository/postgres/testhelpers"
	"github.com/cadastre-search-api/internal/usecase"
)

// CadastreIntegrationTestSuite runs the search core against a real PostGIS
type CadastreIntegrationTestSuite struct {
	suite.Suite
	testDB   *testhelpers.TestDB
	engine   repository.SpatialEngine
	catalogs *usecase.Catalogs
	ctx      context.Context
}

// SetupSuite runs once before all tests in the suite
func (s *CadastreIntegrationTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ResetSchema(s.testDB.DB.DB, "../../../migrations")
	s.Require().NoError(err, "Failed to reset schema")

	err = testhelpers.LoadFixtures(s.testDB.DB.DB, "testdata/fixtures", []string{"cadastre.sql"})
	s.Require().NoError(err, "Failed to load fixtures")

	db := s.testDB.Postgres()
	repo := postgres.NewCadastreRepository(db, 0)
	s.engine = postgres.NewSpatialEngine(db)

	s.catalogs, err = usecase.NewCatalogs(s.engine, repo, repo, s.testDB.Logger)
	s.Require().NoError(err)
}

// TearDownSuite runs once after all tests in the suite
func (s *CadastreIntegrationTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

// SetupTest runs before each test
func (s *CadastreIntegrationTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func ptr[T any](v T) *T { return &v }

// ============================================================================
// Geometry
// ============================================================================

func (s *CadastreIntegrationTestSuite) TestIsValid() {
	valid, err := s.engine.IsValid(s.ctx,
		query.Transform(query.GeomFromEWKT("SRID=4326;POLYGON((25.2 54.6,25.3 54.6,25.3 54.7,25.2 54.6))"), 3346))
	s.NoError(err)
	s.True(valid)

	valid, err = s.engine.IsValid(s.ctx,
		query.Transform(query.GeomFromEWKT("SRID=3346;POLYGON((0 0,10 10,10 0,0 10,0 0))"), 3346))
	s.NoError(err)
	s.False(valid, "self-intersecting polygon")

	valid, err = s.engine.IsValid(s.ctx,
		query.Transform(query.GeomFromEWKT("SRID=3346;POLYGON((0 0,10"), 3346))
	s.NoError(err, "engine parse errors are not store failures")
	s.False(valid)
}

func (s *CadastreIntegrationTestSuite) TestReprojectionRoundTrip() {
	const stmt = `
		SELECT ST_HausdorffDistance(
			ST_Transform(ST_Transform(geom, $1::int), 3346),
			geom
		)
		FROM municipalities WHERE code = 13`

	for _, srid := range []int{4326, 3857, 3035} {
		var distance float64
		s.Require().NoError(s.testDB.DB.GetContext(s.ctx, &distance, stmt, srid))
		s.Less(distance, 0.001, "srid %d", srid)
	}
}

func (s *CadastreIntegrationTestSuite) TestGeometryFilter() {
	// окно в рабочей системе координат вокруг начала Гедимино пр.
	window := "SRID=3346;POLYGON((581000 6061000,581200 6061000,581200 6061100,581000 6061100,581000 6061000))"

	page, err := s.catalogs.Addresses.Search(s.ctx, domain.SearchRequest{
		Filters: []domain.FilterGroup{{Geometry: &domain.GeometryFilter{
			Method: domain.GeometryMethodContains,
			EWKT:   &window,
		}}},
		SortBy: domain.SortByCode,
	})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 2)
	s.Equal(int64(155001), page.Items[0].Code)
	s.Equal(int64(155003), page.Items[1].Code)
}

func (s *CadastreIntegrationTestSuite) TestInvalidGeometryFilter() {
	bad := "SRID=3346;POLYGON((0 0,10"
	_, err := s.catalogs.Counties.Search(s.ctx, domain.SearchRequest{
		Filters: []domain.FilterGroup{{Geometry: &domain.GeometryFilter{EWKT: &bad}}},
	})
	s.ErrorIs(err, errors.ErrInvalidGeometry)
}

// ============================================================================
// Search
// ============================================================================

func (s *CadastreIntegrationTestSuite) TestSearch_NoFilterGroupsReturnsNothing() {
	page, err := s.catalogs.Counties.Search(s.ctx, domain.SearchRequest{})
	s.NoError(err)
	s.Empty(page.Items)
	s.Equal(int64(0), page.Total)
}

func (s *CadastreIntegrationTestSuite) TestSearch_DisjointGroupsReturnRowsOnce() {
	page, err := s.catalogs.Municipalities.Search(s.ctx, domain.SearchRequest{
		Filters: []domain.FilterGroup{
			{Municipalities: &domain.BoundaryFilter{Codes: []int64{13}}},
			{Municipalities: &domain.BoundaryFilter{Name: &domain.StringFilter{Contains: ptr("r. sav")}}},
			{Counties: &domain.BoundaryFilter{Codes: []int64{1}}},
		},
	})
	s.Require().NoError(err)
	s.Equal(int64(2), page.Total)
	s.Len(page.Items, 2)
	s.Require().NotNil(page.Items[0].County)
	s.Equal("Vilniaus apskr.", page.Items[0].County.Name)
}

func (s *CadastreIntegrationTestSuite) TestSearch_EmptyContainsMatchesEveryName() {
	page, err := s.catalogs.Municipalities.Search(s.ctx, domain.SearchRequest{
		Filters: []domain.FilterGroup{{
			Municipalities: &domain.BoundaryFilter{Name: &domain.StringFilter{Contains: ptr("")}},
		}},
	})
	s.Require().NoError(err)

	var expected int64
	s.Require().NoError(s.testDB.DB.GetContext(s.ctx, &expected,
		"SELECT count(*) FROM municipalities WHERE name IS NOT NULL"))
	s.Equal(expected, page.Total)
	s.Equal(int64(2), page.Total)
}

func (s *CadastreIntegrationTestSuite) TestSearch_NaturalSort() {
	page, err := s.catalogs.Addresses.Search(s.ctx, domain.SearchRequest{
		Filters: []domain.FilterGroup{{Streets: &domain.StreetFilter{
			BoundaryFilter: domain.BoundaryFilter{Codes: []int64{1001}},
		}}},
		SortBy: domain.SortByPlotOrBuildingNumber,
	})
	s.Require().NoError(err)

	numbers := make([]string, 0, len(page.Items))
	for _, a := range page.Items {
		numbers = append(numbers, a.PlotOrBuildingNumber)
	}
	s.Equal([]string{"1A", "2", "10", "101"}, numbers)

	s.Require().NotNil(page.Items[0].Geometry, "addresses always carry geometry")
	s.Equal(domain.WorkingSRID, page.Items[0].Geometry.SRID)
}

func (s *CadastreIntegrationTestSuite) TestSearch_RoomsNestAddress() {
	page, err := s.catalogs.Rooms.Search(s.ctx, domain.SearchRequest{
		Filters: []domain.FilterGroup{{Municipalities: &domain.BoundaryFilter{Codes: []int64{13}}}},
		SortBy:  domain.SortByRoomNumber,
		Output:  domain.GeometryOutput{SRID: 4326, Format: domain.GeometryFormatEWKB},
	})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 3)

	s.Equal("1A", page.Items[0].RoomNumber)
	room := page.Items[0]
	s.Require().NotNil(room.Address)
	s.Require().NotNil(room.Address.Street)
	s.Equal("Gedimino pr.", room.Address.Street.FullName)
	s.Require().NotNil(room.Address.Municipality)
	s.Require().NotNil(room.Address.Municipality.County)
	s.Equal(int64(1), room.Address.Municipality.County.Code)
	s.Require().NotNil(room.Geometry)
	s.Equal(4326, room.Geometry.SRID)
	s.Regexp("^[0-9a-f]+$", room.Geometry.Data)
}

func (s *CadastreIntegrationTestSuite) TestSearch_ParcelsThreeAncestries() {
	page, err := s.catalogs.Parcels.Search(s.ctx, domain.SearchRequest{
		Filters: []domain.FilterGroup{{
			Counties: &domain.BoundaryFilter{Codes: []int64{1}},
			PurposeGroups: &domain.PurposeGroupFilter{
				Name: &domain.StringFilter{Exact: ptr("kita")},
			},
			Statuses: &domain.StatusTypeFilter{StatusIDs: []int64{1}},
			Parcels:  &domain.ParcelFilter{AreaHa: &domain.NumberFilter{Lt: ptr(1.0)}},
		}},
	})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Equal("0101/0001:1", page.Items[0].CadastralNumber)
	s.Require().NotNil(page.Items[0].Purpose)
	s.Require().NotNil(page.Items[0].Purpose.PurposeGroup)
	s.Equal(int64(3), page.Items[0].Purpose.PurposeGroup.GroupID)
}

// ============================================================================
// GetByCode
// ============================================================================

func (s *CadastreIntegrationTestSuite) TestGetByCode() {
	street, err := s.catalogs.Streets.GetByCode(s.ctx, 1001, domain.GeometryOutput{})
	s.Require().NoError(err)
	s.Equal("Gedimino pr.", street.FullName)
	s.Nil(street.Geometry)
	s.Require().NotNil(street.ResidentialArea)
	s.Equal("Vilnius", street.ResidentialArea.Name)

	address, err := s.catalogs.Addresses.GetByCode(s.ctx, 155005, domain.GeometryOutput{})
	s.Require().NoError(err)
	s.Nil(address.Street)
	s.Nil(address.ResidentialArea)

	_, err = s.catalogs.Counties.GetByCode(s.ctx, 999, domain.GeometryOutput{})
	s.ErrorIs(err, errors.ErrNotFound)
}

func (s *CadastreIntegrationTestSuite) TestGetByCode_ParcelIsNotFiltered() {
	parcel, err := s.catalogs.Parcels.GetByCode(s.ctx, 4401, domain.GeometryOutput{})
	s.Require().NoError(err)
	s.NotNil(parcel)
}

func (s *CadastreIntegrationTestSuite) TestCodeIsUnique() {
	_, err := s.testDB.DB.ExecContext(s.ctx, `
		INSERT INTO counties (feature_id, code, name, area_ha, created_at, geom)
		VALUES (12, 1, 'Dublikatas', 1, '2023-01-01', ST_Multi(ST_MakeEnvelope(0, 0, 1, 1, 3346)))`)
	s.Error(err)
}

// TestCadastreIntegrationTestSuite runs the test suite
func TestCadastreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CadastreIntegrationTestSuite))
}
