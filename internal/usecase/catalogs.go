package usecase

import (
	"go.uber.org/zap"

	"github.com/cadastre-search-api/internal/domain"
	"github.com/cadastre-search-api/internal/domain/repository"
	"github.com/cadastre-search-api/internal/filter"
)

// Catalogs - каталоги всех сущностей с общими валидатором геометрии и хранилищем
type Catalogs struct {
	Counties         *Catalog[domain.County]
	Municipalities   *Catalog[domain.Municipality]
	Elderships       *Catalog[domain.Eldership]
	ResidentialAreas *Catalog[domain.ResidentialArea]
	Streets          *Catalog[domain.Street]
	Addresses        *Catalog[domain.Address]
	Rooms            *Catalog[domain.Room]
	PurposeGroups    *Catalog[domain.PurposeGroup]
	PurposeTypes     *Catalog[domain.Purpose]
	StatusTypes      *Catalog[domain.Status]
	Parcels          *Catalog[domain.Parcel]
}

// NewCatalogs - создание каталогов всех сущностей
func NewCatalogs(
	engine repository.SpatialEngine,
	executor repository.QueryExecutor,
	paginator repository.Paginator,
	logger *zap.Logger,
) (*Catalogs, error) {
	geometry := filter.NewGeometryValidator(engine, logger)
	c := &Catalogs{}

	var err error
	if c.Counties, err = newCatalog[domain.County](countySpec(), geometry, executor, paginator, logger); err != nil {
		return nil, err
	}
	if c.Municipalities, err = newCatalog[domain.Municipality](municipalitySpec(), geometry, executor, paginator, logger); err != nil {
		return nil, err
	}
	if c.Elderships, err = newCatalog[domain.Eldership](eldershipSpec(), geometry, executor, paginator, logger); err != nil {
		return nil, err
	}
	if c.ResidentialAreas, err = newCatalog[domain.ResidentialArea](residentialAreaSpec(), geometry, executor, paginator, logger); err != nil {
		return nil, err
	}
	if c.Streets, err = newCatalog[domain.Street](streetSpec(), geometry, executor, paginator, logger); err != nil {
		return nil, err
	}
	if c.Addresses, err = newCatalog[domain.Address](addressSpec(), geometry, executor, paginator, logger); err != nil {
		return nil, err
	}
	if c.Rooms, err = newCatalog[domain.Room](roomSpec(), geometry, executor, paginator, logger); err != nil {
		return nil, err
	}
	if c.PurposeGroups, err = newCatalog[domain.PurposeGroup](purposeGroupSpec(), geometry, executor, paginator, logger); err != nil {
		return nil, err
	}
	if c.PurposeTypes, err = newCatalog[domain.Purpose](purposeTypeSpec(), geometry, executor, paginator, logger); err != nil {
		return nil, err
	}
	if c.StatusTypes, err = newCatalog[domain.Status](statusTypeSpec(), geometry, executor, paginator, logger); err != nil {
		return nil, err
	}
	if c.Parcels, err = newCatalog[domain.Parcel](parcelSpec(), geometry, executor, paginator, logger); err != nil {
		return nil, err
	}

	return c, nil
}
