package filter

import (
	"context"
	"fmt"

	"github.com/cadastre-search-api/internal/domain"
	"github.com/cadastre-search-api/internal/query"
)

// layer - уровень иерархии: прямые предки и собственные предикаты сущности
type layer struct {
	parents []domain.Entity
	own     func(g *domain.FilterGroup) []query.Predicate
}

// hierarchy - статическое описание иерархии сущностей. Населенные пункты и
// староства - независимые потомки самоуправления; участок объединяет три
// линии предков: самоуправление, назначение и статус.
var hierarchy = map[domain.Entity]layer{
	domain.EntityCounty: {
		own: func(g *domain.FilterGroup) []query.Predicate {
			return boundaryPredicates("counties", g.Counties)
		},
	},
	domain.EntityMunicipality: {
		parents: []domain.Entity{domain.EntityCounty},
		own: func(g *domain.FilterGroup) []query.Predicate {
			return boundaryPredicates("municipalities", g.Municipalities)
		},
	},
	domain.EntityEldership: {
		parents: []domain.Entity{domain.EntityMunicipality},
		own: func(g *domain.FilterGroup) []query.Predicate {
			return boundaryPredicates("elderships", g.Elderships)
		},
	},
	domain.EntityResidentialArea: {
		parents: []domain.Entity{domain.EntityMunicipality},
		own: func(g *domain.FilterGroup) []query.Predicate {
			return boundaryPredicates("residential_areas", g.ResidentialAreas)
		},
	},
	domain.EntityStreet: {
		parents: []domain.Entity{domain.EntityResidentialArea},
		own:     streetPredicates,
	},
	domain.EntityAddress: {
		parents: []domain.Entity{domain.EntityStreet},
		own:     addressPredicates,
	},
	domain.EntityRoom: {
		parents: []domain.Entity{domain.EntityAddress},
		own:     roomPredicates,
	},
	domain.EntityPurposeGroup: {
		own: purposeGroupPredicates,
	},
	domain.EntityPurposeType: {
		parents: []domain.Entity{domain.EntityPurposeGroup},
		own:     purposeTypePredicates,
	},
	domain.EntityStatusType: {
		own: statusTypePredicates,
	},
	domain.EntityParcel: {
		parents: []domain.Entity{
			domain.EntityMunicipality,
			domain.EntityPurposeType,
			domain.EntityStatusType,
		},
		own: parcelPredicates,
	},
}

// geometryColumns - колонка геометрии для геометрического фильтра.
// У помещений своей геометрии нет, используется геометрия адреса.
var geometryColumns = map[domain.Entity]query.Column{
	domain.EntityCounty:          "counties.geom",
	domain.EntityMunicipality:    "municipalities.geom",
	domain.EntityEldership:       "elderships.geom",
	domain.EntityResidentialArea: "residential_areas.geom",
	domain.EntityStreet:          "streets.geom",
	domain.EntityAddress:         "addresses.geom",
	domain.EntityRoom:            "addresses.geom",
	domain.EntityParcel:          "parcels.geom",
}

// GeometryColumn возвращает колонку геометрии сущности
func GeometryColumn(entity domain.Entity) (query.Column, bool) {
	c, ok := geometryColumns[entity]
	return c, ok
}

// EntityFilter строит предикаты одной группы фильтров для сущности:
// геометрический фильтр по колонке сущности и собственные предикаты
// каждого уровня линии предков. Состояния запроса не хранит.
type EntityFilter struct {
	entity   domain.Entity
	lineage  []layer
	geomCol  query.Column
	hasGeom  bool
	geometry *GeometryValidator
}

// NewEntityFilter - создание фильтра для сущности
func NewEntityFilter(entity domain.Entity, geometry *GeometryValidator) (*EntityFilter, error) {
	lineage, err := resolveLineage(entity)
	if err != nil {
		return nil, err
	}

	col, hasGeom := geometryColumns[entity]

	return &EntityFilter{
		entity:   entity,
		lineage:  lineage,
		geomCol:  col,
		hasGeom:  hasGeom,
		geometry: geometry,
	}, nil
}

// Entity возвращает сущность фильтра
func (f *EntityFilter) Entity() domain.Entity {
	return f.entity
}

// Apply возвращает предикаты группы; все они объединяются через AND
func (f *EntityFilter) Apply(ctx context.Context, g *domain.FilterGroup) ([]query.Predicate, error) {
	if g == nil {
		return nil, nil
	}

	var preds []query.Predicate

	if f.hasGeom && g.Geometry != nil {
		geomPreds, err := f.geometry.Predicates(ctx, g.Geometry, f.geomCol)
		if err != nil {
			return nil, err
		}
		preds = append(preds, geomPreds...)
	}

	for _, l := range f.lineage {
		preds = append(preds, l.own(g)...)
	}

	return preds, nil
}

// resolveLineage возвращает уровни от корневых предков к самой сущности,
// каждый уровень ровно один раз
func resolveLineage(entity domain.Entity) ([]layer, error) {
	var order []layer
	seen := make(map[domain.Entity]bool)

	var visit func(e domain.Entity) error
	visit = func(e domain.Entity) error {
		if seen[e] {
			return nil
		}
		l, ok := hierarchy[e]
		if !ok {
			return fmt.Errorf("no filter hierarchy for entity %q", e)
		}
		seen[e] = true
		for _, p := range l.parents {
			if err := visit(p); err != nil {
				return err
			}
		}
		order = append(order, l)
		return nil
	}

	if err := visit(entity); err != nil {
		return nil, err
	}
	return order, nil
}

func boundaryPredicates(table string, f *domain.BoundaryFilter) []query.Predicate {
	if f == nil {
		return nil
	}

	var preds []query.Predicate
	preds = append(preds, StringPredicates(query.Column(table+".name"), f.Name)...)
	preds = append(preds, SetPredicates(query.Column(table+".feature_id"), f.FeatureIDs)...)
	preds = append(preds, SetPredicates(query.Column(table+".code"), f.Codes)...)
	return preds
}

func streetPredicates(g *domain.FilterGroup) []query.Predicate {
	if g.Streets == nil {
		return nil
	}

	preds := boundaryPredicates("streets", &g.Streets.BoundaryFilter)
	return append(preds, StringPredicates("streets.full_name", g.Streets.FullName)...)
}

func addressPredicates(g *domain.FilterGroup) []query.Predicate {
	f := g.Addresses
	if f == nil {
		return nil
	}

	var preds []query.Predicate
	preds = append(preds, StringPredicates("addresses.building_block_number", f.BuildingBlockNumber)...)
	preds = append(preds, StringPredicates("addresses.plot_or_building_number", f.PlotOrBuildingNumber)...)
	preds = append(preds, StringPredicates("addresses.postal_code", f.PostalCode)...)
	preds = append(preds, SetPredicates("addresses.feature_id", f.FeatureIDs)...)
	preds = append(preds, SetPredicates("addresses.code", f.Codes)...)
	return preds
}

func roomPredicates(g *domain.FilterGroup) []query.Predicate {
	f := g.Rooms
	if f == nil {
		return nil
	}

	var preds []query.Predicate
	preds = append(preds, StringPredicates("rooms.room_number", f.RoomNumber)...)
	preds = append(preds, SetPredicates("rooms.code", f.Codes)...)
	return preds
}

func purposeGroupPredicates(g *domain.FilterGroup) []query.Predicate {
	f := g.PurposeGroups
	if f == nil {
		return nil
	}

	var preds []query.Predicate
	preds = append(preds, SetPredicates("purpose_groups.group_id", f.GroupIDs)...)
	preds = append(preds, StringPredicates("purpose_groups.name", f.Name)...)
	preds = append(preds, StringPredicates("purpose_groups.full_name", f.FullName)...)
	return preds
}

func purposeTypePredicates(g *domain.FilterGroup) []query.Predicate {
	f := g.Purposes
	if f == nil {
		return nil
	}

	var preds []query.Predicate
	preds = append(preds, SetPredicates("purpose_types.purpose_id", f.PurposeIDs)...)
	preds = append(preds, StringPredicates("purpose_types.name", f.Name)...)
	preds = append(preds, StringPredicates("purpose_types.full_name", f.FullName)...)
	preds = append(preds, StringPredicates("purpose_types.full_name_en", f.FullNameEn)...)
	return preds
}

func statusTypePredicates(g *domain.FilterGroup) []query.Predicate {
	f := g.Statuses
	if f == nil {
		return nil
	}

	var preds []query.Predicate
	preds = append(preds, SetPredicates("status_types.status_id", f.StatusIDs)...)
	preds = append(preds, StringPredicates("status_types.name", f.Name)...)
	preds = append(preds, StringPredicates("status_types.name_en", f.NameEn)...)
	preds = append(preds, StringPredicates("status_types.full_name", f.FullName)...)
	preds = append(preds, StringPredicates("status_types.full_name_en", f.FullNameEn)...)
	return preds
}

func parcelPredicates(g *domain.FilterGroup) []query.Predicate {
	f := g.Parcels
	if f == nil {
		return nil
	}

	var preds []query.Predicate
	preds = append(preds, StringPredicates("parcels.cadastral_number", f.CadastralNumber)...)
	preds = append(preds, SetPredicates("parcels.unique_number", f.UniqueNumbers)...)
	preds = append(preds, NumberPredicates("parcels.area_ha", f.AreaHa)...)
	return preds
}
