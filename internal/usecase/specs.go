package usecase

import (
	"github.com/cadastre-search-api/internal/domain"
	"github.com/cadastre-search-api/internal/query"
)

var (
	joinCountyOfMunicipality = query.Join{Table: "counties", On: "counties.code = municipalities.county_code"}
	joinPurposeGroup         = query.Join{Table: "purpose_groups", On: "purpose_groups.group_id = purpose_types.purpose_group_id"}
)

func joinMunicipality(child string) query.Join {
	return query.Join{Table: "municipalities", On: "municipalities.code = " + child + ".municipality_code"}
}

func joinResidentialArea(child string) query.Join {
	return query.Join{Table: "residential_areas", On: "residential_areas.code = " + child + ".residential_area_code"}
}

func boundaryColumns(table string) []string {
	return []string{
		table + ".code",
		table + ".feature_id",
		table + ".name",
		table + ".area_ha",
		table + ".created_at",
	}
}

func boundarySort(table string, extra ...sortEntry) ([]domain.SortField, map[domain.SortField]sortColumn) {
	entries := []sortEntry{
		plain(domain.SortByCode, query.Column(table+".code")),
		textual(domain.SortByName, query.Column(table+".name")),
		plain(domain.SortByFeatureID, query.Column(table+".feature_id")),
		plain(domain.SortByCreatedAt, query.Column(table+".created_at")),
	}
	return sortTable(append(entries, extra...)...)
}

func countySpec() *entitySpec {
	s := &entitySpec{
		entity:   domain.EntityCounty,
		from:     "counties",
		columns:  func() []string { return boundaryColumns("counties") },
		geometry: "counties.geom",
		key:      "counties.code",
		tiebreak: "counties.code",
	}
	s.sortFields, s.sortColumns = boundarySort("counties")
	return s
}

func municipalitySpec() *entitySpec {
	s := &entitySpec{
		entity: domain.EntityMunicipality,
		from:   "municipalities",
		joins:  []query.Join{joinCountyOfMunicipality},
		columns: func() []string {
			return append(boundaryColumns("municipalities"),
				as(optional("counties.code", countyObject()), "county"))
		},
		geometry: "municipalities.geom",
		key:      "municipalities.code",
		tiebreak: "municipalities.code",
	}
	s.sortFields, s.sortColumns = boundarySort("municipalities")
	return s
}

// municipalityChildSpec - староства и населенные пункты: самоуправление с уездом
func municipalityChildSpec(entity domain.Entity, table string) *entitySpec {
	s := &entitySpec{
		entity: entity,
		from:   table,
		joins:  []query.Join{joinMunicipality(table), joinCountyOfMunicipality},
		columns: func() []string {
			return append(boundaryColumns(table),
				as(optional("municipalities.code", municipalityObject()), "municipality"))
		},
		geometry: query.Column(table + ".geom"),
		key:      query.Column(table + ".code"),
		tiebreak: query.Column(table + ".code"),
	}
	s.sortFields, s.sortColumns = boundarySort(table)
	return s
}

func eldershipSpec() *entitySpec {
	return municipalityChildSpec(domain.EntityEldership, "elderships")
}

func residentialAreaSpec() *entitySpec {
	return municipalityChildSpec(domain.EntityResidentialArea, "residential_areas")
}

func streetSpec() *entitySpec {
	s := &entitySpec{
		entity: domain.EntityStreet,
		from:   "streets",
		joins: []query.Join{
			joinResidentialArea("streets"),
			joinMunicipality("residential_areas"),
			joinCountyOfMunicipality,
		},
		columns: func() []string {
			return []string{
				"streets.code",
				"streets.feature_id",
				"streets.name",
				"streets.full_name",
				"streets.length_m",
				"streets.created_at",
				as(optional("residential_areas.code", residentialAreaObject()), "residential_area"),
			}
		},
		geometry: "streets.geom",
		key:      "streets.code",
		tiebreak: "streets.code",
	}
	s.sortFields, s.sortColumns = boundarySort("streets",
		textual(domain.SortByFullName, "streets.full_name"))
	return s
}

// addressJoins - предки адреса; улица и населенный пункт необязательны
func addressJoins() []query.Join {
	return []query.Join{
		joinMunicipality("addresses"),
		joinCountyOfMunicipality,
		{Table: "streets", On: "streets.code = addresses.street_code"},
		joinResidentialArea("addresses"),
	}
}

func addressSpec() *entitySpec {
	s := &entitySpec{
		entity: domain.EntityAddress,
		from:   "addresses",
		joins:  addressJoins(),
		columns: func() []string {
			return []string{
				"addresses.code",
				"addresses.feature_id",
				"addresses.plot_or_building_number",
				"addresses.building_block_number",
				"addresses.postal_code",
				"addresses.created_at",
				as(optional("streets.code", flatStreetObject()), "street"),
				as(optional("residential_areas.code", flatResidentialAreaObject()), "residential_area"),
				as(optional("municipalities.code", municipalityObject()), "municipality"),
			}
		},
		geometry:       "addresses.geom",
		alwaysGeometry: true,
		key:            "addresses.code",
		tiebreak:       "addresses.code",
	}
	s.sortFields, s.sortColumns = sortTable(
		plain(domain.SortByCode, "addresses.code"),
		natural(domain.SortByPlotOrBuildingNumber, "addresses.plot_or_building_number"),
		textual(domain.SortByBuildingBlockNumber, "addresses.building_block_number"),
		textual(domain.SortByPostalCode, "addresses.postal_code"),
		plain(domain.SortByFeatureID, "addresses.feature_id"),
		plain(domain.SortByCreatedAt, "addresses.created_at"),
	)
	return s
}

func roomSpec() *entitySpec {
	joins := append([]query.Join{{Table: "addresses", On: "addresses.code = rooms.address_code"}}, addressJoins()...)

	s := &entitySpec{
		entity: domain.EntityRoom,
		from:   "rooms",
		joins:  joins,
		columns: func() []string {
			return []string{
				"rooms.code",
				"rooms.room_number",
				"rooms.created_at",
				as(optional("addresses.code", addressObject()), "address"),
			}
		},
		geometry:       "addresses.geom",
		alwaysGeometry: true,
		key:            "rooms.code",
		tiebreak:       "rooms.code",
	}
	s.sortFields, s.sortColumns = sortTable(
		plain(domain.SortByCode, "rooms.code"),
		natural(domain.SortByRoomNumber, "rooms.room_number"),
		plain(domain.SortByCreatedAt, "rooms.created_at"),
	)
	return s
}

func purposeGroupSpec() *entitySpec {
	s := &entitySpec{
		entity: domain.EntityPurposeGroup,
		from:   "purpose_groups",
		columns: func() []string {
			return []string{
				"purpose_groups.group_id",
				"purpose_groups.name",
				"purpose_groups.full_name",
			}
		},
		key: "purpose_groups.group_id",
	}
	s.sortFields, s.sortColumns = sortTable(
		plain(domain.SortByGroupID, "purpose_groups.group_id"),
		textual(domain.SortByName, "purpose_groups.name"),
	)
	return s
}

func purposeTypeSpec() *entitySpec {
	s := &entitySpec{
		entity: domain.EntityPurposeType,
		from:   "purpose_types",
		joins:  []query.Join{joinPurposeGroup},
		columns: func() []string {
			return []string{
				"purpose_types.purpose_id",
				as(optional("purpose_groups.group_id", purposeGroupObject()), "purpose_group"),
				"purpose_types.name",
				"purpose_types.full_name",
				"purpose_types.full_name_en",
			}
		},
		key: "purpose_types.purpose_id",
	}
	s.sortFields, s.sortColumns = sortTable(
		plain(domain.SortByPurposeID, "purpose_types.purpose_id"),
		textual(domain.SortByName, "purpose_types.name"),
		textual(domain.SortByFullName, "purpose_types.full_name"),
	)
	return s
}

func statusTypeSpec() *entitySpec {
	s := &entitySpec{
		entity: domain.EntityStatusType,
		from:   "status_types",
		columns: func() []string {
			return []string{
				"status_types.status_id",
				"status_types.name",
				"status_types.name_en",
				"status_types.full_name",
				"status_types.full_name_en",
			}
		},
		key: "status_types.status_id",
	}
	s.sortFields, s.sortColumns = sortTable(
		plain(domain.SortByStatusID, "status_types.status_id"),
		textual(domain.SortByName, "status_types.name"),
	)
	return s
}

// parcelSpec - у участков нет ключа для GetByCode: unique_number в данных не уникален
func parcelSpec() *entitySpec {
	s := &entitySpec{
		entity: domain.EntityParcel,
		from:   "parcels",
		joins: []query.Join{
			joinMunicipality("parcels"),
			joinCountyOfMunicipality,
			{Table: "purpose_types", On: "purpose_types.purpose_id = parcels.purpose_id"},
			joinPurposeGroup,
			{Table: "status_types", On: "status_types.status_id = parcels.status_id"},
		},
		columns: func() []string {
			return []string{
				"parcels.unique_number",
				"parcels.cadastral_number",
				"parcels.updated_at",
				"parcels.area_ha",
				as(optional("municipalities.code", municipalityObject()), "municipality"),
				as(optional("purpose_types.purpose_id", purposeObject()), "purpose"),
				as(optional("status_types.status_id", statusObject()), "status"),
			}
		},
		geometry:       "parcels.geom",
		alwaysGeometry: true,
	}
	s.sortFields, s.sortColumns = sortTable(
		plain(domain.SortByUniqueNumber, "parcels.unique_number"),
		textual(domain.SortByCadastralNumber, "parcels.cadastral_number"),
		plain(domain.SortByUpdatedAt, "parcels.updated_at"),
		plain(domain.SortByAreaHa, "parcels.area_ha"),
	)
	return s
}
