package domain

// StringFilter - фильтр по строковому полю (регистронезависимый).
// Применяется только первый заданный вариант: exact, затем starts, затем contains.
type StringFilter struct {
	Exact    *string `json:"exact,omitempty"`
	Starts   *string `json:"starts,omitempty"`
	Contains *string `json:"contains,omitempty"`
}

// NumberFilter - фильтр по числовому полю.
// Eq отменяет границы диапазона; Lt отменяет Lte, Gt отменяет Gte.
type NumberFilter struct {
	Eq  *float64 `json:"eq,omitempty"`
	Lt  *float64 `json:"lt,omitempty"`
	Lte *float64 `json:"lte,omitempty"`
	Gt  *float64 `json:"gt,omitempty"`
	Gte *float64 `json:"gte,omitempty"`
}

// GeometryFilter - пространственный фильтр. Каждая заданная кодировка дает
// отдельный предикат, все они объединяются через AND внутри группы.
type GeometryFilter struct {
	Method  GeometryFilterMethod `json:"method,omitempty" validate:"omitempty,oneof=intersects contains"`
	EWKB    *string              `json:"ewkb,omitempty"`
	EWKT    *string              `json:"ewkt,omitempty"`
	GeoJSON *string              `json:"geojson,omitempty"`
}

// BoundaryFilter - общий фильтр для уездов, самоуправлений, староств и населенных пунктов
type BoundaryFilter struct {
	Codes      []int64       `json:"codes,omitempty"`
	FeatureIDs []int64       `json:"feature_ids,omitempty"`
	Name       *StringFilter `json:"name,omitempty"`
}

// StreetFilter - фильтр улиц
type StreetFilter struct {
	BoundaryFilter
	FullName *StringFilter `json:"full_name,omitempty"`
}

// AddressFilter - фильтр адресов
type AddressFilter struct {
	Codes                []int64       `json:"codes,omitempty"`
	FeatureIDs           []int64       `json:"feature_ids,omitempty"`
	PlotOrBuildingNumber *StringFilter `json:"plot_or_building_number,omitempty"`
	BuildingBlockNumber  *StringFilter `json:"building_block_number,omitempty"`
	PostalCode           *StringFilter `json:"postal_code,omitempty"`
}

// RoomFilter - фильтр помещений
type RoomFilter struct {
	Codes      []int64       `json:"codes,omitempty"`
	RoomNumber *StringFilter `json:"room_number,omitempty"`
}

// PurposeGroupFilter - фильтр групп назначений
type PurposeGroupFilter struct {
	GroupIDs []int64       `json:"group_ids,omitempty"`
	Name     *StringFilter `json:"name,omitempty"`
	FullName *StringFilter `json:"full_name,omitempty"`
}

// PurposeTypeFilter - фильтр назначений
type PurposeTypeFilter struct {
	PurposeIDs []int64       `json:"purpose_ids,omitempty"`
	Name       *StringFilter `json:"name,omitempty"`
	FullName   *StringFilter `json:"full_name,omitempty"`
	FullNameEn *StringFilter `json:"full_name_en,omitempty"`
}

// StatusTypeFilter - фильтр статусов
type StatusTypeFilter struct {
	StatusIDs  []int64       `json:"status_ids,omitempty"`
	Name       *StringFilter `json:"name,omitempty"`
	NameEn     *StringFilter `json:"name_en,omitempty"`
	FullName   *StringFilter `json:"full_name,omitempty"`
	FullNameEn *StringFilter `json:"full_name_en,omitempty"`
}

// ParcelFilter - фильтр земельных участков
type ParcelFilter struct {
	UniqueNumbers   []int64       `json:"unique_numbers,omitempty"`
	CadastralNumber *StringFilter `json:"cadastral_number,omitempty"`
	AreaHa          *NumberFilter `json:"area_ha,omitempty"`
}

// FilterGroup - одна группа фильтров запроса. Предикаты внутри группы
// объединяются через AND, группы между собой - через OR.
// Секции, не относящиеся к искомой сущности и ее предкам, игнорируются.
type FilterGroup struct {
	Geometry         *GeometryFilter     `json:"geometry,omitempty"`
	Counties         *BoundaryFilter     `json:"counties,omitempty"`
	Municipalities   *BoundaryFilter     `json:"municipalities,omitempty"`
	Elderships       *BoundaryFilter     `json:"elderships,omitempty"`
	ResidentialAreas *BoundaryFilter     `json:"residential_areas,omitempty"`
	Streets          *StreetFilter       `json:"streets,omitempty"`
	Addresses        *AddressFilter      `json:"addresses,omitempty"`
	Rooms            *RoomFilter         `json:"rooms,omitempty"`
	PurposeGroups    *PurposeGroupFilter `json:"purpose_groups,omitempty"`
	Purposes         *PurposeTypeFilter  `json:"purposes,omitempty"`
	Statuses         *StatusTypeFilter   `json:"statuses,omitempty"`
	Parcels          *ParcelFilter       `json:"parcels,omitempty"`
}
