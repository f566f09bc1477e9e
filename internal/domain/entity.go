package domain

// Entity - тип сущности кадастрового справочника
type Entity string

const (
	EntityCounty          Entity = "county"
	EntityMunicipality    Entity = "municipality"
	EntityEldership       Entity = "eldership"
	EntityResidentialArea Entity = "residential_area"
	EntityStreet          Entity = "street"
	EntityAddress         Entity = "address"
	EntityRoom            Entity = "room"
	EntityPurposeGroup    Entity = "purpose_group"
	EntityPurposeType     Entity = "purpose_type"
	EntityStatusType      Entity = "status_type"
	EntityParcel          Entity = "parcel"
)

// Entities - все сущности в порядке иерархии
var Entities = []Entity{
	EntityCounty,
	EntityMunicipality,
	EntityEldership,
	EntityResidentialArea,
	EntityStreet,
	EntityAddress,
	EntityRoom,
	EntityPurposeGroup,
	EntityPurposeType,
	EntityStatusType,
	EntityParcel,
}
