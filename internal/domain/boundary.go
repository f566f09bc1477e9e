package domain

import "time"

// Вложенные представления предков читаются из jsonb колонок, поэтому
// реализуют sql.Scanner. Верхнеуровневые представления сканируются по колонкам
// и Scanner не реализуют.

// ShortCounty - краткое представление уезда
type ShortCounty struct {
	Code      int64  `json:"code"`
	FeatureID int64  `json:"feature_id"`
	Name      string `json:"name"`
}

func (c *ShortCounty) Scan(src interface{}) error { return scanJSON(src, c) }

// County - уезд
type County struct {
	Code      int64     `json:"code" db:"code"`
	FeatureID int64     `json:"feature_id" db:"feature_id"`
	Name      string    `json:"name" db:"name"`
	AreaHa    float64   `json:"area_ha" db:"area_ha"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Geometry  *Geometry `json:"geometry,omitempty" db:"geometry"`
}

// ShortMunicipality - краткое представление самоуправления вместе с уездом
type ShortMunicipality struct {
	Code      int64        `json:"code"`
	FeatureID int64        `json:"feature_id"`
	Name      string       `json:"name"`
	County    *ShortCounty `json:"county,omitempty"`
}

func (m *ShortMunicipality) Scan(src interface{}) error { return scanJSON(src, m) }

// Municipality - самоуправление
type Municipality struct {
	Code      int64        `json:"code" db:"code"`
	FeatureID int64        `json:"feature_id" db:"feature_id"`
	Name      string       `json:"name" db:"name"`
	AreaHa    float64      `json:"area_ha" db:"area_ha"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	County    *ShortCounty `json:"county" db:"county"`
	Geometry  *Geometry    `json:"geometry,omitempty" db:"geometry"`
}

// Eldership - староство
type Eldership struct {
	Code         int64              `json:"code" db:"code"`
	FeatureID    int64              `json:"feature_id" db:"feature_id"`
	Name         string             `json:"name" db:"name"`
	AreaHa       float64            `json:"area_ha" db:"area_ha"`
	CreatedAt    time.Time          `json:"created_at" db:"created_at"`
	Municipality *ShortMunicipality `json:"municipality" db:"municipality"`
	Geometry     *Geometry          `json:"geometry,omitempty" db:"geometry"`
}

// FlatResidentialArea - населенный пункт без предков
type FlatResidentialArea struct {
	Code      int64  `json:"code"`
	FeatureID int64  `json:"feature_id"`
	Name      string `json:"name"`
}

func (a *FlatResidentialArea) Scan(src interface{}) error { return scanJSON(src, a) }

// ShortResidentialArea - населенный пункт с самоуправлением
type ShortResidentialArea struct {
	Code         int64              `json:"code"`
	FeatureID    int64              `json:"feature_id"`
	Name         string             `json:"name"`
	Municipality *ShortMunicipality `json:"municipality"`
}

func (a *ShortResidentialArea) Scan(src interface{}) error { return scanJSON(src, a) }

// ResidentialArea - населенный пункт
type ResidentialArea struct {
	Code         int64              `json:"code" db:"code"`
	FeatureID    int64              `json:"feature_id" db:"feature_id"`
	Name         string             `json:"name" db:"name"`
	AreaHa       float64            `json:"area_ha" db:"area_ha"`
	CreatedAt    time.Time          `json:"created_at" db:"created_at"`
	Municipality *ShortMunicipality `json:"municipality" db:"municipality"`
	Geometry     *Geometry          `json:"geometry,omitempty" db:"geometry"`
}

// FlatStreet - улица без предков
type FlatStreet struct {
	Code      int64  `json:"code"`
	FeatureID int64  `json:"feature_id"`
	Name      string `json:"name"`
	FullName  string `json:"full_name"`
}

func (s *FlatStreet) Scan(src interface{}) error { return scanJSON(src, s) }

// Street - улица с линейной геометрией
type Street struct {
	Code            int64                 `json:"code" db:"code"`
	FeatureID       int64                 `json:"feature_id" db:"feature_id"`
	Name            string                `json:"name" db:"name"`
	FullName        string                `json:"full_name" db:"full_name"`
	LengthM         float64               `json:"length_m" db:"length_m"`
	CreatedAt       time.Time             `json:"created_at" db:"created_at"`
	ResidentialArea *ShortResidentialArea `json:"residential_area" db:"residential_area"`
	Geometry        *Geometry             `json:"geometry,omitempty" db:"geometry"`
}

// ShortAddress - адрес, вложенный в помещение
type ShortAddress struct {
	Code                 int64                `json:"code"`
	FeatureID            int64                `json:"feature_id"`
	PlotOrBuildingNumber string               `json:"plot_or_building_number"`
	BuildingBlockNumber  *string              `json:"building_block_number"`
	PostalCode           string               `json:"postal_code"`
	Street               *FlatStreet          `json:"street"`
	ResidentialArea      *FlatResidentialArea `json:"residential_area"`
	Municipality         *ShortMunicipality   `json:"municipality"`
}

func (a *ShortAddress) Scan(src interface{}) error { return scanJSON(src, a) }

// Address - адрес с точечной геометрией
type Address struct {
	Code                 int64                `json:"code" db:"code"`
	FeatureID            int64                `json:"feature_id" db:"feature_id"`
	PlotOrBuildingNumber string               `json:"plot_or_building_number" db:"plot_or_building_number"`
	BuildingBlockNumber  *string              `json:"building_block_number" db:"building_block_number"`
	PostalCode           string               `json:"postal_code" db:"postal_code"`
	CreatedAt            time.Time            `json:"created_at" db:"created_at"`
	Street               *FlatStreet          `json:"street" db:"street"`
	ResidentialArea      *FlatResidentialArea `json:"residential_area" db:"residential_area"`
	Municipality         *ShortMunicipality   `json:"municipality" db:"municipality"`
	Geometry             *Geometry            `json:"geometry,omitempty" db:"geometry"`
}

// Room - помещение; геометрия берется из адреса
type Room struct {
	Code       int64         `json:"code" db:"code"`
	RoomNumber string        `json:"room_number" db:"room_number"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
	Address    *ShortAddress `json:"address" db:"address"`
	Geometry   *Geometry     `json:"geometry,omitempty" db:"geometry"`
}
