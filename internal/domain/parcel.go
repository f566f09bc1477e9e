package domain

import "time"

// PurposeGroupRef - группа назначений, вложенная в назначение
type PurposeGroupRef struct {
	GroupID  int64  `json:"group_id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

func (g *PurposeGroupRef) Scan(src interface{}) error { return scanJSON(src, g) }

// PurposeGroup - группа назначений земли
type PurposeGroup struct {
	GroupID  int64  `json:"group_id" db:"group_id"`
	Name     string `json:"name" db:"name"`
	FullName string `json:"full_name" db:"full_name"`
}

// PurposeRef - назначение, вложенное в участок
type PurposeRef struct {
	PurposeID    int64            `json:"purpose_id"`
	PurposeGroup *PurposeGroupRef `json:"purpose_group"`
	Name         string           `json:"name"`
	FullName     string           `json:"full_name"`
	FullNameEn   string           `json:"full_name_en"`
}

func (p *PurposeRef) Scan(src interface{}) error { return scanJSON(src, p) }

// Purpose - назначение земли
type Purpose struct {
	PurposeID    int64            `json:"purpose_id" db:"purpose_id"`
	PurposeGroup *PurposeGroupRef `json:"purpose_group" db:"purpose_group"`
	Name         string           `json:"name" db:"name"`
	FullName     string           `json:"full_name" db:"full_name"`
	FullNameEn   string           `json:"full_name_en" db:"full_name_en"`
}

// StatusRef - статус, вложенный в участок
type StatusRef struct {
	StatusID   int64  `json:"status_id"`
	Name       string `json:"name"`
	NameEn     string `json:"name_en"`
	FullName   string `json:"full_name"`
	FullNameEn string `json:"full_name_en"`
}

func (s *StatusRef) Scan(src interface{}) error { return scanJSON(src, s) }

// Status - статус участка
type Status struct {
	StatusID   int64  `json:"status_id" db:"status_id"`
	Name       string `json:"name" db:"name"`
	NameEn     string `json:"name_en" db:"name_en"`
	FullName   string `json:"full_name" db:"full_name"`
	FullNameEn string `json:"full_name_en" db:"full_name_en"`
}

// Parcel - земельный участок.
// UniqueNumber в данных встречается повторно, поэтому поиск по ключу не фильтрует.
type Parcel struct {
	UniqueNumber    int64              `json:"unique_number" db:"unique_number"`
	CadastralNumber string             `json:"cadastral_number" db:"cadastral_number"`
	UpdatedAt       time.Time          `json:"updated_at" db:"updated_at"`
	AreaHa          float64            `json:"area_ha" db:"area_ha"`
	Municipality    *ShortMunicipality `json:"municipality" db:"municipality"`
	Purpose         *PurposeRef        `json:"purpose" db:"purpose"`
	Status          *StatusRef         `json:"status" db:"status"`
	Geometry        *Geometry          `json:"geometry,omitempty" db:"geometry"`
}
