package domain

// SortOrder - направление сортировки
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortField - поле сортировки из закрытого перечня
type SortField string

const (
	SortByCode                 SortField = "code"
	SortByName                 SortField = "name"
	SortByFullName             SortField = "full_name"
	SortByFeatureID            SortField = "feature_id"
	SortByCreatedAt            SortField = "created_at"
	SortByUpdatedAt            SortField = "updated_at"
	SortByPlotOrBuildingNumber SortField = "plot_or_building_number"
	SortByBuildingBlockNumber  SortField = "building_block_number"
	SortByPostalCode           SortField = "postal_code"
	SortByRoomNumber           SortField = "room_number"
	SortByUniqueNumber         SortField = "unique_number"
	SortByCadastralNumber      SortField = "cadastral_number"
	SortByAreaHa               SortField = "area_ha"
	SortByGroupID              SortField = "group_id"
	SortByPurposeID            SortField = "purpose_id"
	SortByStatusID             SortField = "status_id"
)

// PageRequest - параметры страницы (нумерация с 1)
type PageRequest struct {
	Page int
	Size int
}

// Offset возвращает смещение первой строки страницы
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

// Page - страница результатов поиска
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// NewPage собирает страницу и считает количество страниц
func NewPage[T any](items []T, total int64, req PageRequest) *Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return &Page[T]{
		Items: items,
		Total: total,
		Page:  req.Page,
		Size:  req.Size,
		Pages: pages,
	}
}

// SearchRequest - поисковый запрос по одной сущности
type SearchRequest struct {
	Filters   []FilterGroup
	SortBy    SortField
	SortOrder SortOrder
	Output    GeometryOutput
	Page      PageRequest
}
