package dto

// HealthResponse - состояние сервиса и хранилища
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
