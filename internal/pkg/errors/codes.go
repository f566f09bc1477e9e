package errors

import "net/http"

var (
	ErrInvalidGeometry = New(
		"INVALID_GEOMETRY",
		"Invalid geometry provided",
		http.StatusBadRequest,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Object not found",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrServiceUnavailable = New(
		"SERVICE_UNAVAILABLE",
		"Spatial database is unavailable",
		http.StatusServiceUnavailable,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// Ошибки программирования: значение вне закрытого перечня прошло валидацию
var (
	ErrUnknownFilterMethod = New(
		"UNKNOWN_FILTER_METHOD",
		"Unknown geometry filter method",
		http.StatusInternalServerError,
	)

	ErrUnknownOutputFormat = New(
		"UNKNOWN_OUTPUT_FORMAT",
		"Unknown geometry output format",
		http.StatusInternalServerError,
	)

	ErrUnknownSortField = New(
		"UNKNOWN_SORT_FIELD",
		"Unknown sort field",
		http.StatusInternalServerError,
	)

	ErrDuplicateCode = New(
		"DUPLICATE_CODE",
		"More than one object shares the requested code",
		http.StatusInternalServerError,
	)
)
