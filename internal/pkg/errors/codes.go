package errors

import "net/http"

var (
	ErrItemNotFound = New(
		"ITEM_NOT_FOUND",
		"Item not found",
		http.StatusNotFound,
	)

	ErrItemExists = New(
		"ITEM_EXISTS",
		"Item with this URL already exists",
		http.StatusConflict,
	)

	ErrTaskNotFound = New(
		"TASK_NOT_FOUND",
		"Monitoring task not found",
		http.StatusNotFound,
	)

	ErrTaskExists = New(
		"TASK_EXISTS",
		"Monitoring task already exists for this chat",
		http.StatusConflict,
	)

	ErrTaskURLMonitored = New(
		"TASK_URL_MONITORED",
		"URL is already being monitored for this chat",
		http.StatusBadRequest,
	)

	ErrCityNotFound = New(
		"CITY_NOT_FOUND",
		"City not found",
		http.StatusNotFound,
	)

	ErrCityExists = New(
		"CITY_EXISTS",
		"City with this normalized name already exists",
		http.StatusConflict,
	)

	ErrDistrictNotFound = New(
		"DISTRICT_NOT_FOUND",
		"District not found",
		http.StatusNotFound,
	)

	ErrDistrictExists = New(
		"DISTRICT_EXISTS",
		"District with this normalized name already exists in the city",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
