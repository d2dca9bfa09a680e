package domain

import "time"

// DispatchFilter - критерии выборки объявлений для отправки по задаче.
// Географические условия включающие: объявление с нераспознанной локацией
// проходит фильтр города/района, чтобы не терять потенциально релевантное.
type DispatchFilter struct {
	// SourceURL - точное совпадение с URL-источником задачи
	SourceURL string

	// Since - нижняя граница first_seen (строго больше)
	Since time.Time

	// CityID - фильтр по городу задачи; nil означает без ограничения
	CityID *int64

	// SentinelCityID - ID города-заглушки "unknown", если он существует.
	// При nil условие по городу вырождается в простое равенство.
	SentinelCityID *int64

	// DistrictIDs - разрешённые районы задачи; пустой список означает
	// отсутствие ограничения по районам
	DistrictIDs []int64

	// SentinelDistrictIDs - районы-заглушки, включаемые вместе с DistrictIDs
	SentinelDistrictIDs []int64
}
