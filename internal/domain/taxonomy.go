package domain

// UnknownName - имя-заглушка для нераспознанных городов и районов.
// Нормализованная форма ("unknown") служит ключом поиска сентинела.
const (
	UnknownName           = "Unknown"
	UnknownNameNormalized = "unknown"
)

// City представляет город из таксономии локаций
type City struct {
	ID             int64  `json:"id" db:"id"`
	NameRaw        string `json:"name_raw" db:"name_raw"`
	NameNormalized string `json:"name_normalized" db:"name_normalized"`
}

// District представляет район, всегда принадлежащий ровно одному городу.
// Имена районов уникальны только в пределах города.
type District struct {
	ID             int64  `json:"id" db:"id"`
	CityID         int64  `json:"city_id" db:"city_id"`
	NameRaw        string `json:"name_raw" db:"name_raw"`
	NameNormalized string `json:"name_normalized" db:"name_normalized"`
}

// ResolvedLocation - результат разбора сырой строки локации
type ResolvedLocation struct {
	City     *City     `json:"city"`
	District *District `json:"district"`
}
