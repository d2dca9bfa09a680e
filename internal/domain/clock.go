package domain

import "time"

var warsawTZ *time.Location

func init() {
	tz, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		tz = time.FixedZone("CET", 3600)
	}
	warsawTZ = tz
}

// NowWarsaw возвращает текущее время в Варшаве как naive-время (без зоны),
// в том виде, в котором метки времени хранятся в базе
func NowWarsaw() time.Time {
	now := time.Now().In(warsawTZ)
	return time.Date(
		now.Year(), now.Month(), now.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(),
		time.UTC,
	)
}
