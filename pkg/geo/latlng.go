package geo

import (
	"math"
	"strconv"
	"strings"
)

// LatLng представляет географическую точку (широта, долгота)
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ParseLatLng разбирает строку вида "lat,lon" в структуру LatLng.
// Строка делится по первой запятой, обе части очищаются от пробелов.
// Некорректные части (нечисловые сегменты, отсутствие запятой) дают NaN,
// вызывающая сторона обязана проверять результат через Valid().
func ParseLatLng(s string) LatLng {
	lat, lon := math.NaN(), math.NaN()

	rawLat, rawLon, found := strings.Cut(s, ",")
	if found {
		if v, err := strconv.ParseFloat(strings.TrimSpace(rawLat), 64); err == nil {
			lat = v
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(rawLon), 64); err == nil {
			lon = v
		}
	}

	return LatLng{Latitude: lat, Longitude: lon}
}

// Valid сообщает, можно ли использовать точку для отрисовки или запросов.
// Точки с NaN-компонентами не рендерятся и не отправляются в бэкенд.
func (p LatLng) Valid() bool {
	return !math.IsNaN(p.Latitude) && !math.IsNaN(p.Longitude) &&
		p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}
