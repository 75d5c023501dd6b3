package geo

import "math"

// Радиус Земли в километрах.
const earthRadiusKm = 6371.0

// DistanceKm возвращает расстояние между двумя точками в километрах
// по формуле гаверсинусов. Используется при перерасчете дистанции
// назначения после передачи другой организации.
func DistanceKm(a, b LatLng) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
