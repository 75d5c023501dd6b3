package geo

import (
	"fmt"
	"strings"
)

// Точность кодирования polyline: 5 знаков после запятой.
const polylinePrecision = 1e5

// DecodePolyline декодирует строку polyline (формат OSRM/Google, precision 5)
// в упорядоченный список точек. Каждая координата закодирована как знаковое
// смещение относительно предыдущей точки: zig-zag, группы по 5 бит,
// бит продолжения 0x20, результат делится на 1e5.
func DecodePolyline(encoded string) ([]LatLng, error) {
	points := make([]LatLng, 0, len(encoded)/4)
	var lat, lng int64

	index := 0
	for index < len(encoded) {
		dLat, next, err := decodeDelta(encoded, index)
		if err != nil {
			return nil, err
		}
		lat += dLat

		dLng, next, err := decodeDelta(encoded, next)
		if err != nil {
			return nil, err
		}
		lng += dLng
		index = next

		points = append(points, LatLng{
			Latitude:  float64(lat) / polylinePrecision,
			Longitude: float64(lng) / polylinePrecision,
		})
	}

	return points, nil
}

// decodeDelta читает одно знаковое смещение начиная с позиции index.
// Возвращает смещение и позицию следующего непрочитанного символа.
func decodeDelta(encoded string, index int) (int64, int, error) {
	var result int64
	var shift uint

	for {
		if index >= len(encoded) {
			return 0, index, fmt.Errorf("polyline truncated at position %d", index)
		}
		b := int64(encoded[index]) - 63
		if b < 0 {
			return 0, index, fmt.Errorf("invalid polyline character at position %d", index)
		}
		index++

		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	// Обратное zig-zag преобразование
	delta := result >> 1
	if result&1 != 0 {
		delta = ^delta
	}
	return delta, index, nil
}

// EncodePolyline кодирует список точек в строку polyline (precision 5).
// Используется в тестах маршрутов и при подготовке фикстур.
func EncodePolyline(points []LatLng) string {
	var sb strings.Builder
	var prevLat, prevLng int64

	for _, p := range points {
		lat := int64(roundHalfAway(p.Latitude * polylinePrecision))
		lng := int64(roundHalfAway(p.Longitude * polylinePrecision))

		encodeDelta(&sb, lat-prevLat)
		encodeDelta(&sb, lng-prevLng)

		prevLat, prevLng = lat, lng
	}

	return sb.String()
}

func encodeDelta(sb *strings.Builder, delta int64) {
	// zig-zag: знак уходит в младший бит
	v := delta << 1
	if delta < 0 {
		v = ^v
	}
	for v >= 0x20 {
		sb.WriteByte(byte((0x20 | (v & 0x1f)) + 63))
		v >>= 5
	}
	sb.WriteByte(byte(v + 63))
}

func roundHalfAway(v float64) float64 {
	if v < 0 {
		return -float64(int64(-v + 0.5))
	}
	return float64(int64(v + 0.5))
}
