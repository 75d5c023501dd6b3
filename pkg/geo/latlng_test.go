package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLatLng_Success(t *testing.T) {
	p := ParseLatLng("-6.2238477, 106.9694887")

	require.True(t, p.Valid())
	assert.InDelta(t, -6.2238477, p.Latitude, 1e-9)
	assert.InDelta(t, 106.9694887, p.Longitude, 1e-9)
}

func TestParseLatLng_Whitespace(t *testing.T) {
	// Произвольные пробелы вокруг запятой должны игнорироваться
	p := ParseLatLng("  -6.2238477 ,   106.9694887  ")

	require.True(t, p.Valid())
	assert.InDelta(t, -6.2238477, p.Latitude, 1e-9)
	assert.InDelta(t, 106.9694887, p.Longitude, 1e-9)
}

func TestParseLatLng_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"non numeric", "abc,def"},
		{"missing comma", "-6.2238477 106.9694887"},
		{"empty string", ""},
		{"only comma", ","},
		{"half numeric", "-6.22,def"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ParseLatLng(tc.input)

			// Некорректный ввод не паникует и не рендерится
			assert.False(t, p.Valid())
		})
	}
}

func TestParseLatLng_HalfNumericKeepsParsedComponent(t *testing.T) {
	p := ParseLatLng("-6.22,def")

	assert.InDelta(t, -6.22, p.Latitude, 1e-9)
	assert.True(t, math.IsNaN(p.Longitude))
}

func TestLatLng_Valid_OutOfRange(t *testing.T) {
	assert.False(t, LatLng{Latitude: 91, Longitude: 0}.Valid())
	assert.False(t, LatLng{Latitude: 0, Longitude: 181}.Valid())
	assert.True(t, LatLng{Latitude: -90, Longitude: 180}.Valid())
}

func TestDistanceKm(t *testing.T) {
	jakarta := LatLng{Latitude: -6.2088, Longitude: 106.8456}
	bandung := LatLng{Latitude: -6.9175, Longitude: 107.6191}

	d := DistanceKm(jakarta, bandung)

	// Около 118 км по прямой
	assert.InDelta(t, 118, d, 3)
	assert.Zero(t, DistanceKm(jakarta, jakarta))
}
