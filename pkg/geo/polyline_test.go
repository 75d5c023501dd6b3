package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Каноническая последовательность из документации формата polyline.
var referencePoints = []LatLng{
	{Latitude: 38.5, Longitude: -120.2},
	{Latitude: 40.7, Longitude: -120.95},
	{Latitude: 43.252, Longitude: -126.453},
}

const referenceEncoded = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

func TestDecodePolyline_Reference(t *testing.T) {
	points, err := DecodePolyline(referenceEncoded)

	require.NoError(t, err)
	require.Len(t, points, len(referencePoints))
	for i, want := range referencePoints {
		assert.InDelta(t, want.Latitude, points[i].Latitude, 1e-5)
		assert.InDelta(t, want.Longitude, points[i].Longitude, 1e-5)
	}
}

func TestEncodePolyline_Reference(t *testing.T) {
	assert.Equal(t, referenceEncoded, EncodePolyline(referencePoints))
}

func TestPolyline_RoundTrip(t *testing.T) {
	original := []LatLng{
		{Latitude: -6.2238477, Longitude: 106.9694887},
		{Latitude: -6.2240011, Longitude: 106.9701234},
		{Latitude: -6.2255999, Longitude: 106.9712000},
		{Latitude: 0, Longitude: 0},
		{Latitude: 89.99999, Longitude: -179.99999},
	}

	decoded, err := DecodePolyline(EncodePolyline(original))

	require.NoError(t, err)
	require.Len(t, decoded, len(original))
	for i, want := range original {
		assert.InDelta(t, want.Latitude, decoded[i].Latitude, 1e-5)
		assert.InDelta(t, want.Longitude, decoded[i].Longitude, 1e-5)
	}
}

func TestDecodePolyline_Empty(t *testing.T) {
	points, err := DecodePolyline("")

	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestDecodePolyline_Truncated(t *testing.T) {
	// Обрываем закодированную строку посреди группы с битом продолжения
	_, err := DecodePolyline("_p~iF~ps|U_")

	assert.Error(t, err)
}
