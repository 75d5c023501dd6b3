package routing

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dimassfeb-09/sima-app-web/pkg/geo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestFetchRoute_Success(t *testing.T) {
	// Подготовка: эталонная полилиния с тремя точками
	const encoded = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"geometry":"` + encoded + `"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, newTestLogger())

	// Действие
	points, err := client.FetchRoute(context.Background(),
		geo.LatLng{Latitude: 38.5, Longitude: -120.2},
		geo.LatLng{Latitude: 43.252, Longitude: -126.453},
	)

	// Проверки
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.InDelta(t, 38.5, points[0].Latitude, 1e-9)
	assert.InDelta(t, -120.2, points[0].Longitude, 1e-9)
	assert.InDelta(t, 43.252, points[2].Latitude, 1e-9)

	// Координаты уходят сервису в порядке "долгота,широта"
	assert.True(t, strings.HasPrefix(gotPath, "/route/v1/driving/"), "path %q", gotPath)
	assert.Contains(t, gotPath, "-120.2,38.5;-126.453,43.252")
	assert.Equal(t, "overview=full", gotQuery)
}

func TestFetchRoute_NoRoute(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, newTestLogger())

	// Действие
	points, err := client.FetchRoute(context.Background(),
		geo.LatLng{Latitude: -6.9, Longitude: 107.6},
		geo.LatLng{Latitude: -6.91, Longitude: 107.61},
	)

	// Проверки
	require.ErrorIs(t, err, ErrNoRoute)
	assert.Nil(t, points)
}

func TestFetchRoute_ServerError(t *testing.T) {
	// Подготовка
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, newTestLogger())

	// Действие
	_, err := client.FetchRoute(context.Background(),
		geo.LatLng{Latitude: -6.9, Longitude: 107.6},
		geo.LatLng{Latitude: -6.91, Longitude: 107.61},
	)

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestFetchRoute_MalformedGeometry(t *testing.T) {
	// Подготовка: оборванная полилиния
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"geometry":"_p~iF"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, newTestLogger())

	// Действие
	_, err := client.FetchRoute(context.Background(),
		geo.LatLng{Latitude: -6.9, Longitude: 107.6},
		geo.LatLng{Latitude: -6.91, Longitude: 107.61},
	)

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geometry")
}
