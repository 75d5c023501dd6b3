package maps

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dimassfeb-09/sima-app-web/internal/models"
	"github.com/dimassfeb-09/sima-app-web/pkg/geo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRouteFetcher struct {
	route []geo.LatLng
	err   error
	calls int
}

func (f *stubRouteFetcher) FetchRoute(_ context.Context, _, _ geo.LatLng) ([]geo.LatLng, error) {
	f.calls++
	return f.route, f.err
}

type statePusher struct {
	mu     sync.Mutex
	states []State
}

func (p *statePusher) push(state State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.states = append(p.states, state)
}

func (p *statePusher) last(t *testing.T) State {
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.states)
	return p.states[len(p.states)-1]
}

func newTestSession(routes RouteFetcher) (*Session, *statePusher) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	org := models.Organization{
		ID:        5,
		Name:      "Polsek Coblong",
		Latitude:  -6.8846,
		Longitude: 107.6123,
		UserID:    3,
	}

	pusher := &statePusher{}
	return NewSession(org, routes, logger, pusher.push), pusher
}

func testAssignments() []*models.Assignment {
	return []*models.Assignment{
		{
			Status: models.StatusPending,
			Report: models.Report{UserID: 101, Title: "Kebakaran", Latitude: -6.9, Longitude: 107.6},
		},
		{
			Status: models.StatusProcess,
			Report: models.Report{UserID: 102, Title: "Kecelakaan", Latitude: -6.91, Longitude: 107.61},
		},
	}
}

func TestSession_SelectDrawsRoute(t *testing.T) {
	// Подготовка
	fetcher := &stubRouteFetcher{route: []geo.LatLng{{Latitude: -6.89, Longitude: 107.61}, {Latitude: -6.9, Longitude: 107.6}}}
	session, pusher := newTestSession(fetcher)
	session.SetReports(testAssignments())

	// Действие
	session.Select(context.Background(), 101)

	// Проверки: открыта одна карточка, линия маршрута построена
	state := pusher.last(t)
	require.Len(t, state.Markers, 2)
	assert.True(t, state.Markers[0].Selected)
	assert.False(t, state.Markers[1].Selected)
	assert.Equal(t, fetcher.route, state.Route)
}

func TestSession_ReselectMovesSelectionAndRoute(t *testing.T) {
	// Подготовка
	fetcher := &stubRouteFetcher{route: []geo.LatLng{{Latitude: -6.9, Longitude: 107.6}}}
	session, pusher := newTestSession(fetcher)
	session.SetReports(testAssignments())

	// Действие: выбор второго маркера закрывает карточку первого
	session.Select(context.Background(), 101)
	session.Select(context.Background(), 102)

	// Проверки
	state := pusher.last(t)
	assert.False(t, state.Markers[0].Selected)
	assert.True(t, state.Markers[1].Selected)
	assert.Equal(t, 2, fetcher.calls)
}

func TestSession_RoutingFailureLeavesNoRoute(t *testing.T) {
	// Подготовка
	fetcher := &stubRouteFetcher{err: fmt.Errorf("osrm unavailable")}
	session, pusher := newTestSession(fetcher)
	session.SetReports(testAssignments())

	// Действие
	session.Select(context.Background(), 101)

	// Проверки: карточка открыта, линия не нарисована
	state := pusher.last(t)
	assert.True(t, state.Markers[0].Selected)
	assert.Empty(t, state.Route)
}

func TestSession_SetReportsResetsSelection(t *testing.T) {
	// Подготовка
	fetcher := &stubRouteFetcher{route: []geo.LatLng{{Latitude: -6.9, Longitude: 107.6}}}
	session, pusher := newTestSession(fetcher)
	session.SetReports(testAssignments())
	session.Select(context.Background(), 101)

	// Действие: обновление списка сбрасывает выбор и маршрут
	session.SetReports(testAssignments())

	// Проверки
	state := pusher.last(t)
	for _, m := range state.Markers {
		assert.False(t, m.Selected)
	}
	assert.Empty(t, state.Route)
}

func TestSession_SelectUnknownMarkerIsNoop(t *testing.T) {
	// Подготовка
	fetcher := &stubRouteFetcher{}
	session, pusher := newTestSession(fetcher)
	session.SetReports(testAssignments())
	before := len(pusher.states)

	// Действие
	session.Select(context.Background(), 999)

	// Проверки: ни выбора, ни запроса маршрута
	assert.Equal(t, before, len(pusher.states))
	assert.Equal(t, 0, fetcher.calls)
}

func TestSession_ClosedSessionDoesNotPush(t *testing.T) {
	// Подготовка
	fetcher := &stubRouteFetcher{route: []geo.LatLng{{Latitude: -6.9, Longitude: 107.6}}}
	session, pusher := newTestSession(fetcher)
	session.SetReports(testAssignments())

	// Действие
	session.Close()
	before := len(pusher.states)
	session.SetReports(testAssignments())
	session.Select(context.Background(), 101)

	// Проверки
	assert.Equal(t, before, len(pusher.states))
}
