package maps

import (
	"context"
	"sync"
	"time"

	"github.com/dimassfeb-09/sima-app-web/internal/models"
	"github.com/dimassfeb-09/sima-app-web/pkg/geo"
	"github.com/sirupsen/logrus"
)

// RouteFetcher запрашивает автомобильный маршрут между двумя точками
type RouteFetcher interface {
	FetchRoute(ctx context.Context, origin, dest geo.LatLng) ([]geo.LatLng, error)
}

// MarkerView - маркер с вычисленными атрибутами отрисовки
type MarkerView struct {
	models.Marker
	Color    string  `json:"color"`
	Radius   float64 `json:"radius"`
	Selected bool    `json:"selected"`
}

// State - снимок состояния карты, уходящий в сессию дашборда
type State struct {
	Organization models.Marker `json:"organization"`
	Markers      []MarkerView  `json:"markers"`
	Route        []geo.LatLng  `json:"route,omitempty"`
}

type markerState struct {
	marker models.Marker
	pulse  pulse
}

// Session хранит серверное состояние карты одного подключения дашборда:
// маркеры с пульсирующим радиусом, не более одной открытой карточки
// и не более одной активной линии маршрута. Жизненный цикл анимации
// привязан к контексту сессии: после отмены таймеры не тикают и
// обновления не публикуются.
type Session struct {
	org    models.Organization
	routes RouteFetcher
	logger *logrus.Logger
	push   func(State)

	mu       sync.Mutex
	markers  []*markerState
	selected int
	route    []geo.LatLng
	routeSeq uint64
	closed   bool
	cancel   context.CancelFunc
}

// NewSession создает сессию карты для организации.
// push вызывается на каждом обновлении состояния.
func NewSession(org models.Organization, routes RouteFetcher, logger *logrus.Logger, push func(State)) *Session {
	return &Session{
		org:      org,
		routes:   routes,
		logger:   logger,
		push:     push,
		selected: -1,
	}
}

// Start запускает цикл анимации маркеров.
// Цикл останавливается при отмене контекста или Close.
func (s *Session) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	go s.run(ctx)
}

func (s *Session) run(ctx context.Context) {
	ticker := time.NewTicker(pulseInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick делает один шаг пульсации всех маркеров и публикует снимок
func (s *Session) tick() {
	s.mu.Lock()
	if s.closed || len(s.markers) == 0 {
		s.mu.Unlock()
		return
	}
	for _, m := range s.markers {
		m.pulse.step()
	}
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.push(state)
}

// SetReports заменяет набор маркеров отчетов. Выбор и активная линия
// маршрута сбрасываются вместе со старыми маркерами, незавершенные
// запросы маршрута инвалидируются.
func (s *Session) SetReports(assignments []*models.Assignment) {
	markers := ReportMarkers(assignments)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.markers = make([]*markerState, 0, len(markers))
	for _, m := range markers {
		s.markers = append(s.markers, &markerState{marker: m, pulse: newPulse()})
	}
	s.selected = -1
	s.route = nil
	s.routeSeq++
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.push(state)
}

// Select открывает карточку маркера и перестраивает линию маршрута
// от организации до выбранной точки. Предыдущая карточка закрывается,
// прежняя линия убирается до запроса новой. При сбое маршрутизации
// новая линия не рисуется, ошибка только логируется.
func (s *Session) Select(ctx context.Context, userID int64) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	idx := -1
	for i, m := range s.markers {
		if m.marker.UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return
	}

	s.selected = idx
	s.route = nil
	s.routeSeq++
	seq := s.routeSeq

	origin := geo.LatLng{Latitude: s.org.Latitude, Longitude: s.org.Longitude}
	dest := geo.LatLng{
		Latitude:  s.markers[idx].marker.Latitude,
		Longitude: s.markers[idx].marker.Longitude,
	}
	state := s.snapshotLocked()
	s.mu.Unlock()

	s.push(state)

	points, err := s.routes.FetchRoute(ctx, origin, dest)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).
			Warn("Failed to fetch route for selected marker")
		return
	}

	s.mu.Lock()
	// Ответ, пришедший после закрытия сессии или повторного выбора,
	// отбрасывается
	if s.closed || seq != s.routeSeq {
		s.mu.Unlock()
		return
	}
	s.route = points
	state = s.snapshotLocked()
	s.mu.Unlock()

	s.push(state)
}

// Close останавливает анимацию и запрещает дальнейшие публикации
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (s *Session) snapshotLocked() State {
	views := make([]MarkerView, len(s.markers))
	for i, m := range s.markers {
		views[i] = MarkerView{
			Marker:   m.marker,
			Color:    m.marker.Status.Color(),
			Radius:   m.pulse.radius,
			Selected: i == s.selected,
		}
	}

	var route []geo.LatLng
	if len(s.route) > 0 {
		route = make([]geo.LatLng, len(s.route))
		copy(route, s.route)
	}

	return State{
		Organization: OrganizationMarker(&s.org),
		Markers:      views,
		Route:        route,
	}
}
