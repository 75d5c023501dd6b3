package ws

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dimassfeb-09/sima-app-web/internal/maps"
	"github.com/dimassfeb-09/sima-app-web/internal/models"
	"github.com/dimassfeb-09/sima-app-web/internal/notify"
	"github.com/dimassfeb-09/sima-app-web/internal/realtime"
	"github.com/dimassfeb-09/sima-app-web/internal/service"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Типы кадров сервер -> клиент
const (
	frameNotification = "notification"
	frameMapState     = "map_state"
)

// Типы сообщений клиент -> сервер
const (
	messageSelectMarker = "select_marker"
	messageSound        = "sound"
	messageRefetch      = "refetch"
)

type serverFrame struct {
	Type         string               `json:"type"`
	Notification *notify.Notification `json:"notification,omitempty"`
	MapState     *maps.State          `json:"map_state,omitempty"`
}

type clientMessage struct {
	Type    string `json:"type"`
	UserID  int64  `json:"user_id,omitempty"`
	Enabled bool   `json:"enabled,omitempty"`
}

// session - одно websocket-подключение дашборда. Владеет подпиской
// на события отчетов и серверным состоянием карты, закрывает оба
// ресурса при обрыве соединения.
type session struct {
	conn          *websocket.Conn
	reportService service.ReportService
	logger        *logrus.Entry

	orgID        int64
	instanceType string
	mapSession   *maps.Session
	listener     *realtime.Listener
	soundEnabled atomic.Bool

	writeMu sync.Mutex
}

func newSession(conn *websocket.Conn, org *models.Organization, reportService service.ReportService, source realtime.EventSource, routes maps.RouteFetcher, logger *logrus.Logger) *session {
	s := &session{
		conn:          conn,
		reportService: reportService,
		logger:        logger.WithField("component", "ws_session"),
	}
	// Звук по умолчанию включен, клиент переключает его сообщением sound
	s.soundEnabled.Store(true)

	if org != nil {
		s.orgID = org.ID
		s.instanceType = org.InstanceType
		s.mapSession = maps.NewSession(*org, routes, logger, s.pushMapState)
		s.listener = realtime.NewListener(source, logger)
	}
	return s
}

// run обслуживает соединение до его обрыва
func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.conn.Close()

	if s.mapSession != nil {
		s.mapSession.Start(ctx)
		defer s.mapSession.Close()

		dispatcher := notify.NewDispatcher(notify.Options{
			Toast:   true,
			Sound:   true,
			Refetch: func() { s.refetch(ctx) },
		}, s, s, s.instanceType, s.logger.Logger)

		s.listener.Listen(ctx, s.orgID, dispatcher.Handle)
		defer s.listener.Close()

		s.refetch(ctx)
	}

	s.readLoop(ctx)
}

func (s *session) readLoop(ctx context.Context) {
	for {
		var msg clientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.WithError(err).Warn("Websocket connection closed unexpectedly")
			}
			return
		}

		switch msg.Type {
		case messageSelectMarker:
			if s.mapSession != nil {
				s.mapSession.Select(ctx, msg.UserID)
			}
		case messageSound:
			s.soundEnabled.Store(msg.Enabled)
		case messageRefetch:
			s.refetch(ctx)
		default:
			s.logger.WithField("type", msg.Type).Debug("Unknown websocket message type")
		}
	}
}

// refetch перечитывает список отчетов организации и обновляет маркеры.
// Сбой чтения оставляет прежнее состояние карты.
func (s *session) refetch(ctx context.Context) {
	if s.mapSession == nil {
		return
	}

	assignments, err := s.reportService.ListAssignments(ctx, s.orgID)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to refetch assignments")
		return
	}
	s.mapSession.SetReports(assignments)
}

// Notify отправляет кадр уведомления клиенту
func (s *session) Notify(n notify.Notification) {
	s.writeFrame(serverFrame{Type: frameNotification, Notification: &n})
}

// SoundEnabled возвращает текущую настройку звука этого подключения
func (s *session) SoundEnabled() bool {
	return s.soundEnabled.Load()
}

func (s *session) pushMapState(state maps.State) {
	s.writeFrame(serverFrame{Type: frameMapState, MapState: &state})
}

func (s *session) writeFrame(frame serverFrame) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.conn.WriteJSON(frame); err != nil {
		s.logger.WithError(err).Debug("Failed to write websocket frame")
	}
}
