package ws

import (
	"net/http"

	v1 "github.com/dimassfeb-09/sima-app-web/internal/handler/http/v1"
	"github.com/dimassfeb-09/sima-app-web/internal/maps"
	"github.com/dimassfeb-09/sima-app-web/internal/realtime"
	"github.com/dimassfeb-09/sima-app-web/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Gateway обслуживает websocket-подключения дашборда: пуш-уведомления
// о новых отчетах и обновления состояния карты.
type Gateway struct {
	upgrader      websocket.Upgrader
	orgService    service.OrganizationService
	reportService service.ReportService
	source        realtime.EventSource
	routes        maps.RouteFetcher
	logger        *logrus.Logger
}

// NewGateway создает websocket-шлюз дашборда
func NewGateway(orgService service.OrganizationService, reportService service.ReportService, source realtime.EventSource, routes maps.RouteFetcher, logger *logrus.Logger) *Gateway {
	return &Gateway{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Происхождение проверяет CORS-слой HTTP API
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		orgService:    orgService,
		reportService: reportService,
		source:        source,
		routes:        routes,
		logger:        logger,
	}
}

// Handle апгрейдит соединение и запускает сессию дашборда.
// Подключение без организации деградирует до эхо-сессии настроек:
// подписка на события и карта не поднимаются.
func (g *Gateway) Handle(c *gin.Context) {
	userID, ok := v1.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	log := g.logger.WithField("user_id", userID)

	org, err := g.orgService.GetForUser(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get organization for websocket session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade websocket connection")
		return
	}

	s := newSession(conn, org, g.reportService, g.source, g.routes, g.logger)
	s.run(c.Request.Context())
}
