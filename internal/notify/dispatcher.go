package notify

import (
	"fmt"

	"github.com/dimassfeb-09/sima-app-web/internal/realtime"
	"github.com/sirupsen/logrus"
)

// Options - флаги реакций на событие нового отчета. Набор реакций
// задает владелец подписки (сессия дашборда).
type Options struct {
	// Toast включает всплывающее уведомление
	Toast bool
	// Sound включает звуковое уведомление (подавляется настройкой пользователя)
	Sound bool
	// Refetch, если задан, вызывается для обновления списка отчетов
	Refetch func()
}

// Toast - данные всплывающего уведомления о новом отчете
type Toast struct {
	ReportID int64  `json:"report_id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Link     string `json:"link"`
}

// Notification - кадр уведомления, уходящий потребителю
type Notification struct {
	Toast *Toast `json:"toast,omitempty"`
	Sound string `json:"sound,omitempty"`
}

// Sink принимает готовые уведомления (websocket-сессия дашборда)
type Sink interface {
	Notify(n Notification)
}

// SoundPreference отдает текущее значение пользовательской настройки
// "звуковые уведомления включены". Настройка принадлежит клиенту
// и на сервере не сохраняется.
type SoundPreference interface {
	SoundEnabled() bool
}

// Dispatcher превращает события новых отчетов в реакции по флагам Options
type Dispatcher struct {
	opts         Options
	sink         Sink
	prefs        SoundPreference
	instanceType string
	logger       *logrus.Logger
}

// NewDispatcher создает Dispatcher для одной подписки.
// instanceType определяет звуковой файл уведомления организации.
func NewDispatcher(opts Options, sink Sink, prefs SoundPreference, instanceType string, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		opts:         opts,
		sink:         sink,
		prefs:        prefs,
		instanceType: instanceType,
		logger:       logger,
	}
}

// Handle обрабатывает одно событие нового отчета
func (d *Dispatcher) Handle(event realtime.Event) {
	log := d.logger.WithFields(logrus.Fields{
		"event_id":        event.ID,
		"report_id":       event.ReportID,
		"organization_id": event.OrganizationID,
	})
	log.Debug("Dispatching new report notification")

	var n Notification
	deliver := false

	if d.opts.Toast {
		n.Toast = &Toast{
			ReportID: event.ReportID,
			Title:    event.Title,
			Message:  "Terdapat laporan baru",
			Link:     fmt.Sprintf("/report/%d", event.ReportID),
		}
		deliver = true
	}

	if d.opts.Sound && d.prefs.SoundEnabled() {
		n.Sound = fmt.Sprintf("/assets/sound/%s.mp3", d.instanceType)
		deliver = true
	}

	if deliver {
		d.sink.Notify(n)
	}

	if d.opts.Refetch != nil {
		d.opts.Refetch()
	}
}
