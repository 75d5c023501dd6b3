package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// Listener владеет не более чем одной активной подпиской на канал
// отчетов. Повторный вызов Listen (смена организации или набора
// реакций) закрывает предыдущую подписку до открытия новой, чтобы
// исключить двойную доставку уведомлений.
type Listener struct {
	source EventSource
	logger *logrus.Logger

	mu      sync.Mutex
	current *Subscription
}

// NewListener создает Listener для одного потребителя (сессии дашборда)
func NewListener(source EventSource, logger *logrus.Logger) *Listener {
	return &Listener{
		source: source,
		logger: logger,
	}
}

// Listen открывает подписку на канал report-<orgID> и передает события
// в handler. Неположительный orgID трактуется как отсутствие организации:
// предыдущая подписка закрывается, новая не открывается.
// Сбой транспорта не возвращается наружу: функция деградирует до
// "нет push-обновлений", список отчетов продолжает работать.
func (l *Listener) Listen(ctx context.Context, orgID int64, handler func(Event)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current != nil {
		l.current.Close()
		l.current = nil
	}

	if orgID <= 0 {
		return
	}

	channel := ChannelName(orgID)
	stream, err := l.source.Subscribe(ctx, channel)
	if err != nil {
		l.logger.WithError(err).WithField("channel", channel).
			Warn("Realtime subscription failed, push updates disabled")
		return
	}

	l.current = newSubscription(stream, handler, l.logger)
}

// Close закрывает активную подписку, если она есть
func (l *Listener) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current != nil {
		l.current.Close()
		l.current = nil
	}
}

// Subscription - одна открытая подписка с гарантированным освобождением.
// После Close обработчик больше не вызывается: событие, пришедшее
// во время закрытия, отбрасывается.
type Subscription struct {
	stream EventStream
	logger *logrus.Logger

	closed    chan struct{}
	closeOnce sync.Once
	done      chan struct{}
}

func newSubscription(stream EventStream, handler func(Event), logger *logrus.Logger) *Subscription {
	s := &Subscription{
		stream: stream,
		logger: logger,
		closed: make(chan struct{}),
		done:   make(chan struct{}),
	}
	go s.run(handler)
	return s
}

func (s *Subscription) run(handler func(Event)) {
	defer close(s.done)
	events := s.stream.Events()

	for {
		select {
		case <-s.closed:
			return
		case payload, ok := <-events:
			if !ok {
				return
			}

			var event Event
			if err := json.Unmarshal(payload, &event); err != nil {
				s.logger.WithError(err).Warn("Failed to unmarshal report event")
				continue
			}

			// Событие, доставленное после закрытия, отбрасывается
			select {
			case <-s.closed:
				return
			default:
			}
			handler(event)
		}
	}
}

// Close закрывает подписку и дожидается остановки цикла доставки
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		if err := s.stream.Close(); err != nil {
			s.logger.WithError(err).Debug("Failed to close event stream")
		}
	})
	<-s.done
}
