package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStream - тестовый поток событий на обычном канале
type fakeStream struct {
	events chan []byte
	closed atomic.Bool
}

func newFakeStream() *fakeStream {
	return &fakeStream{events: make(chan []byte, 16)}
}

func (s *fakeStream) Events() <-chan []byte { return s.events }

func (s *fakeStream) Close() error {
	s.closed.Store(true)
	return nil
}

// fakeSource отдает заранее подготовленные потоки по порядку
type fakeSource struct {
	streams []*fakeStream
	err     error
	calls   int
}

func (f *fakeSource) Subscribe(_ context.Context, _ string) (EventStream, error) {
	if f.err != nil {
		return nil, f.err
	}
	stream := f.streams[f.calls]
	f.calls++
	return stream, nil
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func marshalEvent(t *testing.T, event Event) []byte {
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return payload
}

func waitForCount(t *testing.T, counter *atomic.Int64, want int64) {
	deadline := time.After(2 * time.Second)
	for counter.Load() != want {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d events, got %d", want, counter.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestListener_DeliversEvents(t *testing.T) {
	// Подготовка
	stream := newFakeStream()
	source := &fakeSource{streams: []*fakeStream{stream}}
	listener := NewListener(source, newTestLogger())
	defer listener.Close()

	var count atomic.Int64
	listener.Listen(context.Background(), 5, func(Event) { count.Add(1) })

	// Действие
	stream.events <- marshalEvent(t, NewReportEvent(5, 10, "Kebakaran"))

	// Проверки
	waitForCount(t, &count, 1)
}

func TestListener_RelistenClosesPreviousSubscription(t *testing.T) {
	// Подготовка
	first := newFakeStream()
	second := newFakeStream()
	source := &fakeSource{streams: []*fakeStream{first, second}}
	listener := NewListener(source, newTestLogger())
	defer listener.Close()

	var count atomic.Int64
	listener.Listen(context.Background(), 5, func(Event) { count.Add(1) })

	// Действие: повторная подписка (смена организации)
	listener.Listen(context.Background(), 7, func(Event) { count.Add(1) })

	// Проверки: старый поток закрыт, событие доставляется один раз
	assert.True(t, first.closed.Load())

	second.events <- marshalEvent(t, NewReportEvent(7, 11, "Banjir"))
	waitForCount(t, &count, 1)
}

func TestListener_NoOrganizationMeansNoSubscription(t *testing.T) {
	// Подготовка
	source := &fakeSource{}
	listener := NewListener(source, newTestLogger())
	defer listener.Close()

	// Действие
	listener.Listen(context.Background(), 0, func(Event) {})

	// Проверки
	assert.Equal(t, 0, source.calls)
}

func TestListener_TransportFailureDegradesSilently(t *testing.T) {
	// Подготовка
	source := &fakeSource{err: fmt.Errorf("redis down")}
	listener := NewListener(source, newTestLogger())
	defer listener.Close()

	// Действие: сбой транспорта не паникует и не роняет вызов
	listener.Listen(context.Background(), 5, func(Event) {
		t.Fatal("handler should not be called")
	})
}

func TestListener_EventAfterCloseIsDiscarded(t *testing.T) {
	// Подготовка
	stream := newFakeStream()
	source := &fakeSource{streams: []*fakeStream{stream}}
	listener := NewListener(source, newTestLogger())

	var count atomic.Int64
	listener.Listen(context.Background(), 5, func(Event) { count.Add(1) })

	// Действие
	listener.Close()
	stream.events <- marshalEvent(t, NewReportEvent(5, 10, "Kebakaran"))

	// Проверки: событие, пришедшее после закрытия, не обрабатывается
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(0), count.Load())
}

func TestListener_MalformedPayloadIsSkipped(t *testing.T) {
	// Подготовка
	stream := newFakeStream()
	source := &fakeSource{streams: []*fakeStream{stream}}
	listener := NewListener(source, newTestLogger())
	defer listener.Close()

	var count atomic.Int64
	listener.Listen(context.Background(), 5, func(Event) { count.Add(1) })

	// Действие: мусор в канале не прерывает доставку
	stream.events <- []byte("not json")
	stream.events <- marshalEvent(t, NewReportEvent(5, 10, "Kebakaran"))

	// Проверки
	waitForCount(t, &count, 1)
}
