package notify

import (
	"bytes"
	"testing"

	"github.com/dimassfeb-09/sima-app-web/internal/realtime"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	notifications []Notification
}

func (s *fakeSink) Notify(n Notification) {
	s.notifications = append(s.notifications, n)
}

type fakePrefs struct {
	sound bool
}

func (p *fakePrefs) SoundEnabled() bool { return p.sound }

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestDispatcher_ToastAndSound(t *testing.T) {
	// Подготовка
	sink := &fakeSink{}
	refetched := false
	d := NewDispatcher(Options{
		Toast:   true,
		Sound:   true,
		Refetch: func() { refetched = true },
	}, sink, &fakePrefs{sound: true}, "police", newTestLogger())

	// Действие
	d.Handle(realtime.NewReportEvent(5, 10, "Kebakaran"))

	// Проверки
	require.Len(t, sink.notifications, 1)
	n := sink.notifications[0]
	require.NotNil(t, n.Toast)
	assert.Equal(t, int64(10), n.Toast.ReportID)
	assert.Equal(t, "Kebakaran", n.Toast.Title)
	assert.Equal(t, "Terdapat laporan baru", n.Toast.Message)
	assert.Equal(t, "/report/10", n.Toast.Link)
	assert.Equal(t, "/assets/sound/police.mp3", n.Sound)
	assert.True(t, refetched)
}

func TestDispatcher_SoundSuppressedByPreference(t *testing.T) {
	// Подготовка: пользователь выключил звук в настройках сессии
	sink := &fakeSink{}
	d := NewDispatcher(Options{Toast: true, Sound: true}, sink, &fakePrefs{sound: false}, "police", newTestLogger())

	// Действие
	d.Handle(realtime.NewReportEvent(5, 10, "Kebakaran"))

	// Проверки: тост доставлен, звук подавлен
	require.Len(t, sink.notifications, 1)
	assert.NotNil(t, sink.notifications[0].Toast)
	assert.Empty(t, sink.notifications[0].Sound)
}

func TestDispatcher_RefetchOnly(t *testing.T) {
	// Подготовка: подписка без тоста и звука, только обновление списка
	sink := &fakeSink{}
	refetched := false
	d := NewDispatcher(Options{Refetch: func() { refetched = true }}, sink, &fakePrefs{sound: true}, "police", newTestLogger())

	// Действие
	d.Handle(realtime.NewReportEvent(5, 10, "Kebakaran"))

	// Проверки: уведомление не отправляется
	assert.Empty(t, sink.notifications)
	assert.True(t, refetched)
}

func TestDispatcher_SoundFileFollowsInstanceType(t *testing.T) {
	// Подготовка
	cases := map[string]string{
		"police":      "/assets/sound/police.mp3",
		"ambulance":   "/assets/sound/ambulance.mp3",
		"firefighter": "/assets/sound/firefighter.mp3",
	}

	for instanceType, want := range cases {
		sink := &fakeSink{}
		d := NewDispatcher(Options{Sound: true}, sink, &fakePrefs{sound: true}, instanceType, newTestLogger())

		// Действие
		d.Handle(realtime.NewReportEvent(5, 10, "Kebakaran"))

		// Проверки
		require.Len(t, sink.notifications, 1)
		assert.Equal(t, want, sink.notifications[0].Sound)
	}
}
