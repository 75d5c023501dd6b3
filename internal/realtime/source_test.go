package realtime

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStream_DeliversPayloads(t *testing.T) {
	// Подготовка
	in := make(chan *redis.Message, 1)
	stream := &redisStream{
		in:   in,
		out:  make(chan []byte),
		done: make(chan struct{}),
	}
	go stream.pump()

	// Действие
	in <- &redis.Message{Payload: "hello"}

	// Проверки
	select {
	case payload := <-stream.Events():
		assert.Equal(t, []byte("hello"), payload)
	case <-time.After(time.Second):
		t.Fatal("payload not delivered")
	}

	// Закрытие входа закрывает и выходной канал
	close(in)
	select {
	case _, ok := <-stream.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("out not closed after in closed")
	}
}

func TestRedisStream_CloseAbandonsUndeliveredMessage(t *testing.T) {
	// Подготовка: сообщение попадает в поток, но получатель его не читает
	in := make(chan *redis.Message, 1)
	stream := &redisStream{
		in:   in,
		out:  make(chan []byte),
		done: make(chan struct{}),
	}
	go stream.pump()

	in <- &redis.Message{Payload: "in-flight"}
	// Даем pump заблокироваться на отправке в out
	time.Sleep(20 * time.Millisecond)

	// Действие: закрываем поток, не прочитав сообщение
	stream.closeOnce.Do(func() {
		close(stream.done)
	})
	time.Sleep(50 * time.Millisecond)

	// Проверки: pump завершился и закрыл out, не зависнув на
	// недоставленном сообщении
	select {
	case _, ok := <-stream.Events():
		require.False(t, ok, "stale payload delivered after close")
	case <-time.After(time.Second):
		t.Fatal("pump still blocked after close")
	}
}
