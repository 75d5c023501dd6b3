package realtime

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// EventStream - поток сырых сообщений одного открытого канала.
// Канал Events закрывается после Close или при потере соединения.
type EventStream interface {
	Events() <-chan []byte
	Close() error
}

// EventSource открывает потоки сообщений по имени канала
type EventSource interface {
	Subscribe(ctx context.Context, channel string) (EventStream, error)
}

// RedisEventSource - реализация EventSource поверх Redis pub/sub
type RedisEventSource struct {
	redisClient *redis.Client
}

// NewRedisEventSource создает новый RedisEventSource
func NewRedisEventSource(client *redis.Client) *RedisEventSource {
	return &RedisEventSource{
		redisClient: client,
	}
}

// Subscribe открывает подписку на канал и подтверждает ее у сервера
func (s *RedisEventSource) Subscribe(ctx context.Context, channel string) (EventStream, error) {
	pubsub := s.redisClient.Subscribe(ctx, channel)

	// Дожидаемся подтверждения подписки, иначе сбой транспорта
	// обнаружится только при первом событии
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	stream := &redisStream{
		pubsub: pubsub,
		in:     pubsub.Channel(),
		out:    make(chan []byte),
		done:   make(chan struct{}),
	}
	go stream.pump()
	return stream, nil
}

type redisStream struct {
	pubsub    *redis.PubSub
	in        <-chan *redis.Message
	out       chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func (s *redisStream) Events() <-chan []byte {
	return s.out
}

// pump перекладывает сообщения Redis в выходной канал.
// Завершается после закрытия подписки, даже если получатель
// уже перестал читать out.
func (s *redisStream) pump() {
	defer close(s.out)
	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-s.in:
			if !ok {
				return
			}
			select {
			case s.out <- []byte(msg.Payload):
			case <-s.done:
				return
			}
		}
	}
}

func (s *redisStream) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	return s.pubsub.Close()
}
