package network

import (
	"sync"

	"hexcrawl-server/pkg/api"
)

// Broadcaster занимается только рассылкой снимков мира подписчикам:
// игровому клиенту и наблюдателям (observer-соединениям).
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: имя подписчика -> личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для подписчика.
func (b *Broadcaster) Register(name string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[name]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[name] = ch
	return ch
}

// Unregister удаляет подписчика.
func (b *Broadcaster) Unregister(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[name]; ok {
		close(ch)
		delete(b.subscribers, name)
	}
}

// SendTo отправляет сообщение конкретному подписчику (Unicast).
// Переполненный канал означает отставшего клиента, сообщение
// отбрасывается молча.
func (b *Broadcaster) SendTo(name string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[name]; ok {
		select {
		case ch <- msg:
		default:
		}
	}
}

// Broadcast отправляет всем (нужен для зрителей).
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
