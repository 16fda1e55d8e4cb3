package network

import (
	"sync"

	"fogwalker-server/pkg/api"
)

// Broadcaster занимается только рассылкой обновлений подписчикам.
// Подписчики — зрители одной и той же сессии: все получают одинаковые
// сообщения, состояние симуляции живет в движке, не здесь.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ClientID -> личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для клиента.
func (b *Broadcaster) Register(clientID string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[clientID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[clientID] = ch
	return ch
}

// Unregister удаляет подписчика.
func (b *Broadcaster) Unregister(clientID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[clientID]; ok {
		close(ch)
		delete(b.subscribers, clientID)
	}
}

// SendTo отправляет сообщение конкретному клиенту (Unicast).
// Полный INIT-снимок уходит только новому подключению.
func (b *Broadcaster) SendTo(clientID string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[clientID]; ok {
		select {
		case ch <- msg:
		default:
			// Канал полон: медленный клиент теряет кадр, симуляцию не тормозим
		}
	}
}

// Broadcast отправляет сообщение всем подписчикам.
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

// Count возвращает число активных подписчиков.
func (b *Broadcaster) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
