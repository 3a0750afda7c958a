// Package notify is an in-process pub/sub hub the app uses to surface
// background events (admin mutation results, payment outcomes) to whichever
// page is currently listening.
package notify

import "sync"

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level
	Message string
}

// Hub fans notifications out to all current subscribers. Publishing never
// blocks: a subscriber that has stopped draining its channel misses events
// instead of stalling the publisher.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Notification
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Notification)}
}

// Subscribe registers a listener. The returned cancel func must be called
// when the listener goes away; it closes the channel.
func (h *Hub) Subscribe() (<-chan Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan Notification, 16)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (h *Hub) Publish(n Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- n:
		default:
		}
	}
}

func (h *Hub) Info(msg string)    { h.Publish(Notification{Level: LevelInfo, Message: msg}) }
func (h *Hub) Success(msg string) { h.Publish(Notification{Level: LevelSuccess, Message: msg}) }
func (h *Hub) Error(msg string)   { h.Publish(Notification{Level: LevelError, Message: msg}) }
