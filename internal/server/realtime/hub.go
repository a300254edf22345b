// Package realtime pushes row changes to websocket subscribers. Each
// connection follows one "<table>:<ledger>" channel.
package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/kouden/internal/logging"
	"github.com/dmitrijs2005/kouden/internal/models"
)

// SendBuffer is the number of events queued per subscriber before new ones
// are dropped.
const SendBuffer = 64

type subscriber struct {
	channel string
	userID  string
	send    chan []byte
}

// Hub fans published events out to the subscribers of a channel. Publish
// never blocks on a slow subscriber.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[*subscriber]struct{}
	logger logging.Logger
}

func NewHub(logger logging.Logger) *Hub {
	return &Hub{
		subs:   map[string]map[*subscriber]struct{}{},
		logger: logger.With("module", "realtime_hub"),
	}
}

func (h *Hub) subscribe(channel, userID string) *subscriber {
	s := &subscriber{channel: channel, userID: userID, send: make(chan []byte, SendBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[channel] == nil {
		h.subs[channel] = map[*subscriber]struct{}{}
	}
	h.subs[channel][s] = struct{}{}
	return s
}

func (h *Hub) unsubscribe(s *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.subs[s.channel]
	if _, ok := set[s]; !ok {
		return
	}
	delete(set, s)
	if len(set) == 0 {
		delete(h.subs, s.channel)
	}
	close(s.send)
}

// Subscribers reports how many connections follow channel.
func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[channel])
}

func (h *Hub) Publish(channel string, ev models.Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error(context.Background(), "event encode failed", "channel", channel, "err", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs[channel] {
		select {
		case s.send <- msg:
		default:
			h.logger.Warn(context.Background(), "subscriber too slow, event dropped", "channel", channel, "user", s.userID)
		}
	}
}
