package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"jobswipe/internal/domain/event"

	"go.uber.org/zap"
)

var ErrHubBusy = errors.New("ws hub busy")

type delivery struct {
	keys    []string
	message []byte
}

// Hub routes events to the sockets of their recipients. A participant may
// hold several connections; each receives every event addressed to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}

	deliveries chan delivery
	log        *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		deliveries: make(chan delivery, 1024),
		log:        log,
	}
}

// Run delivers queued events until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case d := <-h.deliveries:
			h.deliver(d)
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.mu.Lock()
	set, ok := h.clients[client.key]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[client.key] = set
	}
	set[client] = struct{}{}
	total := h.countLocked()
	h.mu.Unlock()

	h.log.Debug("ws connected", zap.String("recipient", client.key), zap.Int("total_clients", total))
}

func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.mu.Lock()
	if set, ok := h.clients[client.key]; ok {
		if _, ok := set[client]; ok {
			delete(set, client)
			close(client.send)
		}
		if len(set) == 0 {
			delete(h.clients, client.key)
		}
	}
	total := h.countLocked()
	h.mu.Unlock()

	h.log.Debug("ws disconnected", zap.String("recipient", client.key), zap.Int("total_clients", total))
}

// Publish queues evt for its recipients. It never blocks; a full queue drops
// the event and reports ErrHubBusy.
func (h *Hub) Publish(_ context.Context, evt event.Event) error {
	if h == nil || len(evt.Recipients) == 0 {
		return nil
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(evt.Recipients))
	for _, r := range evt.Recipients {
		keys = append(keys, r.Key())
	}

	select {
	case h.deliveries <- delivery{keys: keys, message: b}:
		return nil
	default:
		h.log.Warn("ws event dropped", zap.String("type", evt.Type), zap.String("reason", "buffer_full"))
		return ErrHubBusy
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.countLocked()
}

// deliver sends while holding the read lock so that Unregister cannot close
// a channel mid-send.
func (h *Hub) deliver(d delivery) {
	var slow []*Client

	h.mu.RLock()
	for _, k := range d.keys {
		for c := range h.clients[k] {
			select {
			case c.send <- d.message:
			default:
				slow = append(slow, c)
			}
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.log.Warn("ws client too slow, disconnecting", zap.String("recipient", c.key))
		h.Unregister(c)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for k, set := range h.clients {
		for c := range set {
			close(c.send)
		}
		delete(h.clients, k)
	}
}

func (h *Hub) countLocked() int {
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}
