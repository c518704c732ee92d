// Package notifier fans order-created events out to connected staff clients.
// Delivery is fire-and-forget: no acknowledgement, no replay for late
// subscribers, no retry.
package notifier

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Two independent emission sites exist with distinct group identifiers:
// direct order saves alert TopicoPedidosAdmin, quotation conversions alert
// TopicoConversiones. Both must stay separate topics.
const (
	TopicoPedidosAdmin = "notificaciones_admin"
	TopicoConversiones = "notificaciones"
)

// Evento is the JSON payload pushed over the socket.
type Evento struct {
	Titulo  string `json:"titulo"`
	Mensaje string `json:"mensaje"`
	Total   string `json:"total"`
	Cliente string `json:"cliente"`
}

// Hub is a process-wide subscriber registry: one set of live channels per
// topic, with explicit join-on-connect / leave-on-disconnect bookkeeping.
type Hub struct {
	mu     sync.RWMutex
	grupos map[string]map[chan Evento]struct{}
}

func NewHub() *Hub {
	return &Hub{grupos: make(map[string]map[chan Evento]struct{})}
}

// Suscribir joins a topic and returns the channel events arrive on.
// The channel is buffered; a subscriber that stops draining loses events
// rather than blocking publishers.
func (h *Hub) Suscribir(topico string) chan Evento {
	ch := make(chan Evento, 8)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.grupos[topico] == nil {
		h.grupos[topico] = make(map[chan Evento]struct{})
	}
	h.grupos[topico][ch] = struct{}{}
	return ch
}

// Baja leaves a topic and closes the subscription channel.
func (h *Hub) Baja(topico string, ch chan Evento) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.grupos[topico]; ok {
		if _, esta := subs[ch]; esta {
			delete(subs, ch)
			close(ch)
		}
	}
}

// Publicar delivers an event to every current subscriber of a topic.
// Best-effort and non-blocking: a full subscriber buffer drops the event.
func (h *Hub) Publicar(topico string, ev Evento) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.grupos[topico] {
		select {
		case ch <- ev:
		default:
			log.Warn().Str("topico", topico).Msg("suscriptor saturado — evento descartado")
		}
	}
}

// Suscriptores reports the current subscriber count of a topic.
func (h *Hub) Suscriptores(topico string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.grupos[topico])
}
