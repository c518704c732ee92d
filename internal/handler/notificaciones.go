package handler

import (
	"net/http"
	"time"

	"ferreteria/internal/middleware"
	"ferreteria/internal/notifier"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	wsEscrituraTimeout = 10 * time.Second
	wsPingIntervalo    = 30 * time.Second
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by CORS at the gateway; the socket itself only
	// carries server-to-client pushes.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type NotificacionesHandler struct{ hub *notifier.Hub }

func NewNotificacionesHandler(hub *notifier.Hub) *NotificacionesHandler {
	return &NotificacionesHandler{hub: hub}
}

// PedidosAdmin streams new-order events to staff dashboards.
func (h *NotificacionesHandler) PedidosAdmin(c *gin.Context) {
	h.servir(c, notifier.TopicoPedidosAdmin)
}

// Conversiones streams quotation-conversion events to staff dashboards.
func (h *NotificacionesHandler) Conversiones(c *gin.Context) {
	h.servir(c, notifier.TopicoConversiones)
}

// servir upgrades the connection and relays hub events until the client
// disconnects. Non-staff connections are accepted at the HTTP level and then
// closed without delivering anything.
func (h *NotificacionesHandler) servir(c *gin.Context, topico string) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws: upgrade failed")
		return
	}

	claims := middleware.GetClaims(c)
	if claims == nil || !claims.EsStaff() {
		conn.Close()
		return
	}

	eventos := h.hub.Suscribir(topico)
	defer h.hub.Baja(topico, eventos)

	// Reader pump: inbound frames are ignored, but reading is what detects
	// the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingIntervalo)
	defer ping.Stop()
	defer conn.Close()

	for {
		select {
		case ev, ok := <-eventos:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(wsEscrituraTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(wsEscrituraTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
