package handler

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ferreteria/internal/middleware"
	"ferreteria/internal/model"
	"ferreteria/internal/notifier"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wsTestSecret = "test_jwt_secret_32_chars_minimum!"

func signWsToken(t *testing.T, rol string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": uuid.NewString(), "username": "testuser", "rol": rol,
		"exp": time.Now().Add(time.Hour).Unix(), "iat": time.Now().Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(wsTestSecret))
	require.NoError(t, err)
	return s
}

// wsTestServer mounts the notification routes behind JWTAuth the way the
// router does: no role middleware, the handler screens after the upgrade.
func wsTestServer(hub *notifier.Hub) *httptest.Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNotificacionesHandler(hub)
	ws := r.Group("/ws", middleware.JWTAuth(wsTestSecret))
	ws.GET("/pedidos", h.PedidosAdmin)
	ws.GET("/conversiones", h.Conversiones)
	return httptest.NewServer(r)
}

func dialWs(t *testing.T, srv *httptest.Server, ruta, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + ruta + "?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestWsClienteNoSeSuscribe(t *testing.T) {
	hub := notifier.NewHub()
	srv := wsTestServer(hub)
	defer srv.Close()

	conn := dialWs(t, srv, "/ws/pedidos", signWsToken(t, model.RolCliente))
	defer conn.Close()

	// El servidor cierra la conexion sin entregar nada.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
	assert.Equal(t, 0, hub.Suscriptores(notifier.TopicoPedidosAdmin))
}

func TestWsSinTokenRechazadoAntesDelUpgrade(t *testing.T) {
	hub := notifier.NewHub()
	srv := wsTestServer(hub)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/pedidos"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	assert.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, 0, hub.Suscriptores(notifier.TopicoPedidosAdmin))
}

func TestWsVendedorRecibeEventos(t *testing.T) {
	hub := notifier.NewHub()
	srv := wsTestServer(hub)
	defer srv.Close()

	conn := dialWs(t, srv, "/ws/pedidos", signWsToken(t, model.RolVendedor))
	defer conn.Close()

	require.Eventually(t, func() bool {
		return hub.Suscriptores(notifier.TopicoPedidosAdmin) == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.Publicar(notifier.TopicoPedidosAdmin, notifier.Evento{
		Titulo:  "Nuevo pedido",
		Mensaje: "Pedido de Carmen",
		Total:   "300.00",
		Cliente: "Carmen",
	})

	var ev notifier.Evento
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, "Nuevo pedido", ev.Titulo)
	assert.Equal(t, "300.00", ev.Total)
	assert.Equal(t, "Carmen", ev.Cliente)

	// La suscripcion al topico de pedidos no toca el de conversiones.
	assert.Equal(t, 0, hub.Suscriptores(notifier.TopicoConversiones))
}
