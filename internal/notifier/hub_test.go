package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicarEntregaATodosLosSuscriptores(t *testing.T) {
	h := NewHub()
	a := h.Suscribir(TopicoPedidosAdmin)
	b := h.Suscribir(TopicoPedidosAdmin)

	ev := Evento{Titulo: "¡Nuevo Pedido!", Mensaje: "Pedido #7 recibido", Total: "150.00", Cliente: "Juan"}
	h.Publicar(TopicoPedidosAdmin, ev)

	assert.Equal(t, ev, <-a)
	assert.Equal(t, ev, <-b)
}

func TestTopicosSonIndependientes(t *testing.T) {
	h := NewHub()
	admin := h.Suscribir(TopicoPedidosAdmin)
	conversiones := h.Suscribir(TopicoConversiones)

	h.Publicar(TopicoConversiones, Evento{Titulo: "¡Nuevo Pedido Confirmado!"})

	require.Len(t, conversiones, 1)
	assert.Empty(t, admin)
}

func TestPublicarSinSuscriptoresNoBloquea(t *testing.T) {
	h := NewHub()
	h.Publicar(TopicoPedidosAdmin, Evento{Titulo: "sin oyentes"})
}

func TestBajaCierraElCanal(t *testing.T) {
	h := NewHub()
	ch := h.Suscribir(TopicoPedidosAdmin)
	require.Equal(t, 1, h.Suscriptores(TopicoPedidosAdmin))

	h.Baja(TopicoPedidosAdmin, ch)
	assert.Equal(t, 0, h.Suscriptores(TopicoPedidosAdmin))

	_, abierto := <-ch
	assert.False(t, abierto)

	// Doble baja es inofensiva.
	h.Baja(TopicoPedidosAdmin, ch)
}

func TestPublicarDescartaConBufferLleno(t *testing.T) {
	h := NewHub()
	ch := h.Suscribir(TopicoPedidosAdmin)

	for i := 0; i < 20; i++ {
		h.Publicar(TopicoPedidosAdmin, Evento{Mensaje: "evento"})
	}
	// El buffer retiene los primeros; el resto se descarta sin bloquear.
	assert.Equal(t, cap(ch), len(ch))
}
