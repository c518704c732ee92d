package handler

import (
	"errors"
	"net/http"

	"ferreteria/internal/apierror"
	"ferreteria/internal/middleware"
	"ferreteria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Convertir turns a quotation into a processed order. Only the owning
// customer can convert, and only once per quotation.
func (h *PedidosHandler) Convertir(c *gin.Context) {
	usuarioID, ok := usuarioAutenticado(c)
	if !ok {
		return
	}
	cotizacionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}

	resp, err := h.svc.ConvertirCotizacion(c.Request.Context(), usuarioID, cotizacionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSinCliente):
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
		case errors.Is(err, service.ErrCotizacionNoHallada):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Error al convertir la cotizacion"))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AgregarAlCarrito adds one unit of a product to the customer's pending
// order, creating the order on first use.
func (h *PedidosHandler) AgregarAlCarrito(c *gin.Context) {
	usuarioID, ok := usuarioAutenticado(c)
	if !ok {
		return
	}
	productoID, err := uuid.Parse(c.Param("productoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}

	resp, err := h.svc.AgregarAlCarrito(c.Request.Context(), usuarioID, productoID)
	if err != nil {
		if errors.Is(err, service.ErrSinCliente) {
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al agregar al pedido"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Confirmar moves the customer's pending order to procesado.
func (h *PedidosHandler) Confirmar(c *gin.Context) {
	usuarioID, ok := usuarioAutenticado(c)
	if !ok {
		return
	}
	pedidoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}

	resp, err := h.svc.ConfirmarPedido(c.Request.Context(), usuarioID, pedidoID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSinCliente):
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
		case errors.Is(err, service.ErrPedidoNoHallado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Error al confirmar el pedido"))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar scopes by role: staff sees every non-pending order, customers see
// only their own.
func (h *PedidosHandler) Listar(c *gin.Context) {
	usuarioID, ok := usuarioAutenticado(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.Listar(c.Request.Context(), usuarioID, claims.EsStaff())
	if err != nil {
		if errors.Is(err, service.ErrSinCliente) {
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar pedidos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) Obtener(c *gin.Context) {
	usuarioID, ok := usuarioAutenticado(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.ObtenerPorID(c.Request.Context(), usuarioID, claims.EsStaff(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Pedido no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) Eliminar(c *gin.Context) {
	usuarioID, ok := usuarioAutenticado(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	claims := middleware.GetClaims(c)

	if err := h.svc.Eliminar(c.Request.Context(), usuarioID, claims.EsStaff(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Pedido no encontrado"))
		return
	}
	c.Status(http.StatusNoContent)
}

// usuarioAutenticado extracts the user id from the JWT claims, answering
// 401 itself when the token is malformed.
func usuarioAutenticado(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetClaims(c)
	usuarioID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token mal formado"))
		return uuid.Nil, false
	}
	return usuarioID, true
}
