package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"ferreteria/internal/apierror"
	"ferreteria/internal/middleware"
	"ferreteria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CotizacionesHandler struct{ svc service.CotizacionService }

func NewCotizacionesHandler(svc service.CotizacionService) *CotizacionesHandler {
	return &CotizacionesHandler{svc: svc}
}

// VerCarrito returns the session cart priced at current catalog prices.
func (h *CotizacionesHandler) VerCarrito(c *gin.Context) {
	resp, err := h.svc.VerCarrito(c.Request.Context(), middleware.GetSesionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al leer el carrito"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarCarrito takes the storefront form: one cantidad_<productoID>
// field per product row, plus a "generar" flag that turns the submit into a
// checkout. Quantities accumulate; zero or negative values are ignored.
func (h *CotizacionesHandler) ActualizarCarrito(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Formulario invalido"))
		return
	}

	cantidades := make(map[string]int)
	for campo, valores := range c.Request.PostForm {
		if !strings.HasPrefix(campo, "cantidad_") || len(valores) == 0 {
			continue
		}
		productoID := strings.TrimPrefix(campo, "cantidad_")
		if _, err := uuid.Parse(productoID); err != nil {
			continue
		}
		cantidad, err := strconv.Atoi(strings.TrimSpace(valores[0]))
		if err != nil {
			continue
		}
		cantidades[productoID] = cantidad
	}

	sesionID := middleware.GetSesionID(c)
	if err := h.svc.AgregarAlCarrito(c.Request.Context(), sesionID, cantidades); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar el carrito"))
		return
	}

	if c.PostForm("generar") == "" {
		resp, err := h.svc.VerCarrito(c.Request.Context(), sesionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Error al leer el carrito"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	h.generar(c, sesionID)
}

// Generar is the direct checkout endpoint, for clients that manage the cart
// through its own endpoints instead of the combined form submit.
func (h *CotizacionesHandler) Generar(c *gin.Context) {
	h.generar(c, middleware.GetSesionID(c))
}

// generar checks the cart out into a quotation. The customer link is
// resolved from the authenticated user when present.
func (h *CotizacionesHandler) generar(c *gin.Context, sesionID string) {
	var usuarioID *uuid.UUID
	if claims := claimsOpcionales(c); claims != nil {
		if uid, err := uuid.Parse(claims.UserID); err == nil {
			usuarioID = &uid
		}
	}

	resp, err := h.svc.Generar(c.Request.Context(), sesionID, usuarioID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSinCliente):
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Error al generar la cotizacion"))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// QuitarDelCarrito removes one product line from the session cart.
// Removing a product that is not in the cart is a no-op.
func (h *CotizacionesHandler) QuitarDelCarrito(c *gin.Context) {
	if err := h.svc.QuitarDelCarrito(c.Request.Context(), middleware.GetSesionID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al actualizar el carrito"))
		return
	}
	resp, err := h.svc.VerCarrito(c.Request.Context(), middleware.GetSesionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al leer el carrito"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Editar loads an existing quotation back into the cart for rework. The
// next checkout replaces the original document.
func (h *CotizacionesHandler) Editar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}

	err = h.svc.CargarParaEditar(c.Request.Context(), middleware.GetSesionID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCotizacionConvertida):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		case errors.Is(err, service.ErrCotizacionNoHallada):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar la cotizacion"))
		}
		return
	}

	resp, err := h.svc.VerCarrito(c.Request.Context(), middleware.GetSesionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al leer el carrito"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CotizacionesHandler) Listar(c *gin.Context) {
	claims := middleware.GetClaims(c)
	usuarioID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token mal formado"))
		return
	}

	resp, err := h.svc.ListarDelCliente(c.Request.Context(), usuarioID)
	if err != nil {
		if errors.Is(err, service.ErrSinCliente) {
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar cotizaciones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CotizacionesHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cotizacion no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CotizacionesHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cotizacion no encontrada"))
		return
	}
	c.Status(http.StatusNoContent)
}

// claimsOpcionales returns the JWT claims when the request carried a valid
// token, or nil on anonymous requests.
func claimsOpcionales(c *gin.Context) *middleware.JWTClaims {
	v, ok := c.Get(middleware.ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*middleware.JWTClaims)
	return claims
}
