package handler

import (
	"net/http"

	"ferreteria/internal/apierror"
	"ferreteria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PromocionesHandler struct{ svc service.PromocionService }

func NewPromocionesHandler(svc service.PromocionService) *PromocionesHandler {
	return &PromocionesHandler{svc: svc}
}

func (h *PromocionesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar promociones"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PromocionesHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Promocion no encontrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PromocionesHandler) Tickers(c *gin.Context) {
	resp, err := h.svc.TickersActivos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar avisos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
