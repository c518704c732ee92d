package handler

import (
	"net/http"

	"ferreteria/internal/apierror"
	"ferreteria/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogoHandler struct{ svc service.CatalogoService }

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

func (h *CatalogoHandler) Categorias(c *gin.Context) {
	resp, err := h.svc.ListarCategorias(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar categorias"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) Marcas(c *gin.Context) {
	resp, err := h.svc.ListarMarcas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar marcas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) Proveedores(c *gin.Context) {
	resp, err := h.svc.ListarProveedores(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar proveedores"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
