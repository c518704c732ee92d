package handler

import (
	"net/http"

	"ferreteria/internal/apierror"
	"ferreteria/internal/dto"
	"ferreteria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Listar is the public catalog browse: free text plus reference filters,
// paginated.
func (h *ProductosHandler) Listar(c *gin.Context) {
	var filtro dto.ProductoFilter
	if err := c.ShouldBindQuery(&filtro); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametros invalidos: "+err.Error()))
		return
	}

	resp, err := h.svc.Listar(c.Request.Context(), filtro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductosHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}

	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarInventario is the staff-side stock search over descripcion, clave
// and departamento, optionally scoped to one category.
func (h *ProductosHandler) BuscarInventario(c *gin.Context) {
	resp, err := h.svc.BuscarInventario(c.Request.Context(), c.Query("q"), c.Query("categoria_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al buscar inventario"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
