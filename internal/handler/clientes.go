package handler

import (
	"errors"
	"net/http"

	"ferreteria/internal/apierror"
	"ferreteria/internal/dto"
	"ferreteria/internal/middleware"
	"ferreteria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Registrar creates a login user plus customer profile. Open endpoint.
func (h *ClientesHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRFCDuplicado), errors.Is(err, service.ErrCorreoDuplicado):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Error al registrar cliente"))
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Perfil returns the customer profile linked to the authenticated user.
func (h *ClientesHandler) Perfil(c *gin.Context) {
	claims := middleware.GetClaims(c)
	usuarioID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token mal formado"))
		return
	}

	resp, err := h.svc.ObtenerPorUsuario(c.Request.Context(), usuarioID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
