package handler

import (
	"errors"
	"io"
	"net/http"

	"ferreteria/internal/apierror"
	"ferreteria/internal/importer"
	"ferreteria/internal/service"

	"github.com/gin-gonic/gin"
)

// 20 MB covers the largest supplier price lists seen so far.
const maxArchivoImportacion = 20 << 20

type ImportacionHandler struct{ svc service.ImportacionService }

func NewImportacionHandler(svc service.ImportacionService) *ImportacionHandler {
	return &ImportacionHandler{svc: svc}
}

// Importar receives a multipart xlsx or csv upload and answers with the
// per-row outcome report.
func (h *ImportacionHandler) Importar(c *gin.Context) {
	archivo, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Falta el archivo a importar"))
		return
	}
	if archivo.Size > maxArchivoImportacion {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("El archivo excede el tamano permitido"))
		return
	}

	f, err := archivo.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}
	defer f.Close()

	contenido, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}

	reporte, err := h.svc.ImportarArchivo(c.Request.Context(), archivo.Filename, contenido)
	if err != nil {
		if errors.Is(err, importer.ErrArchivoVacio) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Archivo no reconocido: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, reporte)
}
