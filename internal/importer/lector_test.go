package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLeerCSV(t *testing.T) {
	contenido := []byte("Clave,Descripción,Precio\nMART-01,Martillo,$150.00\nDESA-02,Desarmador\n")

	ds, err := LeerCSV(contenido)
	require.NoError(t, err)

	assert.Equal(t, []string{"Clave", "Descripción", "Precio"}, ds.Headers)
	require.Len(t, ds.Rows, 2)
	// Filas irregulares se aceptan tal cual.
	assert.Len(t, ds.Rows[1], 2)
}

func TestLeerCSVVacio(t *testing.T) {
	_, err := LeerCSV([]byte(""))
	assert.ErrorIs(t, err, ErrArchivoVacio)
}

func TestLeerXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Clave", "Descripción"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"MART-01", "Martillo"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	ds, err := LeerXLSX(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"Clave", "Descripción"}, ds.Headers)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "MART-01", ds.Rows[0][0])
}

func TestLeerArchivoDespachaPorExtension(t *testing.T) {
	ds, err := LeerArchivo("precios.csv", []byte("Clave\nA1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Clave"}, ds.Headers)

	_, err = LeerArchivo("precios.xlsx", []byte("no es un xlsx"))
	assert.Error(t, err)
}
