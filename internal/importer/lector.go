package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrArchivoVacio = errors.New("el archivo no contiene filas")

// LeerXLSX parses the first sheet of an xlsx upload into a Dataset.
func LeerXLSX(contenido []byte) (*Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(contenido))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return nil, ErrArchivoVacio
	}
	filas, err := f.GetRows(hojas[0])
	if err != nil {
		return nil, err
	}
	if len(filas) == 0 {
		return nil, ErrArchivoVacio
	}
	return &Dataset{Headers: filas[0], Rows: filas[1:]}, nil
}

// LeerCSV parses a comma-separated upload into a Dataset. Ragged rows are
// accepted: missing trailing cells read as empty during import.
func LeerCSV(contenido []byte) (*Dataset, error) {
	r := csv.NewReader(bytes.NewReader(contenido))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var filas [][]string
	for {
		fila, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		filas = append(filas, fila)
	}
	if len(filas) == 0 {
		return nil, ErrArchivoVacio
	}
	return &Dataset{Headers: filas[0], Rows: filas[1:]}, nil
}

// LeerArchivo dispatches on the filename extension; anything that is not
// .xlsx is treated as CSV.
func LeerArchivo(nombre string, contenido []byte) (*Dataset, error) {
	if strings.HasSuffix(strings.ToLower(nombre), ".xlsx") {
		return LeerXLSX(contenido)
	}
	return LeerCSV(contenido)
}
