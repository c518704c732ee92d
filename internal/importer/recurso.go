// Package importer ingests heterogeneous spreadsheet data into normalized
// product records: header remapping, per-cell lenient cleaning, fuzzy
// reference resolution and upsert by the clave business key.
package importer

import (
	"context"
	"strconv"
	"strings"

	"ferreteria/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dataset is a parsed tabular upload: one header row plus data rows.
// Column order is not significant; headers are matched by name after remap.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// Reporte summarizes one import run per row outcome.
type Reporte struct {
	Creados      int `json:"creados"`
	Actualizados int `json:"actualizados"`
	SinCambios   int `json:"sin_cambios"`
	Omitidos     int `json:"omitidos"`
}

// AlmacenProductos is the persistence contract the import pipeline needs.
// BuscarPorClave returns (nil, nil) when no product carries the clave.
type AlmacenProductos interface {
	BuscarPorClave(ctx context.Context, clave string) (*model.Producto, error)
	Crear(ctx context.Context, p *model.Producto) error
	Actualizar(ctx context.Context, p *model.Producto) error
}

// filaImportada holds the computed field values for one admitted row.
type filaImportada struct {
	nombre       string
	clave        string
	departamento *string
	precio       decimal.Decimal
	existencia   int
	categoriaID  *uuid.UUID
	marcaID      *uuid.UUID
	proveedorID  *uuid.UUID
}

// Recurso orchestrates the import of one dataset into product records.
type Recurso struct {
	productos   AlmacenProductos
	categorias  *ResolutorReferencia
	marcas      *ResolutorReferencia
	proveedores *ResolutorReferencia
}

func NewRecurso(productos AlmacenProductos, categorias, marcas, proveedores *ResolutorReferencia) *Recurso {
	return &Recurso{
		productos:   productos,
		categorias:  categorias,
		marcas:      marcas,
		proveedores: proveedores,
	}
}

// NormalizarCabeceras rewrites messy spreadsheet headers to canonical names.
// Matching is case-insensitive by substring; the descripcion occurrence
// counter restarts on every call (one call per import).
func NormalizarCabeceras(cabeceras []string) []string {
	nuevas := make([]string, 0, len(cabeceras))
	numDesc := 0
	for _, c := range cabeceras {
		h := strings.ToLower(strings.TrimSpace(c))
		switch {
		case strings.Contains(h, "descrip"):
			numDesc++
			nuevas = append(nuevas, "descripcion_"+strconv.Itoa(numDesc))
		case strings.Contains(h, "clav"):
			nuevas = append(nuevas, "clave")
		case strings.Contains(h, "prov"):
			nuevas = append(nuevas, "proveedor")
		case strings.Contains(h, "marc"):
			nuevas = append(nuevas, "marca")
		case strings.Contains(h, "depa"):
			nuevas = append(nuevas, "departamento")
		default:
			nuevas = append(nuevas, h)
		}
	}
	return nuevas
}

// campoImportacion describes one canonical column: where the value comes
// from, whether a blank cell excludes the whole row, and how the cleaned
// value lands on filaImportada.
type campoImportacion struct {
	columna   string
	requerido bool
	asignar   func(ctx context.Context, valor string, imp *filaImportada) error
}

// campos is the column table the row loop iterates. The resolver-backed
// entries persist missing references as a side effect.
func (r *Recurso) campos() []campoImportacion {
	return []campoImportacion{
		{columna: "descripcion_1", requerido: true, asignar: func(_ context.Context, v string, imp *filaImportada) error {
			imp.nombre = strings.TrimSpace(v)
			return nil
		}},
		{columna: "clave", requerido: true, asignar: func(_ context.Context, v string, imp *filaImportada) error {
			imp.clave = strings.TrimSpace(v)
			return nil
		}},
		{columna: "departamento", asignar: func(_ context.Context, v string, imp *filaImportada) error {
			if depto := strings.TrimSpace(v); depto != "" {
				imp.departamento = &depto
			}
			return nil
		}},
		{columna: "precio", asignar: func(_ context.Context, v string, imp *filaImportada) error {
			imp.precio = LimpiarDinero(v)
			return nil
		}},
		{columna: "existencia", asignar: func(_ context.Context, v string, imp *filaImportada) error {
			imp.existencia = LimpiarExistencia(v)
			return nil
		}},
		{columna: "categoria", asignar: func(ctx context.Context, v string, imp *filaImportada) error {
			var err error
			imp.categoriaID, err = r.categorias.Resolver(ctx, v)
			return err
		}},
		{columna: "marca", asignar: func(ctx context.Context, v string, imp *filaImportada) error {
			var err error
			imp.marcaID, err = r.marcas.Resolver(ctx, v)
			return err
		}},
		{columna: "proveedor", asignar: func(ctx context.Context, v string, imp *filaImportada) error {
			var err error
			imp.proveedorID, err = r.proveedores.Resolver(ctx, v)
			return err
		}},
	}
}

// Importar runs the full pipeline over one dataset. Fault tolerance is
// per-row: numeric garbage degrades to zero via the widgets, rows missing
// clave or the primary description are excluded, and a failed row never
// aborts the batch. There is no all-or-nothing guarantee across the file.
func (r *Recurso) Importar(ctx context.Context, ds Dataset) (*Reporte, error) {
	cabeceras := NormalizarCabeceras(ds.Headers)
	columna := make(map[string]int, len(cabeceras))
	for i, c := range cabeceras {
		if _, visto := columna[c]; !visto {
			columna[c] = i
		}
	}
	celda := func(fila []string, nombre string) string {
		i, ok := columna[nombre]
		if !ok || i >= len(fila) {
			return ""
		}
		return fila[i]
	}

	campos := r.campos()
	reporte := &Reporte{}
	for _, fila := range ds.Rows {
		imp := filaImportada{}
		admitida := true
		for _, campo := range campos {
			valor := celda(fila, campo.columna)
			// Rows blank in a required column are formatting artifacts,
			// skipped outright rather than reported as errors.
			if campo.requerido && strings.TrimSpace(valor) == "" {
				admitida = false
				break
			}
			if err := campo.asignar(ctx, valor, &imp); err != nil {
				admitida = false
				break
			}
		}
		// The category FK is required; a row that resolves to none cannot be
		// stored and is excluded like any other structurally invalid row.
		if !admitida || imp.categoriaID == nil {
			reporte.Omitidos++
			continue
		}

		if err := r.upsert(ctx, imp, reporte); err != nil {
			reporte.Omitidos++
		}
	}
	return reporte, nil
}

// upsert matches by the clave business key: overwrite the existing product or
// create a new one. Rows identical to the stored record are counted as
// sin_cambios and produce no write, so re-importing a file is idempotent.
func (r *Recurso) upsert(ctx context.Context, imp filaImportada, reporte *Reporte) error {
	existente, err := r.productos.BuscarPorClave(ctx, imp.clave)
	if err != nil {
		return err
	}

	if existente == nil {
		precio := imp.precio
		nuevo := &model.Producto{
			Nombre:       imp.nombre,
			Clave:        imp.clave,
			Departamento: imp.departamento,
			Precio:       &precio,
			Existencia:   imp.existencia,
			CategoriaID:  *imp.categoriaID,
			MarcaID:      imp.marcaID,
			ProveedorID:  imp.proveedorID,
		}
		if err := r.productos.Crear(ctx, nuevo); err != nil {
			return err
		}
		reporte.Creados++
		return nil
	}

	if sinCambios(existente, imp) {
		reporte.SinCambios++
		return nil
	}

	precio := imp.precio
	existente.Nombre = imp.nombre
	existente.Departamento = imp.departamento
	existente.Precio = &precio
	existente.Existencia = imp.existencia
	existente.CategoriaID = *imp.categoriaID
	existente.MarcaID = imp.marcaID
	existente.ProveedorID = imp.proveedorID
	if err := r.productos.Actualizar(ctx, existente); err != nil {
		return err
	}
	reporte.Actualizados++
	return nil
}

func sinCambios(p *model.Producto, imp filaImportada) bool {
	return p.Nombre == imp.nombre &&
		igualOpcional(p.Departamento, imp.departamento) &&
		p.PrecioOCero().Equal(imp.precio) &&
		p.Existencia == imp.existencia &&
		p.CategoriaID == *imp.categoriaID &&
		igualUUID(p.MarcaID, imp.marcaID) &&
		igualUUID(p.ProveedorID, imp.proveedorID)
}

func igualOpcional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func igualUUID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
