package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cotizacionFixture struct {
	svc       CotizacionService
	carritos  *memCarritoStore
	repo      *stubCotizacionRepo
	productos *stubProductoRepo
	clientes  *stubClienteRepo
}

func buildCotizacionSvc() *cotizacionFixture {
	f := &cotizacionFixture{
		carritos:  newMemCarritoStore(),
		repo:      newStubCotizacionRepo(),
		productos: newStubProductoRepo(),
		clientes:  newStubClienteRepo(),
	}
	f.svc = NewCotizacionService(f.carritos, f.repo, f.productos, f.clientes)
	return f
}

func TestCarritoAcumulaCantidades(t *testing.T) {
	f := buildCotizacionSvc()
	ctx := context.Background()
	martillo := seedProducto(f.productos, "Martillo", "MART-01", "150.00")

	require.NoError(t, f.svc.AgregarAlCarrito(ctx, "s1", map[string]int{martillo.ID.String(): 2}))
	require.NoError(t, f.svc.AgregarAlCarrito(ctx, "s1", map[string]int{martillo.ID.String(): 3}))

	resp, err := f.svc.VerCarrito(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Cantidad)
	assert.True(t, decimalObligatorio("750").Equal(resp.Total))
}

func TestCarritoPreciaAlMomentoDeVer(t *testing.T) {
	f := buildCotizacionSvc()
	ctx := context.Background()
	p := seedProducto(f.productos, "Taladro", "TAL-01", "1000.00")

	require.NoError(t, f.svc.AgregarAlCarrito(ctx, "s1", map[string]int{p.ID.String(): 1}))

	nuevo := decimalObligatorio("1200.00")
	p.Precio = &nuevo

	resp, err := f.svc.VerCarrito(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, nuevo.Equal(resp.Total), "el carrito nunca congela precios")
}

func TestCarritoSesionesIndependientes(t *testing.T) {
	f := buildCotizacionSvc()
	ctx := context.Background()
	p := seedProducto(f.productos, "Pinza", "PIN-01", "99.00")

	require.NoError(t, f.svc.AgregarAlCarrito(ctx, "s1", map[string]int{p.ID.String(): 1}))

	resp, err := f.svc.VerCarrito(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestQuitarProductoInexistenteEsNoOp(t *testing.T) {
	f := buildCotizacionSvc()
	ctx := context.Background()
	p := seedProducto(f.productos, "Llave", "LLA-01", "45.00")

	require.NoError(t, f.svc.AgregarAlCarrito(ctx, "s1", map[string]int{p.ID.String(): 1}))
	require.NoError(t, f.svc.QuitarDelCarrito(ctx, "s1", uuid.NewString()))

	resp, err := f.svc.VerCarrito(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
}

func TestGenerarCarritoVacioPersisteCotizacionEnCeros(t *testing.T) {
	f := buildCotizacionSvc()
	ctx := context.Background()

	resp, err := f.svc.Generar(ctx, "s1", nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero())

	guardada, err := f.repo.ObtenerPorID(ctx, uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Empty(t, guardada.Items)
	assert.True(t, guardada.Total.IsZero())
}

func TestGenerarCongelaSubtotales(t *testing.T) {
	f := buildCotizacionSvc()
	ctx := context.Background()
	p := seedProducto(f.productos, "Sierra", "SIE-01", "300.00")

	require.NoError(t, f.svc.AgregarAlCarrito(ctx, "s1", map[string]int{p.ID.String(): 2}))

	resp, err := f.svc.Generar(ctx, "s1", nil)
	require.NoError(t, err)
	assert.True(t, decimalObligatorio("600").Equal(resp.Total))
	assert.Equal(t, 1, resp.Folio)

	// Cambiar el precio despues no altera la cotizacion guardada.
	nuevo := decimalObligatorio("999.00")
	p.Precio = &nuevo

	id := uuid.MustParse(resp.ID)
	guardada, err := f.repo.ObtenerPorID(ctx, id)
	require.NoError(t, err)
	assert.True(t, decimalObligatorio("600").Equal(guardada.Total))
	require.Len(t, guardada.Items, 1)
	assert.True(t, decimalObligatorio("600").Equal(guardada.Items[0].Subtotal))

	// El carrito queda limpio tras generar.
	carritoResp, err := f.svc.VerCarrito(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, carritoResp.Items)
}

func TestGenerarUsuarioSinClienteFalla(t *testing.T) {
	f := buildCotizacionSvc()
	ctx := context.Background()
	p := seedProducto(f.productos, "Brocha", "BRO-01", "25.00")
	require.NoError(t, f.svc.AgregarAlCarrito(ctx, "s1", map[string]int{p.ID.String(): 1}))

	usuarioSinCliente := uuid.New()
	_, err := f.svc.Generar(ctx, "s1", &usuarioSinCliente)
	assert.ErrorIs(t, err, ErrSinCliente)
}

func TestGenerarOmiteProductosDesaparecidos(t *testing.T) {
	f := buildCotizacionSvc()
	ctx := context.Background()
	p := seedProducto(f.productos, "Cincel", "CIN-01", "80.00")

	require.NoError(t, f.svc.AgregarAlCarrito(ctx, "s1", map[string]int{
		p.ID.String():    1,
		uuid.NewString(): 4, // producto eliminado del catalogo
	}))

	resp, err := f.svc.Generar(ctx, "s1", nil)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.True(t, decimalObligatorio("80").Equal(resp.Total))
}

func TestGenerarProductoSinPrecioValeCero(t *testing.T) {
	f := buildCotizacionSvc()
	ctx := context.Background()
	p := seedProducto(f.productos, "Sobre pedido", "SP-01", "")

	require.NoError(t, f.svc.AgregarAlCarrito(ctx, "s1", map[string]int{p.ID.String(): 3}))

	resp, err := f.svc.Generar(ctx, "s1", nil)
	require.NoError(t, err)
	assert.True(t, resp.Total.IsZero())
}

func TestEditarReemplazaLaCotizacion(t *testing.T) {
	f := buildCotizacionSvc()
	ctx := context.Background()
	p := seedProducto(f.productos, "Nivel", "NIV-01", "200.00")

	require.NoError(t, f.svc.AgregarAlCarrito(ctx, "s1", map[string]int{p.ID.String(): 1}))
	original, err := f.svc.Generar(ctx, "s1", nil)
	require.NoError(t, err)
	originalID := uuid.MustParse(original.ID)

	// Cargar para editar, ajustar cantidad y volver a generar.
	require.NoError(t, f.svc.CargarParaEditar(ctx, "s1", originalID))
	require.NoError(t, f.svc.AgregarAlCarrito(ctx, "s1", map[string]int{p.ID.String(): 2}))

	nueva, err := f.svc.Generar(ctx, "s1", nil)
	require.NoError(t, err)

	// La original se elimina y la nueva tiene identidad propia.
	assert.NotEqual(t, original.ID, nueva.ID)
	assert.Contains(t, f.repo.eliminadas, originalID)
	_, err = f.repo.ObtenerPorID(ctx, originalID)
	assert.Error(t, err)

	assert.True(t, decimalObligatorio("600").Equal(nueva.Total))
}

func TestEditarConvertidaRechazada(t *testing.T) {
	f := buildCotizacionSvc()
	ctx := context.Background()
	p := seedProducto(f.productos, "Flexometro", "FLE-01", "60.00")

	require.NoError(t, f.svc.AgregarAlCarrito(ctx, "s1", map[string]int{p.ID.String(): 1}))
	resp, err := f.svc.Generar(ctx, "s1", nil)
	require.NoError(t, err)

	id := uuid.MustParse(resp.ID)
	f.repo.cotizaciones[id].ConvertidaEnPedido = true

	err = f.svc.CargarParaEditar(ctx, "s1", id)
	assert.ErrorIs(t, err, ErrCotizacionConvertida)
}

func TestListarDelClienteSoloNoConvertidas(t *testing.T) {
	f := buildCotizacionSvc()
	ctx := context.Background()
	usuarioID := uuid.New()
	seedCliente(f.clientes, "Lupita", usuarioID)
	p := seedProducto(f.productos, "Serrucho", "SER-01", "120.00")

	require.NoError(t, f.svc.AgregarAlCarrito(ctx, "s1", map[string]int{p.ID.String(): 1}))
	primera, err := f.svc.Generar(ctx, "s1", &usuarioID)
	require.NoError(t, err)

	require.NoError(t, f.svc.AgregarAlCarrito(ctx, "s1", map[string]int{p.ID.String(): 2}))
	_, err = f.svc.Generar(ctx, "s1", &usuarioID)
	require.NoError(t, err)

	f.repo.cotizaciones[uuid.MustParse(primera.ID)].ConvertidaEnPedido = true

	lista, err := f.svc.ListarDelCliente(ctx, usuarioID)
	require.NoError(t, err)
	assert.Len(t, lista, 1)
}
