package router

import (
	"time"

	"ferreteria/internal/carrito"
	"ferreteria/internal/config"
	"ferreteria/internal/handler"
	"ferreteria/internal/middleware"
	"ferreteria/internal/model"
	"ferreteria/internal/notifier"
	"ferreteria/internal/repository"
	"ferreteria/internal/service"
	"ferreteria/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, hub *notifier.Hub, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP
	r.Use(middleware.Sesion())

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	marcaRepo := repository.NewMarcaRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	promocionRepo := repository.NewPromocionRepository(db)
	cotizacionRepo := repository.NewCotizacionRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	carritos := carrito.NewRedisStore(rdb, time.Duration(cfg.CarritoTTLHours)*time.Hour)

	authSvc := service.NewAuthService(usuarioRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo, usuarioRepo)
	productoSvc := service.NewProductoService(productoRepo)
	catalogoSvc := service.NewCatalogoService(categoriaRepo, marcaRepo, proveedorRepo)
	promocionSvc := service.NewPromocionService(promocionRepo)
	cotizacionSvc := service.NewCotizacionService(carritos, cotizacionRepo, productoRepo, clienteRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, cotizacionRepo, productoRepo, clienteRepo, hub, dispatcher)
	importacionSvc := service.NewImportacionService(productoRepo, categoriaRepo, marcaRepo, proveedorRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	promocionesH := handler.NewPromocionesHandler(promocionSvc)
	cotizacionesH := handler.NewCotizacionesHandler(cotizacionSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	importacionH := handler.NewImportacionHandler(importacionSvc)
	notificacionesH := handler.NewNotificacionesHandler(hub)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Public storefront
	r.POST("/v1/clientes/registro", clientesH.Registrar)
	r.GET("/v1/productos", productosH.Listar)
	r.GET("/v1/productos/:id", productosH.Obtener)
	r.GET("/v1/categorias", catalogoH.Categorias)
	r.GET("/v1/marcas", catalogoH.Marcas)
	r.GET("/v1/promociones", promocionesH.Listar)
	r.GET("/v1/promociones/avisos", promocionesH.Tickers)
	r.GET("/v1/promociones/:id", promocionesH.Obtener)

	// Session cart — anonymous friendly; checkout resolves the customer from
	// the token when one is present.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	r.GET("/v1/carrito", cotizacionesH.VerCarrito)
	r.POST("/v1/carrito", cotizacionesH.ActualizarCarrito)
	r.POST("/v1/carrito/generar", jwtMW, cotizacionesH.Generar)
	r.DELETE("/v1/carrito/:id", cotizacionesH.QuitarDelCarrito)

	// Protected routes
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/clientes/perfil", clientesH.Perfil)

		v1.GET("/cotizaciones", cotizacionesH.Listar)
		v1.GET("/cotizaciones/:id", cotizacionesH.Obtener)
		v1.POST("/cotizaciones/:id/editar", cotizacionesH.Editar)
		v1.DELETE("/cotizaciones/:id", cotizacionesH.Eliminar)
		v1.POST("/cotizaciones/:id/convertir", pedidosH.Convertir)

		v1.POST("/pedidos/carrito/:productoId", pedidosH.AgregarAlCarrito)
		v1.POST("/pedidos/:id/confirmar", pedidosH.Confirmar)
		v1.GET("/pedidos", pedidosH.Listar)
		v1.GET("/pedidos/:id", pedidosH.Obtener)
		v1.DELETE("/pedidos/:id", pedidosH.Eliminar)

		// Staff surfaces
		staff := middleware.RequireRole(model.RolVendedor, model.RolAdministrador)
		v1.GET("/inventario", staff, productosH.BuscarInventario)
		v1.GET("/proveedores", staff, catalogoH.Proveedores)
		v1.POST("/importacion/productos", middleware.RequireRole(model.RolAdministrador), importacionH.Importar)

		// Role screening happens after the upgrade, inside the handler: a
		// non-staff client gets a socket that closes immediately.
		v1.GET("/ws/notificaciones", notificacionesH.PedidosAdmin)
		v1.GET("/ws/conversiones", notificacionesH.Conversiones)
	}

	// Static product / promo images — production fronts these with a CDN.
	if cfg.Env != "production" && cfg.MediaPath != "" {
		r.Static("/media", cfg.MediaPath)
	}

	return r
}
