package main

import (
	"database/sql"
	"log"
	"time"

	apiConfig "github.com/SamuelBrambila12/MisTrapitos/src/api/config"
	catalogUseCase "github.com/SamuelBrambila12/MisTrapitos/src/catalog/application/usecase"
	catalogCache "github.com/SamuelBrambila12/MisTrapitos/src/catalog/infrastructure/cache"
	catalogController "github.com/SamuelBrambila12/MisTrapitos/src/catalog/infrastructure/controller"
	catalogPersistence "github.com/SamuelBrambila12/MisTrapitos/src/catalog/infrastructure/persistence"
	clienteUseCase "github.com/SamuelBrambila12/MisTrapitos/src/customers/application/usecase"
	clientePort "github.com/SamuelBrambila12/MisTrapitos/src/customers/domain/port"
	clienteController "github.com/SamuelBrambila12/MisTrapitos/src/customers/infrastructure/controller"
	clientePersistence "github.com/SamuelBrambila12/MisTrapitos/src/customers/infrastructure/persistence"
	promoUseCase "github.com/SamuelBrambila12/MisTrapitos/src/promotions/application/usecase"
	promoController "github.com/SamuelBrambila12/MisTrapitos/src/promotions/infrastructure/controller"
	promoPersistence "github.com/SamuelBrambila12/MisTrapitos/src/promotions/infrastructure/persistence"
	reporteUseCase "github.com/SamuelBrambila12/MisTrapitos/src/reports/application/usecase"
	reporteController "github.com/SamuelBrambila12/MisTrapitos/src/reports/infrastructure/controller"
	reporteJobs "github.com/SamuelBrambila12/MisTrapitos/src/reports/infrastructure/jobs"
	reportePersistence "github.com/SamuelBrambila12/MisTrapitos/src/reports/infrastructure/persistence"
	ventaUseCase "github.com/SamuelBrambila12/MisTrapitos/src/sales/application/usecase"
	ventaController "github.com/SamuelBrambila12/MisTrapitos/src/sales/infrastructure/controller"
	ventaPersistence "github.com/SamuelBrambila12/MisTrapitos/src/sales/infrastructure/persistence"
	sharedConfig "github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/config"
	proveedorUseCase "github.com/SamuelBrambila12/MisTrapitos/src/suppliers/application/usecase"
	proveedorController "github.com/SamuelBrambila12/MisTrapitos/src/suppliers/infrastructure/controller"
	proveedorPersistence "github.com/SamuelBrambila12/MisTrapitos/src/suppliers/infrastructure/persistence"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/database"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/workerpool"
	usuarioUseCase "github.com/SamuelBrambila12/MisTrapitos/src/users/application/usecase"
	usuarioAuth "github.com/SamuelBrambila12/MisTrapitos/src/users/infrastructure/auth"
	usuarioController "github.com/SamuelBrambila12/MisTrapitos/src/users/infrastructure/controller"
	usuarioPersistence "github.com/SamuelBrambila12/MisTrapitos/src/users/infrastructure/persistence"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("🚀 Mis Trapitos - Iniciando...")

	// Cargar configuración (.env + variables de entorno)
	cfg := sharedConfig.Load()

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if cfg.PrometheusEnabled {
		log.Println("Registrando endpoint /metrics")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Métricas Prometheus deshabilitadas")
	}

	// Conectar a la base de datos
	db, err := database.Open(cfg.ConnString())
	if err != nil {
		log.Fatalf("❌ Error conectando a la base de datos: %v", err)
	}
	defer db.Close()
	log.Println("✅ Conexión a la base de datos establecida con éxito")

	// Aplicar migraciones pendientes
	if err := database.Migrate(db, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Error aplicando migraciones: %v", err)
	}

	// Pool de workers para exportaciones en segundo plano
	pool := workerpool.New(4)
	pool.Start()
	defer pool.Stop()
	go func() {
		for err := range pool.Errors() {
			log.Printf("⚠️  Error en worker de exportación: %v", err)
		}
	}()

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = "1.0.0"
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulos de negocio
	clienteRepo := setupCustomersModule(v1, db)
	setupCatalogModule(v1, db, cfg.StockBajoMinimo)
	setupSuppliersModule(v1, db)
	setupPromotionsModule(v1, db)
	setupSalesModule(v1, db, clienteRepo)
	setupUsersModule(v1, db, cfg.JWTSecret)
	setupReportsModule(v1, db, pool, cfg.ReportsDir)

	// Iniciar el servidor
	log.Printf("✅ Servidor Mis Trapitos iniciado en http://localhost:%s", cfg.Port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", cfg.Port)
	router.Run(":" + cfg.Port)
}

// setupCatalogModule configura el módulo de productos y categorías
func setupCatalogModule(router *gin.RouterGroup, db *sql.DB, stockMinimo int) {
	log.Println("Configurando módulo Catálogo...")

	productoRepo := catalogPersistence.NewProductoPostgresRepository(db)
	categoriaRepo := catalogPersistence.NewCategoriaPostgresRepository(db)

	categoriaCache := catalogCache.NewCategoriaCache()
	if err := categoriaCache.CargarDesdeDB(db); err != nil {
		log.Printf("⚠️  Warning: cache de categorías no disponible: %v", err)
	}

	productoUC := catalogUseCase.NewProductoUseCase(productoRepo)
	categoriaUC := catalogUseCase.NewCategoriaUseCase(categoriaRepo, categoriaCache)

	catalogoCtrl := catalogController.NewCatalogoController(productoUC, categoriaUC, stockMinimo)
	catalogoCtrl.RegisterRoutes(router)

	log.Println("Módulo Catálogo configurado exitosamente")
}

// setupCustomersModule configura el módulo de clientes y retorna el
// repositorio para el auto-registro durante la venta
func setupCustomersModule(router *gin.RouterGroup, db *sql.DB) clientePort.ClienteRepository {
	log.Println("Configurando módulo Clientes...")

	clienteRepo := clientePersistence.NewClientePostgresRepository(db)
	clienteUC := clienteUseCase.NewClienteUseCase(clienteRepo)

	clienteCtrl := clienteController.NewClienteController(clienteUC)
	clienteCtrl.RegisterRoutes(router)

	log.Println("Módulo Clientes configurado exitosamente")
	return clienteRepo
}

// setupSuppliersModule configura el módulo de proveedores
func setupSuppliersModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Proveedores...")

	proveedorRepo := proveedorPersistence.NewProveedorPostgresRepository(db)
	proveedorUC := proveedorUseCase.NewProveedorUseCase(proveedorRepo)

	proveedorCtrl := proveedorController.NewProveedorController(proveedorUC)
	proveedorCtrl.RegisterRoutes(router)

	log.Println("Módulo Proveedores configurado exitosamente")
}

// setupPromotionsModule configura el módulo de promociones
func setupPromotionsModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Promociones...")

	promocionRepo := promoPersistence.NewPromocionPostgresRepository(db)

	guardarUC := promoUseCase.NewGuardarPromocionYDescuentoUseCase(promocionRepo)
	promocionUC := promoUseCase.NewPromocionUseCase(promocionRepo)

	promocionCtrl := promoController.NewPromocionController(guardarUC, promocionUC)
	promocionCtrl.RegisterRoutes(router)

	log.Println("Módulo Promociones configurado exitosamente")
}

// setupSalesModule configura el módulo de ventas
func setupSalesModule(router *gin.RouterGroup, db *sql.DB, clienteRepo clientePort.ClienteRepository) {
	log.Println("Configurando módulo Ventas...")

	ventaRepo := ventaPersistence.NewVentaPostgresRepository(db)
	productoRepo := catalogPersistence.NewProductoPostgresRepository(db)

	registrarUC := ventaUseCase.NewRegistrarVentaUseCase(ventaRepo, productoRepo, clienteRepo)
	actualizarUC := ventaUseCase.NewActualizarVentaUseCase(ventaRepo, productoRepo)
	eliminarUC := ventaUseCase.NewEliminarVentaUseCase(ventaRepo)
	consultarUC := ventaUseCase.NewConsultarVentasUseCase(ventaRepo)

	ventaCtrl := ventaController.NewVentaController(registrarUC, actualizarUC, eliminarUC, consultarUC)
	ventaCtrl.RegisterRoutes(router)

	log.Println("Módulo Ventas configurado exitosamente")
}

// setupUsersModule configura el módulo de usuarios y autenticación
func setupUsersModule(router *gin.RouterGroup, db *sql.DB, jwtSecret string) {
	log.Println("Configurando módulo Usuarios...")

	usuarioRepo := usuarioPersistence.NewUsuarioPostgresRepository(db)
	usuarioUC := usuarioUseCase.NewUsuarioUseCase(usuarioRepo)
	jwtManager := usuarioAuth.NewJWTManager(jwtSecret, 12*time.Hour)

	usuarioCtrl := usuarioController.NewUsuarioController(usuarioUC, jwtManager)
	usuarioCtrl.RegisterRoutes(router)

	log.Println("Módulo Usuarios configurado exitosamente")
}

// setupReportsModule configura el módulo de reportes y exportaciones
func setupReportsModule(router *gin.RouterGroup, db *sql.DB, pool *workerpool.WorkerPool, reportsDir string) {
	log.Println("Configurando módulo Reportes...")

	reporteRepo := reportePersistence.NewReportePostgresRepository(db)
	jobStore := reporteJobs.NewJobStore()

	generarUC := reporteUseCase.NewGenerarReporteUseCase(reporteRepo)
	exportarUC := reporteUseCase.NewExportarReporteUseCase(generarUC, jobStore, pool, reportsDir)

	reporteCtrl := reporteController.NewReporteController(generarUC, exportarUC)
	reporteCtrl.RegisterRoutes(router)

	log.Println("Módulo Reportes configurado exitosamente")
}
