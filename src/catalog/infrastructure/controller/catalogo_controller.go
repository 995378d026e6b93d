package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/application/request"
	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/application/usecase"
	"github.com/SamuelBrambila12/MisTrapitos/src/catalog/domain/entity"
	domainCriteria "github.com/SamuelBrambila12/MisTrapitos/src/shared/domain/criteria"
	sqlcriteria "github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/criteria"

	"github.com/gin-gonic/gin"
)

// CatalogoController maneja las peticiones HTTP de productos y categorías
type CatalogoController struct {
	productoUC     *usecase.ProductoUseCase
	categoriaUC    *usecase.CategoriaUseCase
	criteriaHelper *sqlcriteria.ControllerHelper
	stockMinimo    int
}

// NewCatalogoController crea una nueva instancia del controlador
func NewCatalogoController(productoUC *usecase.ProductoUseCase, categoriaUC *usecase.CategoriaUseCase, stockMinimo int) *CatalogoController {
	return &CatalogoController{
		productoUC:     productoUC,
		categoriaUC:    categoriaUC,
		criteriaHelper: sqlcriteria.NewControllerHelper(),
		stockMinimo:    stockMinimo,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CatalogoController) RegisterRoutes(router *gin.RouterGroup) {
	productos := router.Group("/productos")
	{
		productos.GET("", c.ListarProductos)
		productos.GET("/:id", c.ObtenerProducto)
		productos.POST("", c.CrearProducto)
		productos.PUT("/:id", c.ActualizarProducto)
		productos.DELETE("/:id", c.EliminarProducto)
		productos.GET("/buscar", c.BuscarProductos)
		productos.GET("/barcode/:barcode", c.BuscarPorBarcode)
		productos.GET("/stock-bajo", c.StockBajo)
		productos.GET("/mayor-stock", c.MayorStock)
		productos.PUT("/:id/descuento", c.AsignarDescuento)
		productos.PUT("/:id/stock", c.AjustarStock)
	}

	categorias := router.Group("/categorias")
	{
		categorias.GET("", c.ListarCategorias)
		categorias.GET("/:id", c.ObtenerCategoria)
		categorias.GET("/:id/productos", c.ProductosPorCategoria)
		categorias.POST("", c.CrearCategoria)
		categorias.PUT("/:id", c.ActualizarCategoria)
		categorias.DELETE("/:id", c.EliminarCategoria)
	}

	log.Println("Rutas Catálogo disponibles:")
	log.Println("  GET    /api/v1/productos?nombre=&id_categoria=&order_by=&limit=&offset=")
	log.Println("  GET    /api/v1/productos/:id")
	log.Println("  POST   /api/v1/productos")
	log.Println("  PUT    /api/v1/productos/:id")
	log.Println("  DELETE /api/v1/productos/:id")
	log.Println("  GET    /api/v1/productos/buscar?q=")
	log.Println("  GET    /api/v1/productos/barcode/:barcode")
	log.Println("  GET    /api/v1/productos/stock-bajo")
	log.Println("  GET    /api/v1/productos/mayor-stock")
	log.Println("  PUT    /api/v1/productos/:id/descuento")
	log.Println("  PUT    /api/v1/productos/:id/stock")
	log.Println("  GET    /api/v1/categorias")
	log.Println("  GET    /api/v1/categorias/:id")
	log.Println("  GET    /api/v1/categorias/:id/productos")
	log.Println("  POST   /api/v1/categorias")
	log.Println("  PUT    /api/v1/categorias/:id")
	log.Println("  DELETE /api/v1/categorias/:id")
}

// CrearProducto maneja el alta de un producto
func (c *CatalogoController) CrearProducto(ctx *gin.Context) {
	// 1. Validar body
	var req request.ProductoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	// 2. Ejecutar use case
	resp, err := c.productoUC.Crear(ctx.Request.Context(), &req)
	if err != nil {
		c.responderErrorProducto(ctx, err)
		return
	}

	// 3. Responder exitosamente con 201 Created
	ctx.JSON(http.StatusCreated, resp)
}

// ActualizarProducto maneja la actualización de un producto
func (c *CatalogoController) ActualizarProducto(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req request.ProductoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.productoUC.Actualizar(ctx.Request.Context(), id, &req)
	if err != nil {
		c.responderErrorProducto(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// EliminarProducto maneja el borrado de un producto
func (c *CatalogoController) EliminarProducto(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.productoUC.Eliminar(ctx.Request.Context(), id); err != nil {
		c.responderErrorProducto(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Producto eliminado"})
}

// columnasListadoProducto mapea los parámetros de listado a columnas reales;
// cualquier campo fuera del mapa se descarta
var columnasListadoProducto = map[string]string{
	"nombre":       "p.nombre",
	"precio":       "p.precio",
	"stock":        "p.stock",
	"id_categoria": "p.id_categoria",
	"descuento":    "p.descuento",
}

// ListarProductos retorna los productos del catálogo; acepta filtros
// (?nombre=, ?id_categoria=), orden (?order_by=&order_dir=) y paginación
// (?limit=&offset=)
func (c *CatalogoController) ListarProductos(ctx *gin.Context) {
	builder := c.criteriaHelper.BuildCriteriaFromQuery(ctx)

	if v := ctx.Query("nombre"); v != "" {
		builder.WithFilter("p.nombre", domainCriteria.OpLike, v)
	}
	if v := ctx.Query("id_categoria"); v != "" {
		idCategoria, err := strconv.Atoi(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "id_categoria inválido"})
			return
		}
		builder.WithFilter("p.id_categoria", domainCriteria.OpEqual, idCategoria)
	}

	crit := c.criteriaHelper.SanitizeWithColumns(builder.Build(), columnasListadoProducto)

	productos, total, err := c.productoUC.Listar(ctx.Request.Context(), crit)
	if err != nil {
		log.Printf("Error listando productos: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       productos,
		"total_count": total,
	})
}

// ObtenerProducto retorna un producto por id
func (c *CatalogoController) ObtenerProducto(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.productoUC.ObtenerPorID(ctx.Request.Context(), id)
	if err != nil {
		c.responderErrorProducto(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// BuscarProductos busca por nombre parcial o barcode exacto vía ?q=
func (c *CatalogoController) BuscarProductos(ctx *gin.Context) {
	termino := ctx.Query("q")
	if termino == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "El parámetro q es requerido"})
		return
	}

	productos, err := c.productoUC.Buscar(ctx.Request.Context(), termino)
	if err != nil {
		log.Printf("Error buscando productos: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       productos,
		"total_count": len(productos),
	})
}

// BuscarPorBarcode retorna el producto con el barcode exacto (flujo de escáner POS)
func (c *CatalogoController) BuscarPorBarcode(ctx *gin.Context) {
	barcode := ctx.Param("barcode")
	if barcode == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "barcode es requerido"})
		return
	}

	resp, err := c.productoUC.BuscarPorBarcode(ctx.Request.Context(), barcode)
	if err != nil {
		c.responderErrorProducto(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// StockBajo retorna productos con existencias en el mínimo o por debajo
func (c *CatalogoController) StockBajo(ctx *gin.Context) {
	minimo := c.stockMinimo
	if minStr := ctx.Query("minimo"); minStr != "" {
		if n, err := strconv.Atoi(minStr); err == nil && n >= 0 {
			minimo = n
		}
	}

	productos, err := c.productoUC.StockBajo(ctx.Request.Context(), minimo)
	if err != nil {
		log.Printf("Error consultando stock bajo: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       productos,
		"total_count": len(productos),
		"minimo":      minimo,
	})
}

// MayorStock retorna el producto con más existencias
func (c *CatalogoController) MayorStock(ctx *gin.Context) {
	resp, err := c.productoUC.MayorStock(ctx.Request.Context())
	if err != nil {
		c.responderErrorProducto(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// AsignarDescuento asigna un descuento directo a un producto
func (c *CatalogoController) AsignarDescuento(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req request.DescuentoDirectoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.productoUC.AsignarDescuentoDirecto(ctx.Request.Context(), id, &req); err != nil {
		c.responderErrorProducto(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Descuento asignado"})
}

// AjustarStock ajusta el stock de un producto con un delta
func (c *CatalogoController) AjustarStock(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req request.AjusteStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := c.productoUC.AjustarStock(ctx.Request.Context(), id, &req); err != nil {
		c.responderErrorProducto(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Stock ajustado"})
}

// CrearCategoria maneja el alta de una categoría
func (c *CatalogoController) CrearCategoria(ctx *gin.Context) {
	var req request.CategoriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.categoriaUC.Crear(ctx.Request.Context(), &req)
	if err != nil {
		c.responderErrorCategoria(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// ActualizarCategoria renombra una categoría
func (c *CatalogoController) ActualizarCategoria(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req request.CategoriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.categoriaUC.Actualizar(ctx.Request.Context(), id, &req)
	if err != nil {
		c.responderErrorCategoria(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// EliminarCategoria borra una categoría sin productos
func (c *CatalogoController) EliminarCategoria(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.categoriaUC.Eliminar(ctx.Request.Context(), id); err != nil {
		c.responderErrorCategoria(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Categoría eliminada"})
}

// ListarCategorias retorna todas las categorías
func (c *CatalogoController) ListarCategorias(ctx *gin.Context) {
	categorias, err := c.categoriaUC.Listar(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listando categorías: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       categorias,
		"total_count": len(categorias),
	})
}

// ObtenerCategoria retorna una categoría por id
func (c *CatalogoController) ObtenerCategoria(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.categoriaUC.ObtenerPorID(ctx.Request.Context(), id)
	if err != nil {
		c.responderErrorCategoria(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ProductosPorCategoria retorna los productos de una categoría
func (c *CatalogoController) ProductosPorCategoria(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	productos, err := c.productoUC.PorCategoria(ctx.Request.Context(), id)
	if err != nil {
		log.Printf("Error consultando productos por categoría: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       productos,
		"total_count": len(productos),
	})
}

func (c *CatalogoController) responderErrorProducto(ctx *gin.Context, err error) {
	log.Printf("Error en catálogo: %v", err)

	switch {
	case errors.Is(err, entity.ErrProductoNoEncontrado):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
	case errors.Is(err, entity.ErrBarcodeDuplicado):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Ya existe un producto con ese código de barras"})
	case errors.Is(err, entity.ErrStockInsuficiente):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrNombreRequerido),
		errors.Is(err, entity.ErrPrecioInvalido),
		errors.Is(err, entity.ErrStockInvalido),
		errors.Is(err, entity.ErrDescuentoInvalido):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (c *CatalogoController) responderErrorCategoria(ctx *gin.Context, err error) {
	log.Printf("Error en categorías: %v", err)

	switch {
	case errors.Is(err, entity.ErrCategoriaNoEncontrada):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Categoría no encontrada"})
	case errors.Is(err, entity.ErrCategoriaDuplicada):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Ya existe una categoría con ese nombre"})
	case errors.Is(err, entity.ErrCategoriaConProductos):
		ctx.JSON(http.StatusConflict, gin.H{"error": "La categoría tiene productos asociados"})
	case errors.Is(err, entity.ErrNombreRequerido):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseIDParam parsea un parámetro numérico de la ruta
func parseIDParam(ctx *gin.Context, nombre string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(nombre))
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": nombre + " inválido"})
		return 0, false
	}
	return id, true
}
