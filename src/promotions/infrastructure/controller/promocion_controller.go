package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/application/request"
	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/application/usecase"
	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/domain/entity"

	"github.com/gin-gonic/gin"
)

// PromocionController maneja las peticiones HTTP de promociones
type PromocionController struct {
	guardarUC   *usecase.GuardarPromocionYDescuentoUseCase
	promocionUC *usecase.PromocionUseCase
}

// NewPromocionController crea una nueva instancia del controlador
func NewPromocionController(
	guardarUC *usecase.GuardarPromocionYDescuentoUseCase,
	promocionUC *usecase.PromocionUseCase,
) *PromocionController {
	return &PromocionController{
		guardarUC:   guardarUC,
		promocionUC: promocionUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *PromocionController) RegisterRoutes(router *gin.RouterGroup) {
	promociones := router.Group("/promociones")
	{
		promociones.GET("", c.Listar)
		promociones.GET("/:id", c.Obtener)
		promociones.GET("/activas", c.Activas)
		promociones.GET("/producto/:id_producto", c.PorProducto)
		promociones.GET("/rango", c.PorRango)
		promociones.GET("/descuentos", c.VistaDescuentos)
		promociones.POST("", c.Crear)
		promociones.POST("/descuentos", c.GuardarDescuento)
		promociones.PUT("/:id", c.Actualizar)
		promociones.DELETE("/:id", c.Eliminar)
		promociones.POST("/recomputar", c.RecomputarTodos)
		promociones.POST("/recomputar/:id", c.Recomputar)
	}

	log.Println("Rutas Promociones disponibles:")
	log.Println("  GET    /api/v1/promociones")
	log.Println("  GET    /api/v1/promociones/:id")
	log.Println("  GET    /api/v1/promociones/activas")
	log.Println("  GET    /api/v1/promociones/producto/:id_producto")
	log.Println("  GET    /api/v1/promociones/rango?desde=&hasta=")
	log.Println("  GET    /api/v1/promociones/descuentos")
	log.Println("  POST   /api/v1/promociones")
	log.Println("  POST   /api/v1/promociones/descuentos  ⭐ (Promoción + descuento atómico)")
	log.Println("  PUT    /api/v1/promociones/:id")
	log.Println("  DELETE /api/v1/promociones/:id")
	log.Println("  POST   /api/v1/promociones/recomputar")
	log.Println("  POST   /api/v1/promociones/recomputar/:id")
}

// Crear registra una promoción y deja el descuento del producto consistente
func (c *PromocionController) Crear(ctx *gin.Context) {
	var req request.PromocionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	promocion, err := c.promocionUC.Crear(ctx.Request.Context(), &req)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, promocion)
}

// GuardarDescuento guarda descuento directo y promoción temporal de un
// producto en una sola operación
func (c *PromocionController) GuardarDescuento(ctx *gin.Context) {
	var req request.PromocionYDescuentoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	promocion, err := c.guardarUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	if promocion == nil {
		ctx.JSON(http.StatusOK, gin.H{"message": "Descuento guardado, sin promoción temporal"})
		return
	}

	ctx.JSON(http.StatusOK, promocion)
}

// Actualizar modifica una promoción existente
func (c *PromocionController) Actualizar(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req request.PromocionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	promocion, err := c.promocionUC.Actualizar(ctx.Request.Context(), id, &req)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, promocion)
}

// Eliminar borra una promoción
func (c *PromocionController) Eliminar(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.promocionUC.Eliminar(ctx.Request.Context(), id); err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Promoción eliminada"})
}

// Listar retorna todas las promociones
func (c *PromocionController) Listar(ctx *gin.Context) {
	promociones, err := c.promocionUC.Listar(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listando promociones: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       promociones,
		"total_count": len(promociones),
	})
}

// Obtener retorna una promoción por id
func (c *PromocionController) Obtener(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	promocion, err := c.promocionUC.ObtenerPorID(ctx.Request.Context(), id)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, promocion)
}

// Activas retorna las promociones vigentes hoy
func (c *PromocionController) Activas(ctx *gin.Context) {
	promociones, err := c.promocionUC.Activas(ctx.Request.Context())
	if err != nil {
		log.Printf("Error consultando promociones activas: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       promociones,
		"total_count": len(promociones),
	})
}

// PorProducto retorna las promociones de un producto
func (c *PromocionController) PorProducto(ctx *gin.Context) {
	idProducto, err := strconv.Atoi(ctx.Param("id_producto"))
	if err != nil || idProducto <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id_producto inválido"})
		return
	}

	promociones, err := c.promocionUC.PorProducto(ctx.Request.Context(), idProducto)
	if err != nil {
		log.Printf("Error consultando promociones del producto %d: %v", idProducto, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       promociones,
		"total_count": len(promociones),
	})
}

// PorRango retorna las promociones traslapadas con ?desde=&hasta= (YYYY-MM-DD)
func (c *PromocionController) PorRango(ctx *gin.Context) {
	desde, err := time.Parse("2006-01-02", ctx.Query("desde"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "desde inválido, formato YYYY-MM-DD"})
		return
	}

	hasta, err := time.Parse("2006-01-02", ctx.Query("hasta"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "hasta inválido, formato YYYY-MM-DD"})
		return
	}

	if hasta.Before(desde) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "hasta debe ser posterior o igual a desde"})
		return
	}

	promociones, err := c.promocionUC.PorRangoFechas(ctx.Request.Context(), desde, hasta)
	if err != nil {
		log.Printf("Error consultando promociones por rango: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       promociones,
		"total_count": len(promociones),
	})
}

// VistaDescuentos retorna la vista combinada de promociones y descuentos
func (c *PromocionController) VistaDescuentos(ctx *gin.Context) {
	filas, err := c.promocionUC.VistaPromocionesYDescuentos(ctx.Request.Context())
	if err != nil {
		log.Printf("Error consultando vista de descuentos: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       filas,
		"total_count": len(filas),
	})
}

// Recomputar recalcula el descuento efectivo de un producto
func (c *PromocionController) Recomputar(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.promocionUC.Recomputar(ctx.Request.Context(), id); err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Descuento recalculado"})
}

// RecomputarTodos recalcula los descuentos de todos los productos
func (c *PromocionController) RecomputarTodos(ctx *gin.Context) {
	actualizados, err := c.promocionUC.RecomputarTodos(ctx.Request.Context())
	if err != nil {
		log.Printf("Error recalculando descuentos: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":               "Descuentos recalculados",
		"productos_actualizados": actualizados,
	})
}

func (c *PromocionController) responderError(ctx *gin.Context, err error) {
	log.Printf("Error en promociones: %v", err)

	switch {
	case errors.Is(err, entity.ErrPromocionNoEncontrada):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Promoción no encontrada"})
	case errors.Is(err, entity.ErrProductoNoExiste):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "El producto de la promoción no existe"})
	case errors.Is(err, entity.ErrProductoRequerido),
		errors.Is(err, entity.ErrPorcentajeInvalido),
		errors.Is(err, entity.ErrRangoFechasInvalido):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func parseID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return 0, false
	}
	return id, true
}
