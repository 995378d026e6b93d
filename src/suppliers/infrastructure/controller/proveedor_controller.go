package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/SamuelBrambila12/MisTrapitos/src/suppliers/application/usecase"
	"github.com/SamuelBrambila12/MisTrapitos/src/suppliers/domain/entity"

	"github.com/gin-gonic/gin"
)

// ProveedorController maneja las peticiones HTTP de proveedores
type ProveedorController struct {
	proveedorUC *usecase.ProveedorUseCase
}

// NewProveedorController crea una nueva instancia del controlador
func NewProveedorController(proveedorUC *usecase.ProveedorUseCase) *ProveedorController {
	return &ProveedorController{proveedorUC: proveedorUC}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProveedorController) RegisterRoutes(router *gin.RouterGroup) {
	proveedores := router.Group("/proveedores")
	{
		proveedores.GET("", c.Listar)
		proveedores.GET("/:id", c.Obtener)
		proveedores.GET("/buscar", c.Buscar)
		proveedores.POST("", c.Crear)
		proveedores.PUT("/:id", c.Actualizar)
		proveedores.DELETE("/:id", c.Eliminar)
	}

	log.Println("Rutas Proveedores disponibles:")
	log.Println("  GET    /api/v1/proveedores")
	log.Println("  GET    /api/v1/proveedores/:id")
	log.Println("  GET    /api/v1/proveedores/buscar?q=")
	log.Println("  POST   /api/v1/proveedores")
	log.Println("  PUT    /api/v1/proveedores/:id")
	log.Println("  DELETE /api/v1/proveedores/:id")
}

// Crear maneja el alta de un proveedor
func (c *ProveedorController) Crear(ctx *gin.Context) {
	var req usecase.ProveedorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	proveedor, err := c.proveedorUC.Crear(ctx.Request.Context(), &req)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, proveedor)
}

// Actualizar modifica un proveedor
func (c *ProveedorController) Actualizar(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req usecase.ProveedorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	proveedor, err := c.proveedorUC.Actualizar(ctx.Request.Context(), id, &req)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, proveedor)
}

// Eliminar borra un proveedor
func (c *ProveedorController) Eliminar(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.proveedorUC.Eliminar(ctx.Request.Context(), id); err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Proveedor eliminado"})
}

// Listar retorna todos los proveedores
func (c *ProveedorController) Listar(ctx *gin.Context) {
	proveedores, err := c.proveedorUC.Listar(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listando proveedores: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       proveedores,
		"total_count": len(proveedores),
	})
}

// Obtener retorna un proveedor por id
func (c *ProveedorController) Obtener(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	proveedor, err := c.proveedorUC.ObtenerPorID(ctx.Request.Context(), id)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, proveedor)
}

// Buscar busca proveedores por nombre vía ?q=
func (c *ProveedorController) Buscar(ctx *gin.Context) {
	termino := ctx.Query("q")
	if termino == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "El parámetro q es requerido"})
		return
	}

	proveedores, err := c.proveedorUC.Buscar(ctx.Request.Context(), termino)
	if err != nil {
		log.Printf("Error buscando proveedores: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       proveedores,
		"total_count": len(proveedores),
	})
}

func (c *ProveedorController) responderError(ctx *gin.Context, err error) {
	log.Printf("Error en proveedores: %v", err)

	switch {
	case errors.Is(err, entity.ErrProveedorNoEncontrado):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Proveedor no encontrado"})
	case errors.Is(err, entity.ErrNombreRequerido):
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
