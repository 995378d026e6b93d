package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/SamuelBrambila12/MisTrapitos/src/customers/application/request"
	"github.com/SamuelBrambila12/MisTrapitos/src/customers/application/usecase"
	"github.com/SamuelBrambila12/MisTrapitos/src/customers/domain/entity"

	"github.com/gin-gonic/gin"
)

// ClienteController maneja las peticiones HTTP de clientes
type ClienteController struct {
	clienteUC *usecase.ClienteUseCase
}

// NewClienteController crea una nueva instancia del controlador
func NewClienteController(clienteUC *usecase.ClienteUseCase) *ClienteController {
	return &ClienteController{clienteUC: clienteUC}
}

// RegisterRoutes registra las rutas del controlador
func (c *ClienteController) RegisterRoutes(router *gin.RouterGroup) {
	clientes := router.Group("/clientes")
	{
		clientes.GET("", c.Listar)
		clientes.GET("/:id", c.Obtener)
		clientes.GET("/buscar", c.Buscar)
		clientes.POST("", c.Crear)
		clientes.PUT("/:id", c.Actualizar)
		clientes.DELETE("/:id", c.Eliminar)
	}

	log.Println("Rutas Clientes disponibles:")
	log.Println("  GET    /api/v1/clientes")
	log.Println("  GET    /api/v1/clientes/:id")
	log.Println("  GET    /api/v1/clientes/buscar?q=")
	log.Println("  POST   /api/v1/clientes")
	log.Println("  PUT    /api/v1/clientes/:id")
	log.Println("  DELETE /api/v1/clientes/:id")
}

// Crear maneja el alta de un cliente
func (c *ClienteController) Crear(ctx *gin.Context) {
	var req request.ClienteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	cliente, err := c.clienteUC.Crear(ctx.Request.Context(), &req)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, cliente)
}

// Actualizar modifica un cliente
func (c *ClienteController) Actualizar(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req request.ClienteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	cliente, err := c.clienteUC.Actualizar(ctx.Request.Context(), id, &req)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cliente)
}

// Eliminar borra un cliente sin historial de compras
func (c *ClienteController) Eliminar(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.clienteUC.Eliminar(ctx.Request.Context(), id); err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Cliente eliminado"})
}

// Listar retorna todos los clientes
func (c *ClienteController) Listar(ctx *gin.Context) {
	clientes, err := c.clienteUC.Listar(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listando clientes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       clientes,
		"total_count": len(clientes),
	})
}

// Obtener retorna un cliente por id
func (c *ClienteController) Obtener(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	cliente, err := c.clienteUC.ObtenerPorID(ctx.Request.Context(), id)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cliente)
}

// Buscar busca clientes por nombre o ciudad vía ?q=
func (c *ClienteController) Buscar(ctx *gin.Context) {
	termino := ctx.Query("q")
	if termino == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "El parámetro q es requerido"})
		return
	}

	clientes, err := c.clienteUC.Buscar(ctx.Request.Context(), termino)
	if err != nil {
		log.Printf("Error buscando clientes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       clientes,
		"total_count": len(clientes),
	})
}

func (c *ClienteController) responderError(ctx *gin.Context, err error) {
	log.Printf("Error en clientes: %v", err)

	switch {
	case errors.Is(err, entity.ErrClienteNoEncontrado):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
	case errors.Is(err, entity.ErrClienteConVentas):
		ctx.JSON(http.StatusConflict, gin.H{"error": "El cliente tiene ventas registradas"})
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
