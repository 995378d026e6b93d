package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/sales/application/request"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/application/usecase"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/infrastructure/ticket"
	domainCriteria "github.com/SamuelBrambila12/MisTrapitos/src/shared/domain/criteria"
	sqlcriteria "github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/criteria"

	"github.com/gin-gonic/gin"
)

// VentaController maneja las peticiones HTTP de ventas
type VentaController struct {
	registrarUC    *usecase.RegistrarVentaUseCase
	actualizarUC   *usecase.ActualizarVentaUseCase
	eliminarUC     *usecase.EliminarVentaUseCase
	consultarUC    *usecase.ConsultarVentasUseCase
	criteriaHelper *sqlcriteria.ControllerHelper
}

// NewVentaController crea una nueva instancia del controlador
func NewVentaController(
	registrarUC *usecase.RegistrarVentaUseCase,
	actualizarUC *usecase.ActualizarVentaUseCase,
	eliminarUC *usecase.EliminarVentaUseCase,
	consultarUC *usecase.ConsultarVentasUseCase,
) *VentaController {
	return &VentaController{
		registrarUC:    registrarUC,
		actualizarUC:   actualizarUC,
		eliminarUC:     eliminarUC,
		consultarUC:    consultarUC,
		criteriaHelper: sqlcriteria.NewControllerHelper(),
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *VentaController) RegisterRoutes(router *gin.RouterGroup) {
	ventas := router.Group("/ventas")
	{
		ventas.GET("", c.Listar)
		ventas.GET("/:id", c.Obtener)
		ventas.GET("/:id/ticket", c.Ticket)
		ventas.GET("/cliente/:id_cliente", c.PorCliente)
		ventas.GET("/fecha/:fecha", c.PorFecha)
		ventas.GET("/metodo/:metodo", c.PorMetodoPago)
		ventas.GET("/rango", c.PorRango)
		ventas.GET("/resumen/por-dia", c.ResumenPorDia)
		ventas.POST("", c.Registrar)
		ventas.PUT("/:id", c.Actualizar)
		ventas.DELETE("/:id", c.Eliminar)
	}

	log.Println("Rutas Ventas disponibles:")
	log.Println("  GET    /api/v1/ventas?metodo_pago=&id_cliente=&order_by=&limit=&offset=")
	log.Println("  GET    /api/v1/ventas/:id")
	log.Println("  GET    /api/v1/ventas/:id/ticket  (Ticket PDF)")
	log.Println("  GET    /api/v1/ventas/cliente/:id_cliente")
	log.Println("  GET    /api/v1/ventas/fecha/:fecha")
	log.Println("  GET    /api/v1/ventas/metodo/:metodo")
	log.Println("  GET    /api/v1/ventas/rango?desde=&hasta=")
	log.Println("  GET    /api/v1/ventas/resumen/por-dia?desde=&hasta=")
	log.Println("  POST   /api/v1/ventas  ⭐ (Venta de mostrador atómica)")
	log.Println("  PUT    /api/v1/ventas/:id")
	log.Println("  DELETE /api/v1/ventas/:id")
}

// Registrar registra una venta de mostrador
func (c *VentaController) Registrar(ctx *gin.Context) {
	var req request.VentaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.registrarUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Actualizar corrige una venta registrada
func (c *VentaController) Actualizar(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req request.VentaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.actualizarUC.Execute(ctx.Request.Context(), id, &req)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Eliminar anula una venta restaurando el stock
func (c *VentaController) Eliminar(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.eliminarUC.Execute(ctx.Request.Context(), id); err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Venta anulada, stock restaurado"})
}

// columnasListadoVenta mapea los parámetros de listado a columnas reales
var columnasListadoVenta = map[string]string{
	"fecha":       "v.fecha",
	"total":       "v.total",
	"metodo_pago": "v.metodo_pago",
	"id_cliente":  "v.id_cliente",
}

// Listar retorna los encabezados de venta; acepta filtros (?metodo_pago=,
// ?id_cliente=), orden (?order_by=&order_dir=) y paginación (?limit=&offset=)
func (c *VentaController) Listar(ctx *gin.Context) {
	builder := c.criteriaHelper.BuildCriteriaFromQuery(ctx)

	if v := ctx.Query("metodo_pago"); v != "" {
		if !entity.MetodoPago(v).Valido() {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrMetodoPagoInvalido.Error()})
			return
		}
		builder.WithFilter("v.metodo_pago", domainCriteria.OpEqual, v)
	}
	if v := ctx.Query("id_cliente"); v != "" {
		idCliente, err := strconv.Atoi(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "id_cliente inválido"})
			return
		}
		builder.WithFilter("v.id_cliente", domainCriteria.OpEqual, idCliente)
	}

	crit := c.criteriaHelper.SanitizeWithColumns(builder.Build(), columnasListadoVenta)

	ventas, total, err := c.consultarUC.Listar(ctx.Request.Context(), crit)
	if err != nil {
		log.Printf("Error listando ventas: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       ventas,
		"total_count": total,
	})
}

// Obtener retorna una venta con sus detalles
func (c *VentaController) Obtener(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.consultarUC.ObtenerPorID(ctx.Request.Context(), id)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Ticket entrega el ticket de la venta como PDF descargable
func (c *VentaController) Ticket(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	venta, err := c.consultarUC.ObtenerPorID(ctx.Request.Context(), id)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	pdfBytes, err := ticket.GenerarTicketPDF(venta)
	if err != nil {
		log.Printf("Error generando ticket de la venta %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="ticket_venta_%d.pdf"`, id))
	ctx.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// PorCliente retorna las ventas de un cliente
func (c *VentaController) PorCliente(ctx *gin.Context) {
	idCliente, ok := parseID(ctx, "id_cliente")
	if !ok {
		return
	}

	ventas, err := c.consultarUC.PorCliente(ctx.Request.Context(), idCliente)
	if err != nil {
		log.Printf("Error consultando ventas del cliente %d: %v", idCliente, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       ventas,
		"total_count": len(ventas),
	})
}

// PorFecha retorna las ventas de un solo día (YYYY-MM-DD)
func (c *VentaController) PorFecha(ctx *gin.Context) {
	fecha, err := time.Parse("2006-01-02", ctx.Param("fecha"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "fecha inválida, formato YYYY-MM-DD"})
		return
	}

	ventas, err := c.consultarUC.PorFecha(ctx.Request.Context(), fecha)
	if err != nil {
		log.Printf("Error consultando ventas del día %s: %v", ctx.Param("fecha"), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       ventas,
		"total_count": len(ventas),
	})
}

// PorMetodoPago retorna las ventas pagadas con el método dado
func (c *VentaController) PorMetodoPago(ctx *gin.Context) {
	metodo := entity.MetodoPago(ctx.Param("metodo"))

	ventas, err := c.consultarUC.PorMetodoPago(ctx.Request.Context(), metodo)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       ventas,
		"total_count": len(ventas),
	})
}

// ResumenPorDia retorna el total vendido por día entre ?desde= y ?hasta=.
// El límite superior es inclusivo, igual que en PorRango.
func (c *VentaController) ResumenPorDia(ctx *gin.Context) {
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

	resumen, totalVentas, err := c.consultarUC.ResumenPorDia(ctx.Request.Context(), desde, hasta.AddDate(0, 0, 1))
	if err != nil {
		log.Printf("Error consultando resumen de ventas por día: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       resumen,
		"total_count": totalVentas,
	})
}

// PorRango retorna las ventas entre ?desde= y ?hasta= (YYYY-MM-DD).
// El límite superior es inclusivo: se consulta hasta el final de ese día.
func (c *VentaController) PorRango(ctx *gin.Context) {
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

	ventas, err := c.consultarUC.PorRangoFechas(ctx.Request.Context(), desde, hasta.AddDate(0, 0, 1))
	if err != nil {
		log.Printf("Error consultando ventas por rango: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       ventas,
		"total_count": len(ventas),
	})
}

func (c *VentaController) responderError(ctx *gin.Context, err error) {
	log.Printf("Error en ventas: %v", err)

	switch {
	case errors.Is(err, entity.ErrVentaNoEncontrada):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Venta no encontrada"})
	case errors.Is(err, entity.ErrProductoNoEncontrado):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrStockInsuficiente):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrCarritoVacio),
		errors.Is(err, entity.ErrCantidadInvalida),
		errors.Is(err, entity.ErrMetodoPagoInvalido),
		errors.Is(err, entity.ErrClienteNoResuelto):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func parseID(ctx *gin.Context, nombre string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(nombre))
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": nombre + " inválido"})
		return 0, false
	}
	return id, true
}
