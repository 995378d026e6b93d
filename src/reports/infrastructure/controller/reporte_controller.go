package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/reports/application/usecase"
	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReporteController maneja las peticiones HTTP de reportes y exportaciones
type ReporteController struct {
	generarUC  *usecase.GenerarReporteUseCase
	exportarUC *usecase.ExportarReporteUseCase
}

// NewReporteController crea una nueva instancia del controlador
func NewReporteController(
	generarUC *usecase.GenerarReporteUseCase,
	exportarUC *usecase.ExportarReporteUseCase,
) *ReporteController {
	return &ReporteController{
		generarUC:  generarUC,
		exportarUC: exportarUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReporteController) RegisterRoutes(router *gin.RouterGroup) {
	reportes := router.Group("/reportes")
	{
		reportes.GET("/jobs", c.ListarJobs)
		reportes.GET("/jobs/:id", c.EstadoJob)
		reportes.GET("/jobs/:id/descargar", c.DescargarJob)
		reportes.GET("/:tipo", c.Generar)
		reportes.GET("/:tipo/descargar", c.Descargar)
		reportes.POST("/:tipo/export", c.Exportar)
	}

	log.Println("Rutas Reportes disponibles:")
	log.Println("  GET    /api/v1/reportes/:tipo")
	log.Println("  GET    /api/v1/reportes/:tipo/descargar?formato=xlsx|pdf|csv")
	log.Println("  POST   /api/v1/reportes/:tipo/export?formato=xlsx|pdf|csv")
	log.Println("  GET    /api/v1/reportes/jobs")
	log.Println("  GET    /api/v1/reportes/jobs/:id")
	log.Println("  GET    /api/v1/reportes/jobs/:id/descargar")
}

// Generar retorna la tabla del reporte como JSON
func (c *ReporteController) Generar(ctx *gin.Context) {
	tipo := entity.TipoReporte(ctx.Param("tipo"))

	desde, hasta, ok := c.parseRango(ctx)
	if !ok {
		return
	}

	tabla, err := c.generarUC.Execute(ctx.Request.Context(), tipo, desde, hasta)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"titulo":      tabla.Titulo,
		"columnas":    tabla.Columnas,
		"secciones":   tabla.Secciones,
		"total_filas": tabla.TotalFilas(),
	})
}

// Descargar genera el reporte y lo responde como archivo
func (c *ReporteController) Descargar(ctx *gin.Context) {
	tipo := entity.TipoReporte(ctx.Param("tipo"))
	formato := entity.FormatoReporte(ctx.DefaultQuery("formato", "xlsx"))

	desde, hasta, ok := c.parseRango(ctx)
	if !ok {
		return
	}

	datos, nombre, err := c.exportarUC.Descargar(ctx.Request.Context(), tipo, formato, desde, hasta)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, nombre))
	ctx.Data(http.StatusOK, contentType(formato), datos)
}

// Exportar encola la generación del reporte en segundo plano
func (c *ReporteController) Exportar(ctx *gin.Context) {
	tipo := entity.TipoReporte(ctx.Param("tipo"))
	formato := entity.FormatoReporte(ctx.DefaultQuery("formato", "xlsx"))

	desde, hasta, ok := c.parseRango(ctx)
	if !ok {
		return
	}

	job, err := c.exportarUC.Encolar(tipo, formato, desde, hasta)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, job)
}

// ListarJobs retorna todos los trabajos de exportación
func (c *ReporteController) ListarJobs(ctx *gin.Context) {
	trabajos := c.exportarUC.ListarJobs()
	ctx.JSON(http.StatusOK, gin.H{
		"items":       trabajos,
		"total_count": len(trabajos),
	})
}

// EstadoJob retorna el estado de un trabajo
func (c *ReporteController) EstadoJob(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id de job inválido"})
		return
	}

	job, err := c.exportarUC.EstadoJob(id)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// DescargarJob responde el archivo de un trabajo completado
func (c *ReporteController) DescargarJob(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id de job inválido"})
		return
	}

	job, err := c.exportarUC.EstadoJob(id)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	datos, nombre, err := c.exportarUC.ArchivoDeJob(id)
	if err != nil {
		c.responderError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, nombre))
	ctx.Data(http.StatusOK, contentType(job.Formato), datos)
}

// parseRango lee ?desde= y ?hasta= opcionales (YYYY-MM-DD)
func (c *ReporteController) parseRango(ctx *gin.Context) (*time.Time, *time.Time, bool) {
	desdeStr := ctx.Query("desde")
	hastaStr := ctx.Query("hasta")
	if desdeStr == "" && hastaStr == "" {
		return nil, nil, true
	}

	desde, err := time.Parse("2006-01-02", desdeStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "desde inválido, formato YYYY-MM-DD"})
		return nil, nil, false
	}
	hasta, err := time.Parse("2006-01-02", hastaStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "hasta inválido, formato YYYY-MM-DD"})
		return nil, nil, false
	}

	return &desde, &hasta, true
}

func (c *ReporteController) responderError(ctx *gin.Context, err error) {
	log.Printf("Error en reportes: %v", err)

	switch {
	case errors.Is(err, entity.ErrTipoReporteInvalido),
		errors.Is(err, entity.ErrFormatoInvalido),
		errors.Is(err, entity.ErrRangoFechasInvalido):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrJobNoEncontrado):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Trabajo de exportación no encontrado o sin archivo"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func contentType(formato entity.FormatoReporte) string {
	switch formato {
	case entity.FormatoPDF:
		return "application/pdf"
	case entity.FormatoCSV:
		return "text/csv"
	default:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
}
