package usecase

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/reports/infrastructure/export"
	"github.com/SamuelBrambila12/MisTrapitos/src/reports/infrastructure/jobs"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/metrics"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/workerpool"

	"github.com/google/uuid"
)

// ExportarReporteUseCase caso de uso para exportar reportes a archivo.
// La descarga directa es síncrona; la exportación a disco corre como
// trabajo en el pool de workers.
type ExportarReporteUseCase struct {
	generarUC  *GenerarReporteUseCase
	jobStore   *jobs.JobStore
	pool       *workerpool.WorkerPool
	reportsDir string
}

// NewExportarReporteUseCase crea una nueva instancia del caso de uso
func NewExportarReporteUseCase(
	generarUC *GenerarReporteUseCase,
	jobStore *jobs.JobStore,
	pool *workerpool.WorkerPool,
	reportsDir string,
) *ExportarReporteUseCase {
	return &ExportarReporteUseCase{
		generarUC:  generarUC,
		jobStore:   jobStore,
		pool:       pool,
		reportsDir: reportsDir,
	}
}

// Descargar genera el reporte y lo exporta en memoria para responder la
// descarga directamente
func (uc *ExportarReporteUseCase) Descargar(ctx context.Context, tipo entity.TipoReporte, formato entity.FormatoReporte, desde, hasta *time.Time) ([]byte, string, error) {
	if !formato.Valido() {
		return nil, "", entity.ErrFormatoInvalido
	}

	tabla, err := uc.generarUC.Execute(ctx, tipo, desde, hasta)
	if err != nil {
		return nil, "", err
	}

	datos, err := export.Exportar(tabla, formato)
	if err != nil {
		return nil, "", err
	}

	metrics.ReportesGenerados.WithLabelValues(string(tipo), string(formato)).Inc()

	nombre := fmt.Sprintf("%s_%s.%s", tipo, time.Now().Format("20060102_150405"), formato)
	return datos, nombre, nil
}

// Encolar crea un trabajo de exportación y lo despacha al pool. El archivo
// queda en el directorio de reportes cuando el trabajo termina.
func (uc *ExportarReporteUseCase) Encolar(tipo entity.TipoReporte, formato entity.FormatoReporte, desde, hasta *time.Time) (*entity.ExportJob, error) {
	if !tipo.Valido() {
		return nil, entity.ErrTipoReporteInvalido
	}
	if !formato.Valido() {
		return nil, entity.ErrFormatoInvalido
	}
	if desde != nil && hasta != nil && hasta.Before(*desde) {
		return nil, entity.ErrRangoFechasInvalido
	}

	job := entity.NewExportJob(tipo, formato)
	uc.jobStore.Guardar(job)

	err := uc.pool.Submit(func() error {
		return uc.procesar(job.Id, tipo, formato, desde, hasta)
	})
	if err != nil {
		// El pool ya no acepta trabajo; el job no puede quedar Pendiente
		uc.jobStore.Fallar(job.Id, err.Error())
		log.Printf("❌ No se pudo encolar la exportación %s: %v", job.Id, err)
		return nil, err
	}

	log.Printf("📤 Exportación encolada: %s (%s %s)", job.Id, tipo, formato)
	return job, nil
}

// procesar corre en un worker: genera, exporta y escribe el archivo
func (uc *ExportarReporteUseCase) procesar(idJob uuid.UUID, tipo entity.TipoReporte, formato entity.FormatoReporte, desde, hasta *time.Time) error {
	// El request HTTP ya respondió, el trabajo usa su propio contexto
	ctx := context.Background()

	tabla, err := uc.generarUC.Execute(ctx, tipo, desde, hasta)
	if err != nil {
		uc.jobStore.Fallar(idJob, err.Error())
		return fmt.Errorf("job %s: %w", idJob, err)
	}

	datos, err := export.Exportar(tabla, formato)
	if err != nil {
		uc.jobStore.Fallar(idJob, err.Error())
		return fmt.Errorf("job %s: %w", idJob, err)
	}

	if err := os.MkdirAll(uc.reportsDir, 0o755); err != nil {
		uc.jobStore.Fallar(idJob, err.Error())
		return fmt.Errorf("job %s: %w", idJob, err)
	}

	archivo := filepath.Join(uc.reportsDir, fmt.Sprintf("%s_%s.%s", tipo, idJob, formato))
	if err := os.WriteFile(archivo, datos, 0o644); err != nil {
		uc.jobStore.Fallar(idJob, err.Error())
		return fmt.Errorf("job %s: %w", idJob, err)
	}

	uc.jobStore.Completar(idJob, archivo)
	metrics.ReportesGenerados.WithLabelValues(string(tipo), string(formato)).Inc()
	log.Printf("✅ Exportación %s completada: %s (%d filas)", idJob, archivo, tabla.TotalFilas())
	return nil
}

// EstadoJob consulta un trabajo por id
func (uc *ExportarReporteUseCase) EstadoJob(id uuid.UUID) (*entity.ExportJob, error) {
	return uc.jobStore.Obtener(id)
}

// ListarJobs retorna todos los trabajos registrados
func (uc *ExportarReporteUseCase) ListarJobs() []*entity.ExportJob {
	return uc.jobStore.Listar()
}

// ArchivoDeJob retorna el contenido del archivo de un trabajo completado
func (uc *ExportarReporteUseCase) ArchivoDeJob(id uuid.UUID) ([]byte, string, error) {
	job, err := uc.jobStore.Obtener(id)
	if err != nil {
		return nil, "", err
	}
	if job.Estado != entity.JobCompletado {
		return nil, "", entity.ErrJobNoEncontrado
	}

	datos, err := os.ReadFile(job.Archivo)
	if err != nil {
		return nil, "", fmt.Errorf("error leyendo archivo del job %s: %w", id, err)
	}

	return datos, filepath.Base(job.Archivo), nil
}
