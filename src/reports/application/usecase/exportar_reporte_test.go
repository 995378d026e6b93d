package usecase

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/reports/infrastructure/jobs"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/infrastructure/workerpool"
)

func nuevoExportarUC(t *testing.T) *ExportarReporteUseCase {
	t.Helper()

	pool := workerpool.New(1)
	pool.Start()
	t.Cleanup(pool.Stop)

	return NewExportarReporteUseCase(
		NewGenerarReporteUseCase(&reporteRepoFalso{}),
		jobs.NewJobStore(),
		pool,
		t.TempDir(),
	)
}

// esperarEstado espera a que el trabajo salga de Pendiente
func esperarEstado(t *testing.T, uc *ExportarReporteUseCase, job *entity.ExportJob) *entity.ExportJob {
	t.Helper()

	plazo := time.Now().Add(5 * time.Second)
	for time.Now().Before(plazo) {
		actual, err := uc.EstadoJob(job.Id)
		require.NoError(t, err)
		if actual.Estado != entity.JobPendiente {
			return actual
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("el job %s nunca salió de Pendiente", job.Id)
	return nil
}

func TestDescargar(t *testing.T) {
	uc := nuevoExportarUC(t)

	datos, nombre, err := uc.Descargar(context.Background(), entity.ReporteInventario, entity.FormatoCSV, nil, nil)
	require.NoError(t, err)

	assert.NotNil(t, datos)
	assert.True(t, strings.HasPrefix(nombre, "inventario_"))
	assert.True(t, strings.HasSuffix(nombre, ".csv"))
}

func TestDescargarRechazaFormatoInvalido(t *testing.T) {
	uc := nuevoExportarUC(t)

	_, _, err := uc.Descargar(context.Background(), entity.ReporteInventario, entity.FormatoReporte("docx"), nil, nil)
	assert.ErrorIs(t, err, entity.ErrFormatoInvalido)
}

func TestEncolarCompletaElJob(t *testing.T) {
	uc := nuevoExportarUC(t)

	job, err := uc.Encolar(entity.ReporteVentas, entity.FormatoCSV, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.JobPendiente, job.Estado)

	terminado := esperarEstado(t, uc, job)
	assert.Equal(t, entity.JobCompletado, terminado.Estado)
	require.NotEmpty(t, terminado.Archivo)

	_, err = os.Stat(terminado.Archivo)
	assert.NoError(t, err, "el archivo del reporte debe existir en disco")

	datos, nombre, err := uc.ArchivoDeJob(job.Id)
	require.NoError(t, err)
	assert.NotNil(t, datos)
	assert.Contains(t, nombre, "ventas_")
}

func TestEncolarValidaTipoYFormato(t *testing.T) {
	uc := nuevoExportarUC(t)

	_, err := uc.Encolar(entity.TipoReporte("corte-de-caja"), entity.FormatoCSV, nil, nil)
	assert.ErrorIs(t, err, entity.ErrTipoReporteInvalido)

	_, err = uc.Encolar(entity.ReporteVentas, entity.FormatoReporte("docx"), nil, nil)
	assert.ErrorIs(t, err, entity.ErrFormatoInvalido)
}

func TestEncolarConPoolDetenidoMarcaElJobFallido(t *testing.T) {
	pool := workerpool.New(1)
	pool.Start()
	pool.Stop()

	uc := NewExportarReporteUseCase(
		NewGenerarReporteUseCase(&reporteRepoFalso{}),
		jobs.NewJobStore(),
		pool,
		t.TempDir(),
	)

	_, err := uc.Encolar(entity.ReporteVentas, entity.FormatoCSV, nil, nil)
	require.Error(t, err)

	// El job no puede quedar Pendiente para siempre
	guardados := uc.jobStore.Listar()
	require.Len(t, guardados, 1)
	assert.Equal(t, entity.JobFallido, guardados[0].Estado)
}

func TestArchivoDeJobPendienteNoDisponible(t *testing.T) {
	uc := nuevoExportarUC(t)

	job := entity.NewExportJob(entity.ReporteVentas, entity.FormatoCSV)
	uc.jobStore.Guardar(job)

	_, _, err := uc.ArchivoDeJob(job.Id)
	assert.ErrorIs(t, err, entity.ErrJobNoEncontrado)
}
