package jobs

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/entity"
)

func TestJobStoreGuardarYObtener(t *testing.T) {
	store := NewJobStore()
	job := entity.NewExportJob(entity.ReporteVentas, entity.FormatoCSV)

	store.Guardar(job)

	obtenido, err := store.Obtener(job.Id)
	require.NoError(t, err)
	assert.Equal(t, job.Id, obtenido.Id)
	assert.Equal(t, entity.JobPendiente, obtenido.Estado)
}

func TestJobStoreObtenerInexistente(t *testing.T) {
	store := NewJobStore()

	_, err := store.Obtener(uuid.New())
	assert.ErrorIs(t, err, entity.ErrJobNoEncontrado)
}

func TestJobStoreObtenerDevuelveCopia(t *testing.T) {
	store := NewJobStore()
	job := entity.NewExportJob(entity.ReporteVentas, entity.FormatoCSV)
	store.Guardar(job)

	copia, err := store.Obtener(job.Id)
	require.NoError(t, err)
	copia.Estado = entity.JobFallido

	otraVez, err := store.Obtener(job.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.JobPendiente, otraVez.Estado)
}

func TestJobStoreCompletar(t *testing.T) {
	store := NewJobStore()
	job := entity.NewExportJob(entity.ReporteInventario, entity.FormatoXLSX)
	store.Guardar(job)

	store.Completar(job.Id, "/tmp/reportes/inventario.xlsx")

	obtenido, err := store.Obtener(job.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.JobCompletado, obtenido.Estado)
	assert.Equal(t, "/tmp/reportes/inventario.xlsx", obtenido.Archivo)
	require.NotNil(t, obtenido.CompletadoEn)
}

func TestJobStoreFallar(t *testing.T) {
	store := NewJobStore()
	job := entity.NewExportJob(entity.ReporteInventario, entity.FormatoPDF)
	store.Guardar(job)

	store.Fallar(job.Id, "sin conexión a la base de datos")

	obtenido, err := store.Obtener(job.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.JobFallido, obtenido.Estado)
	assert.Equal(t, "sin conexión a la base de datos", obtenido.Error)
}

func TestJobStoreListar(t *testing.T) {
	store := NewJobStore()
	store.Guardar(entity.NewExportJob(entity.ReporteVentas, entity.FormatoCSV))
	store.Guardar(entity.NewExportJob(entity.ReporteMayorStock, entity.FormatoPDF))

	assert.Len(t, store.Listar(), 2)
}
