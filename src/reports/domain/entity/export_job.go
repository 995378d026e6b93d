package entity

import (
	"time"

	"github.com/google/uuid"
)

// EstadoJob estado de un trabajo de exportación en segundo plano
type EstadoJob string

const (
	JobPendiente  EstadoJob = "Pendiente"
	JobCompletado EstadoJob = "Completado"
	JobFallido    EstadoJob = "Fallido"
)

// ExportJob trabajo de exportación de un reporte a archivo. La generación
// corre en el pool de workers y el archivo queda en el directorio de
// reportes.
type ExportJob struct {
	Id           uuid.UUID      `json:"id"`
	Tipo         TipoReporte    `json:"tipo"`
	Formato      FormatoReporte `json:"formato"`
	Estado       EstadoJob      `json:"estado"`
	Archivo      string         `json:"archivo,omitempty"`
	Error        string         `json:"error,omitempty"`
	CreadoEn     time.Time      `json:"creado_en"`
	CompletadoEn *time.Time     `json:"completado_en,omitempty"`
}

// NewExportJob crea un trabajo pendiente con id propio
func NewExportJob(tipo TipoReporte, formato FormatoReporte) *ExportJob {
	return &ExportJob{
		Id:       uuid.New(),
		Tipo:     tipo,
		Formato:  formato,
		Estado:   JobPendiente,
		CreadoEn: time.Now(),
	}
}
