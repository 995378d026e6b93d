package jobs

import (
	"sync"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/entity"

	"github.com/google/uuid"
)

// JobStore registro en memoria de los trabajos de exportación
type JobStore struct {
	jobs map[uuid.UUID]*entity.ExportJob
	mu   sync.RWMutex
}

// NewJobStore crea un registro vacío
func NewJobStore() *JobStore {
	return &JobStore{
		jobs: make(map[uuid.UUID]*entity.ExportJob),
	}
}

// Guardar registra o reemplaza un trabajo
func (s *JobStore) Guardar(job *entity.ExportJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.Id] = job
}

// Obtener retorna una copia del trabajo o ErrJobNoEncontrado
func (s *JobStore) Obtener(id uuid.UUID) (*entity.ExportJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, entity.ErrJobNoEncontrado
	}

	copia := *job
	return &copia, nil
}

// Listar retorna todos los trabajos registrados
func (s *JobStore) Listar() []*entity.ExportJob {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.ExportJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		copia := *job
		out = append(out, &copia)
	}
	return out
}

// Completar marca el trabajo como terminado con su archivo
func (s *JobStore) Completar(id uuid.UUID, archivo string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job, ok := s.jobs[id]; ok {
		ahora := time.Now()
		job.Estado = entity.JobCompletado
		job.Archivo = archivo
		job.CompletadoEn = &ahora
	}
}

// Fallar marca el trabajo como fallido con el motivo
func (s *JobStore) Fallar(id uuid.UUID, motivo string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job, ok := s.jobs[id]; ok {
		ahora := time.Now()
		job.Estado = entity.JobFallido
		job.Error = motivo
		job.CompletadoEn = &ahora
	}
}
