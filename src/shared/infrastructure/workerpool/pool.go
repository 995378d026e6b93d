package workerpool

import (
	"context"
	"fmt"
	"sync"
)

// Task es una tarea a ejecutar en segundo plano
type Task func() error

// WorkerPool ejecuta tareas en un número fijo de workers. La generación de
// archivos de reporte corre aquí para no bloquear el ciclo petición/respuesta.
type WorkerPool struct {
	workerCount int
	tasks       chan Task
	errors      chan error
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

// New crea un nuevo pool de workers
func New(workerCount int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerPool{
		workerCount: workerCount,
		tasks:       make(chan Task, workerCount*2),
		errors:      make(chan error, workerCount),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start arranca los workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.ctx.Done():
			return
		case task, ok := <-wp.tasks:
			if !ok {
				return
			}
			if err := task(); err != nil {
				select {
				case wp.errors <- err:
				default:
					// Canal de errores lleno, se descarta
				}
			}
		}
	}
}

// Submit encola una tarea en el pool
func (wp *WorkerPool) Submit(task Task) error {
	select {
	case <-wp.ctx.Done():
		return fmt.Errorf("worker pool detenido")
	case wp.tasks <- task:
		return nil
	}
}

// Stop detiene el pool y espera a los workers
func (wp *WorkerPool) Stop() {
	wp.cancel()
	wp.wg.Wait()
}

// Errors retorna el canal de errores de tareas
func (wp *WorkerPool) Errors() <-chan error {
	return wp.errors
}
