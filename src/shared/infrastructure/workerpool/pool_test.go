package workerpool

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolEjecutaTareas(t *testing.T) {
	pool := New(2)
	pool.Start()
	defer pool.Stop()

	var ejecutadas int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		err := pool.Submit(func() error {
			defer wg.Done()
			atomic.AddInt32(&ejecutadas, 1)
			return nil
		})
		require.NoError(t, err)
	}

	wg.Wait()
	assert.Equal(t, int32(10), atomic.LoadInt32(&ejecutadas))
}

func TestPoolReportaErrores(t *testing.T) {
	pool := New(1)
	pool.Start()
	defer pool.Stop()

	fallo := errors.New("tarea fallida")
	require.NoError(t, pool.Submit(func() error { return fallo }))

	select {
	case err := <-pool.Errors():
		assert.ErrorIs(t, err, fallo)
	case <-time.After(2 * time.Second):
		t.Fatal("el error de la tarea nunca llegó al canal")
	}
}

func TestPoolRechazaSubmitDespuesDeStop(t *testing.T) {
	pool := New(1)
	pool.Start()
	pool.Stop()

	err := pool.Submit(func() error { return nil })
	assert.Error(t, err)
}
