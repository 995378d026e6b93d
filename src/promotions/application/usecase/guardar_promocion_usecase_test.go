package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/application/request"
	"github.com/SamuelBrambila12/MisTrapitos/src/promotions/domain/entity"
)

// promocionRepoFalso registra la última llamada al guardado combinado
type promocionRepoFalso struct {
	idProducto       int
	descuentoDirecto float64
	promocion        *entity.Promocion
	eliminar         *int
	llamado          bool
}

func (r *promocionRepoFalso) GuardarPromocionYDescuento(_ context.Context, idProducto int, descuentoDirecto float64, promocion *entity.Promocion, eliminar *int) error {
	r.llamado = true
	r.idProducto = idProducto
	r.descuentoDirecto = descuentoDirecto
	r.promocion = promocion
	r.eliminar = eliminar
	if promocion != nil && promocion.IdPromocion == 0 {
		promocion.IdPromocion = 77
	}
	return nil
}

func (r *promocionRepoFalso) Crear(_ context.Context, _ *entity.Promocion) error      { return nil }
func (r *promocionRepoFalso) Actualizar(_ context.Context, _ *entity.Promocion) error { return nil }
func (r *promocionRepoFalso) Eliminar(_ context.Context, _ int) error                 { return nil }
func (r *promocionRepoFalso) ObtenerTodas(_ context.Context) ([]*entity.Promocion, error) {
	return nil, nil
}
func (r *promocionRepoFalso) ObtenerPorID(_ context.Context, _ int) (*entity.Promocion, error) {
	return nil, entity.ErrPromocionNoEncontrada
}
func (r *promocionRepoFalso) Activas(_ context.Context) ([]*entity.Promocion, error) {
	return nil, nil
}
func (r *promocionRepoFalso) PorProducto(_ context.Context, _ int) ([]*entity.Promocion, error) {
	return nil, nil
}
func (r *promocionRepoFalso) PorRangoFechas(_ context.Context, _, _ time.Time) ([]*entity.Promocion, error) {
	return nil, nil
}
func (r *promocionRepoFalso) VistaPromocionesYDescuentos(_ context.Context) ([]*entity.PromocionDescuento, error) {
	return nil, nil
}
func (r *promocionRepoFalso) RecomputarDescuento(_ context.Context, _ int) error { return nil }
func (r *promocionRepoFalso) RecomputarTodos(_ context.Context) (int, error)     { return 0, nil }

func porcentaje(v float64) *float64 { return &v }

func TestGuardarConPorcentajeCreaLaPromocion(t *testing.T) {
	repo := &promocionRepoFalso{}
	uc := NewGuardarPromocionYDescuentoUseCase(repo)

	req := &request.PromocionYDescuentoRequest{
		IdProducto:          3,
		DescuentoDirecto:    15,
		PorcentajePromocion: porcentaje(30),
		FechaInicio:         "2026-08-01",
		FechaFin:            "2026-08-31",
	}

	promocion, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, promocion)

	assert.True(t, repo.llamado)
	assert.Equal(t, 3, repo.idProducto)
	assert.Equal(t, 15.0, repo.descuentoDirecto)
	require.NotNil(t, repo.promocion)
	assert.Nil(t, repo.eliminar)
	assert.Equal(t, 77, promocion.IdPromocion)
}

func TestGuardarConIdActualizaEnLugarDeCrear(t *testing.T) {
	repo := &promocionRepoFalso{}
	uc := NewGuardarPromocionYDescuentoUseCase(repo)

	id := 12
	req := &request.PromocionYDescuentoRequest{
		IdProducto:          3,
		DescuentoDirecto:    15,
		IdPromocion:         &id,
		PorcentajePromocion: porcentaje(40),
		FechaInicio:         "2026-08-01",
		FechaFin:            "2026-08-31",
	}

	promocion, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 12, promocion.IdPromocion)
	require.NotNil(t, repo.promocion)
	assert.Equal(t, 12, repo.promocion.IdPromocion)
}

func TestGuardarSinPorcentajeRetiraLaPromocion(t *testing.T) {
	repo := &promocionRepoFalso{}
	uc := NewGuardarPromocionYDescuentoUseCase(repo)

	id := 12
	req := &request.PromocionYDescuentoRequest{
		IdProducto:       3,
		DescuentoDirecto: 15,
		IdPromocion:      &id,
	}

	promocion, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, promocion)

	assert.Nil(t, repo.promocion)
	require.NotNil(t, repo.eliminar)
	assert.Equal(t, 12, *repo.eliminar)
}

func TestGuardarConPorcentajeCeroTambienRetira(t *testing.T) {
	repo := &promocionRepoFalso{}
	uc := NewGuardarPromocionYDescuentoUseCase(repo)

	id := 12
	req := &request.PromocionYDescuentoRequest{
		IdProducto:          3,
		DescuentoDirecto:    0,
		IdPromocion:         &id,
		PorcentajePromocion: porcentaje(0),
	}

	promocion, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, promocion)
	require.NotNil(t, repo.eliminar)
}

func TestGuardarRechazaDescuentoDirectoFueraDeRango(t *testing.T) {
	repo := &promocionRepoFalso{}
	uc := NewGuardarPromocionYDescuentoUseCase(repo)

	req := &request.PromocionYDescuentoRequest{IdProducto: 3, DescuentoDirecto: 101}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrPorcentajeInvalido)
	assert.False(t, repo.llamado, "el repositorio no debe tocarse con un request inválido")
}

func TestGuardarRechazaFechasInvalidas(t *testing.T) {
	repo := &promocionRepoFalso{}
	uc := NewGuardarPromocionYDescuentoUseCase(repo)

	req := &request.PromocionYDescuentoRequest{
		IdProducto:          3,
		PorcentajePromocion: porcentaje(20),
		FechaInicio:         "01/08/2026",
		FechaFin:            "2026-08-31",
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrRangoFechasInvalido)
	assert.False(t, repo.llamado)
}
