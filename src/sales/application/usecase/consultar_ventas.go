package usecase

import (
	"context"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/sales/application/response"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/sales/domain/port"
	"github.com/SamuelBrambila12/MisTrapitos/src/shared/domain/criteria"
)

// ConsultarVentasUseCase consultas de solo lectura sobre ventas
type ConsultarVentasUseCase struct {
	ventaRepo port.VentaRepository
}

// NewConsultarVentasUseCase crea una nueva instancia del caso de uso
func NewConsultarVentasUseCase(ventaRepo port.VentaRepository) *ConsultarVentasUseCase {
	return &ConsultarVentasUseCase{ventaRepo: ventaRepo}
}

// Listar retorna los encabezados de venta que cumplen el criteria y el total
// sin paginar
func (uc *ConsultarVentasUseCase) Listar(ctx context.Context, crit criteria.Criteria) ([]response.VentaResponse, int, error) {
	ventas, total, err := uc.ventaRepo.Matching(ctx, crit)
	if err != nil {
		return nil, 0, err
	}
	return response.FromVentas(ventas), total, nil
}

// ObtenerPorID retorna la venta con sus detalles
func (uc *ConsultarVentasUseCase) ObtenerPorID(ctx context.Context, id int) (*response.VentaResponse, error) {
	venta, err := uc.ventaRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response.FromVenta(venta)
	return &resp, nil
}

// PorCliente retorna las ventas de un cliente
func (uc *ConsultarVentasUseCase) PorCliente(ctx context.Context, idCliente int) ([]response.VentaResponse, error) {
	ventas, err := uc.ventaRepo.PorCliente(ctx, idCliente)
	if err != nil {
		return nil, err
	}
	return response.FromVentas(ventas), nil
}

// PorRangoFechas retorna las ventas dentro del rango dado
func (uc *ConsultarVentasUseCase) PorRangoFechas(ctx context.Context, desde, hasta time.Time) ([]response.VentaResponse, error) {
	ventas, err := uc.ventaRepo.PorRangoFechas(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	return response.FromVentas(ventas), nil
}

// PorFecha retorna las ventas de un solo día
func (uc *ConsultarVentasUseCase) PorFecha(ctx context.Context, fecha time.Time) ([]response.VentaResponse, error) {
	dia := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, fecha.Location())
	return uc.PorRangoFechas(ctx, dia, dia.AddDate(0, 0, 1))
}

// PorMetodoPago retorna las ventas pagadas con el método dado
func (uc *ConsultarVentasUseCase) PorMetodoPago(ctx context.Context, metodo entity.MetodoPago) ([]response.VentaResponse, error) {
	if !metodo.Valido() {
		return nil, entity.ErrMetodoPagoInvalido
	}
	ventas, err := uc.ventaRepo.PorMetodoPago(ctx, metodo)
	if err != nil {
		return nil, err
	}
	return response.FromVentas(ventas), nil
}

// ResumenPorDia retorna el total vendido y el número de ventas por día
// dentro del rango, junto con el total de ventas del periodo
func (uc *ConsultarVentasUseCase) ResumenPorDia(ctx context.Context, desde, hasta time.Time) ([]*entity.ResumenDia, int, error) {
	resumen, err := uc.ventaRepo.TotalPorDia(ctx, desde, hasta)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.ventaRepo.ContarEnRango(ctx, desde, hasta)
	if err != nil {
		return nil, 0, err
	}
	return resumen, total, nil
}
