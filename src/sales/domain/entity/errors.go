package entity

import "errors"

// Errores de dominio del módulo de ventas
var (
	ErrCarritoVacio         = errors.New("el carrito está vacío")
	ErrCantidadInvalida     = errors.New("la cantidad debe ser mayor que cero")
	ErrStockInsuficiente    = errors.New("stock insuficiente para la venta")
	ErrMetodoPagoInvalido   = errors.New("método de pago inválido")
	ErrClienteNoResuelto    = errors.New("no se pudo resolver el cliente de la venta")
	ErrVentaNoEncontrada    = errors.New("venta no encontrada")
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
)
