package entity

import "errors"

// Errores de dominio del módulo de promociones
var (
	ErrPromocionNoEncontrada = errors.New("promoción no encontrada")
	ErrProductoRequerido     = errors.New("la promoción requiere un producto")
	ErrProductoNoExiste      = errors.New("el producto de la promoción no existe")
	ErrPorcentajeInvalido    = errors.New("el porcentaje de descuento debe estar entre 0 y 100")
	ErrRangoFechasInvalido   = errors.New("la fecha de inicio debe ser anterior o igual a la fecha de fin")
)
