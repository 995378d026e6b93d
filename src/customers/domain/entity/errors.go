package entity

import "errors"

// Errores de dominio del módulo de clientes
var (
	ErrNombreRequerido     = errors.New("el nombre del cliente es requerido")
	ErrClienteNoEncontrado = errors.New("cliente no encontrado")
	ErrClienteConVentas    = errors.New("el cliente tiene ventas registradas")
)
