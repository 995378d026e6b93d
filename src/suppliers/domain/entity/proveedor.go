package entity

import (
	"errors"
	"strings"
)

// Errores de dominio del módulo de proveedores
var (
	ErrNombreRequerido      = errors.New("el nombre del proveedor es requerido")
	ErrProveedorNoEncontrado = errors.New("proveedor no encontrado")
)

// Proveedor representa un proveedor de mercancía
type Proveedor struct {
	IdProveedor       int    `json:"id_proveedor"`
	Nombre            string `json:"nombre"`
	Contacto          string `json:"contacto,omitempty"`
	Direccion         string `json:"direccion,omitempty"`
	Telefono          string `json:"telefono,omitempty"`
	Correo            string `json:"correo,omitempty"`
	ProductosVendidos string `json:"productos_vendidos,omitempty"`
}

// Validar verifica las reglas de negocio del proveedor
func (p *Proveedor) Validar() error {
	if strings.TrimSpace(p.Nombre) == "" {
		return ErrNombreRequerido
	}
	return nil
}
