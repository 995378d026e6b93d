package entity

import "strings"

// Cliente representa un cliente registrado de la tienda
type Cliente struct {
	IdCliente int    `json:"id_cliente"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion,omitempty"`
	Correo    string `json:"correo,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Ciudad    string `json:"ciudad,omitempty"`
}

// Validar verifica las reglas de negocio del cliente
func (c *Cliente) Validar() error {
	if strings.TrimSpace(c.Nombre) == "" {
		return ErrNombreRequerido
	}
	return nil
}
