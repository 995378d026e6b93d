package entity

import "github.com/shopspring/decimal"

var cien = decimal.NewFromInt(100)

// ProductoCarrito snapshot del producto al momento de agregarlo al carrito
type ProductoCarrito struct {
	IdProducto int
	Nombre     string
	Precio     decimal.Decimal
	Descuento  decimal.Decimal
	Stock      int
}

// LineaCarrito una línea del carrito: producto más cantidad
type LineaCarrito struct {
	Producto ProductoCarrito
	Cantidad int
}

// Subtotal calcula cantidad * precio * (1 - descuento/100), redondeado a
// dos decimales
func (l *LineaCarrito) Subtotal() decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(l.Producto.Descuento.Div(cien))
	return l.Producto.Precio.
		Mul(decimal.NewFromInt(int64(l.Cantidad))).
		Mul(factor).
		Round(2)
}

// Carrito acumula líneas de venta antes de confirmar la compra.
// Es una estructura pura en memoria: no toca la base de datos.
type Carrito struct {
	lineas []LineaCarrito
}

// NewCarrito crea un carrito vacío
func NewCarrito() *Carrito {
	return &Carrito{}
}

// Agregar suma una cantidad de producto al carrito. Si el producto ya está,
// las cantidades se combinan en una sola línea. Si la cantidad resultante
// supera el stock disponible el carrito queda sin cambios.
func (c *Carrito) Agregar(producto ProductoCarrito, cantidad int) error {
	if cantidad <= 0 {
		return ErrCantidadInvalida
	}

	for i := range c.lineas {
		if c.lineas[i].Producto.IdProducto == producto.IdProducto {
			nuevaCantidad := c.lineas[i].Cantidad + cantidad
			if nuevaCantidad > producto.Stock {
				return ErrStockInsuficiente
			}
			c.lineas[i].Cantidad = nuevaCantidad
			c.lineas[i].Producto = producto
			return nil
		}
	}

	if cantidad > producto.Stock {
		return ErrStockInsuficiente
	}

	c.lineas = append(c.lineas, LineaCarrito{Producto: producto, Cantidad: cantidad})
	return nil
}

// ActualizarCantidad fija la cantidad de una línea existente
func (c *Carrito) ActualizarCantidad(idProducto, cantidad int) error {
	if cantidad <= 0 {
		return ErrCantidadInvalida
	}

	for i := range c.lineas {
		if c.lineas[i].Producto.IdProducto == idProducto {
			if cantidad > c.lineas[i].Producto.Stock {
				return ErrStockInsuficiente
			}
			c.lineas[i].Cantidad = cantidad
			return nil
		}
	}

	return ErrProductoNoEncontrado
}

// Quitar elimina la línea del producto dado
func (c *Carrito) Quitar(idProducto int) error {
	for i := range c.lineas {
		if c.lineas[i].Producto.IdProducto == idProducto {
			c.lineas = append(c.lineas[:i], c.lineas[i+1:]...)
			return nil
		}
	}
	return ErrProductoNoEncontrado
}

// Vaciar descarta todas las líneas
func (c *Carrito) Vaciar() {
	c.lineas = nil
}

// Lineas retorna una copia de las líneas del carrito
func (c *Carrito) Lineas() []LineaCarrito {
	out := make([]LineaCarrito, len(c.lineas))
	copy(out, c.lineas)
	return out
}

// EstaVacio indica si el carrito no tiene líneas
func (c *Carrito) EstaVacio() bool {
	return len(c.lineas) == 0
}

// NumeroArticulos retorna la suma de cantidades de todas las líneas
func (c *Carrito) NumeroArticulos() int {
	total := 0
	for i := range c.lineas {
		total += c.lineas[i].Cantidad
	}
	return total
}

// Total suma los subtotales de todas las líneas
func (c *Carrito) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.lineas {
		total = total.Add(c.lineas[i].Subtotal())
	}
	return total
}
