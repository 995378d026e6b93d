package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/entity"
	"github.com/SamuelBrambila12/MisTrapitos/src/reports/domain/port"
)

// subtotalSQL subtotal de una línea vendida con el descuento aplicado
const subtotalSQL = `d.cantidad * d.precio_unitario * (1 - d.descuento_aplicado / 100.0)`

// ReportePostgresRepository implementa las consultas de agregación de los
// reportes directamente en SQL
type ReportePostgresRepository struct {
	db *sql.DB
}

func NewReportePostgresRepository(db *sql.DB) port.ReporteQueryRepository {
	return &ReportePostgresRepository{db: db}
}

// Ventas lista las ventas del periodo con cliente y método de pago
func (r *ReportePostgresRepository) Ventas(ctx context.Context, desde, hasta *time.Time) (*entity.ReporteTabla, error) {
	query := `
		SELECT v.id_venta, COALESCE(c.nombre, 'Público general'), v.fecha,
			v.metodo_pago, v.total
		FROM ventas v
		LEFT JOIN clientes c ON v.id_cliente = c.id_cliente
	`
	var args []interface{}
	if desde != nil && hasta != nil {
		query += ` WHERE v.fecha >= $1 AND v.fecha < $2`
		args = append(args, *desde, hasta.AddDate(0, 0, 1))
	}
	query += ` ORDER BY v.fecha DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error consultando reporte de ventas: %w", err)
	}
	defer rows.Close()

	var filas [][]string
	for rows.Next() {
		var idVenta int
		var cliente, metodoPago string
		var fecha time.Time
		var total float64
		if err := rows.Scan(&idVenta, &cliente, &fecha, &metodoPago, &total); err != nil {
			return nil, fmt.Errorf("error escaneando venta: %w", err)
		}
		filas = append(filas, []string{
			fmt.Sprintf("%d", idVenta),
			cliente,
			fecha.Format("02/01/2006 15:04"),
			metodoPago,
			fmt.Sprintf("%.2f", total),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando ventas: %w", err)
	}

	return &entity.ReporteTabla{
		Titulo:    "Reporte de Ventas",
		Columnas:  []string{"ID Venta", "Cliente", "Fecha", "Método Pago", "Total"},
		Secciones: []entity.Seccion{{Filas: filas}},
	}, nil
}

// Inventario lista el catálogo completo con existencias y descuento vigente
func (r *ReportePostgresRepository) Inventario(ctx context.Context) (*entity.ReporteTabla, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id_producto, p.nombre, COALESCE(c.nombre, 'Sin categoría'),
			p.precio, p.stock, COALESCE(p.sizes, ''), COALESCE(p.colors, ''), p.descuento
		FROM productos p
		LEFT JOIN categorias c ON p.id_categoria = c.id_categoria
		ORDER BY p.nombre`)
	if err != nil {
		return nil, fmt.Errorf("error consultando inventario: %w", err)
	}
	defer rows.Close()

	var filas [][]string
	for rows.Next() {
		var idProducto, stock int
		var nombre, categoria, tallas, colores string
		var precio, descuento float64
		if err := rows.Scan(&idProducto, &nombre, &categoria, &precio, &stock, &tallas, &colores, &descuento); err != nil {
			return nil, fmt.Errorf("error escaneando producto: %w", err)
		}
		filas = append(filas, []string{
			fmt.Sprintf("%d", idProducto),
			nombre,
			categoria,
			fmt.Sprintf("%.2f", precio),
			fmt.Sprintf("%d", stock),
			tallas,
			colores,
			fmt.Sprintf("%.2f", descuento),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando inventario: %w", err)
	}

	return &entity.ReporteTabla{
		Titulo:    "Reporte de Inventario",
		Columnas:  []string{"ID Producto", "Nombre", "Categoría", "Precio", "Stock", "Tallas", "Colores", "Descuento"},
		Secciones: []entity.Seccion{{Filas: filas}},
	}, nil
}

// MasVendidos productos ordenados por unidades vendidas
func (r *ReportePostgresRepository) MasVendidos(ctx context.Context) (*entity.ReporteTabla, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT p.nombre, COALESCE(c.nombre, 'Sin categoría'),
			SUM(d.cantidad) AS cantidad_vendida,
			SUM(%s) AS total_vendido
		FROM detalle_venta d
		JOIN productos p ON d.id_producto = p.id_producto
		LEFT JOIN categorias c ON p.id_categoria = c.id_categoria
		GROUP BY p.id_producto, p.nombre, c.nombre
		ORDER BY cantidad_vendida DESC`, subtotalSQL))
	if err != nil {
		return nil, fmt.Errorf("error consultando más vendidos: %w", err)
	}
	defer rows.Close()

	var filas [][]string
	for rows.Next() {
		var nombre, categoria string
		var cantidad int
		var total float64
		if err := rows.Scan(&nombre, &categoria, &cantidad, &total); err != nil {
			return nil, fmt.Errorf("error escaneando fila: %w", err)
		}
		filas = append(filas, []string{
			nombre,
			categoria,
			fmt.Sprintf("%d", cantidad),
			fmt.Sprintf("%.2f", total),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando más vendidos: %w", err)
	}

	return &entity.ReporteTabla{
		Titulo:    "Productos Más Vendidos",
		Columnas:  []string{"Nombre", "Categoría", "Cantidad Vendida", "Total Vendido"},
		Secciones: []entity.Seccion{{Filas: filas}},
	}, nil
}

// VentasPorCategoria total vendido por categoría
func (r *ReportePostgresRepository) VentasPorCategoria(ctx context.Context) (*entity.ReporteTabla, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT COALESCE(c.nombre, 'Sin categoría'), SUM(%s) AS total_vendido
		FROM detalle_venta d
		JOIN productos p ON d.id_producto = p.id_producto
		LEFT JOIN categorias c ON p.id_categoria = c.id_categoria
		GROUP BY c.nombre
		ORDER BY total_vendido DESC`, subtotalSQL))
	if err != nil {
		return nil, fmt.Errorf("error consultando ventas por categoría: %w", err)
	}
	defer rows.Close()

	var filas [][]string
	for rows.Next() {
		var categoria string
		var total float64
		if err := rows.Scan(&categoria, &total); err != nil {
			return nil, fmt.Errorf("error escaneando fila: %w", err)
		}
		filas = append(filas, []string{categoria, fmt.Sprintf("%.2f", total)})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando ventas por categoría: %w", err)
	}

	return &entity.ReporteTabla{
		Titulo:    "Ventas por Categoría",
		Columnas:  []string{"Categoría", "Total Vendido"},
		Secciones: []entity.Seccion{{Filas: filas}},
	}, nil
}

// MetodosPago frecuencia de uso de cada método de pago
func (r *ReportePostgresRepository) MetodosPago(ctx context.Context) (*entity.ReporteTabla, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT metodo_pago, COUNT(*) AS veces
		FROM ventas
		GROUP BY metodo_pago
		ORDER BY veces DESC`)
	if err != nil {
		return nil, fmt.Errorf("error consultando métodos de pago: %w", err)
	}
	defer rows.Close()

	var filas [][]string
	for rows.Next() {
		var metodo string
		var veces int
		if err := rows.Scan(&metodo, &veces); err != nil {
			return nil, fmt.Errorf("error escaneando fila: %w", err)
		}
		filas = append(filas, []string{metodo, fmt.Sprintf("%d", veces)})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando métodos de pago: %w", err)
	}

	return &entity.ReporteTabla{
		Titulo:    "Métodos de Pago Más Utilizados",
		Columnas:  []string{"Método", "Veces"},
		Secciones: []entity.Seccion{{Filas: filas}},
	}, nil
}

// VentasPorCiudad ventas agregadas por ciudad del cliente, con la lista de
// productos distintos vendidos en cada una
func (r *ReportePostgresRepository) VentasPorCiudad(ctx context.Context) (*entity.ReporteTabla, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT COALESCE(NULLIF(c.ciudad, ''), 'Sin ciudad') AS ciudad,
			COUNT(DISTINCT v.id_venta) AS cantidad_ventas,
			SUM(%s) AS total_vendido,
			STRING_AGG(DISTINCT p.nombre, ', ') AS productos
		FROM ventas v
		JOIN clientes c ON v.id_cliente = c.id_cliente
		JOIN detalle_venta d ON d.id_venta = v.id_venta
		JOIN productos p ON d.id_producto = p.id_producto
		GROUP BY ciudad
		ORDER BY total_vendido DESC`, subtotalSQL))
	if err != nil {
		return nil, fmt.Errorf("error consultando ventas por ciudad: %w", err)
	}
	defer rows.Close()

	var filas [][]string
	for rows.Next() {
		var ciudad, productos string
		var cantidad int
		var total float64
		if err := rows.Scan(&ciudad, &cantidad, &total, &productos); err != nil {
			return nil, fmt.Errorf("error escaneando fila: %w", err)
		}
		filas = append(filas, []string{
			ciudad,
			fmt.Sprintf("%d", cantidad),
			fmt.Sprintf("%.2f", total),
			productos,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando ventas por ciudad: %w", err)
	}

	return &entity.ReporteTabla{
		Titulo:    "Ventas por Ciudad",
		Columnas:  []string{"Ciudad", "Cantidad de Ventas", "Total Vendido", "Productos"},
		Secciones: []entity.Seccion{{Filas: filas}},
	}, nil
}

// MayorStock producto con más existencias
func (r *ReportePostgresRepository) MayorStock(ctx context.Context) (*entity.ReporteTabla, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT nombre, stock FROM productos
		WHERE stock = (SELECT MAX(stock) FROM productos)
		ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("error consultando mayor stock: %w", err)
	}
	defer rows.Close()

	var filas [][]string
	for rows.Next() {
		var nombre string
		var stock int
		if err := rows.Scan(&nombre, &stock); err != nil {
			return nil, fmt.Errorf("error escaneando fila: %w", err)
		}
		filas = append(filas, []string{nombre, fmt.Sprintf("%d", stock)})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando mayor stock: %w", err)
	}

	return &entity.ReporteTabla{
		Titulo:    "Producto con Mayor Stock",
		Columnas:  []string{"Nombre", "Stock"},
		Secciones: []entity.Seccion{{Filas: filas}},
	}, nil
}

// ProductosPorProveedor inventario agrupado por proveedor, una sección por
// proveedor
func (r *ReportePostgresRepository) ProductosPorProveedor(ctx context.Context) (*entity.ReporteTabla, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pr.nombre AS proveedor, p.nombre, p.stock
		FROM proveedores pr
		JOIN productos p ON p.id_proveedor = pr.id_proveedor
		ORDER BY pr.nombre, p.nombre`)
	if err != nil {
		return nil, fmt.Errorf("error consultando productos por proveedor: %w", err)
	}
	defer rows.Close()

	var secciones []entity.Seccion
	var actual *entity.Seccion
	for rows.Next() {
		var proveedor, producto string
		var stock int
		if err := rows.Scan(&proveedor, &producto, &stock); err != nil {
			return nil, fmt.Errorf("error escaneando fila: %w", err)
		}

		encabezado := "Proveedor: " + proveedor
		if actual == nil || actual.Encabezado != encabezado {
			secciones = append(secciones, entity.Seccion{Encabezado: encabezado})
			actual = &secciones[len(secciones)-1]
		}
		actual.Filas = append(actual.Filas, []string{producto, fmt.Sprintf("%d", stock)})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando productos por proveedor: %w", err)
	}

	return &entity.ReporteTabla{
		Titulo:    "Productos por Proveedor",
		Columnas:  []string{"Producto", "Stock"},
		Secciones: secciones,
	}, nil
}

// CompradosMasDeUnaVez productos que cada cliente compró en más de una
// venta, una sección por cliente
func (r *ReportePostgresRepository) CompradosMasDeUnaVez(ctx context.Context) (*entity.ReporteTabla, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.nombre AS cliente, p.nombre AS producto, COUNT(DISTINCT v.id_venta) AS veces
		FROM ventas v
		JOIN clientes c ON v.id_cliente = c.id_cliente
		JOIN detalle_venta d ON d.id_venta = v.id_venta
		JOIN productos p ON d.id_producto = p.id_producto
		GROUP BY c.id_cliente, c.nombre, p.id_producto, p.nombre
		HAVING COUNT(DISTINCT v.id_venta) > 1
		ORDER BY c.nombre, veces DESC`)
	if err != nil {
		return nil, fmt.Errorf("error consultando comprados más de una vez: %w", err)
	}
	defer rows.Close()

	var secciones []entity.Seccion
	var actual *entity.Seccion
	for rows.Next() {
		var cliente, producto string
		var veces int
		if err := rows.Scan(&cliente, &producto, &veces); err != nil {
			return nil, fmt.Errorf("error escaneando fila: %w", err)
		}

		encabezado := "Cliente: " + cliente
		if actual == nil || actual.Encabezado != encabezado {
			secciones = append(secciones, entity.Seccion{Encabezado: encabezado})
			actual = &secciones[len(secciones)-1]
		}
		actual.Filas = append(actual.Filas, []string{producto, fmt.Sprintf("%d", veces)})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando comprados más de una vez: %w", err)
	}

	return &entity.ReporteTabla{
		Titulo:    "Productos Comprados Más de una Vez",
		Columnas:  []string{"Producto", "Veces"},
		Secciones: secciones,
	}, nil
}

// NoVendidosTresMeses productos sin ventas en los últimos tres meses
func (r *ReportePostgresRepository) NoVendidosTresMeses(ctx context.Context) (*entity.ReporteTabla, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.nombre
		FROM productos p
		WHERE NOT EXISTS (
			SELECT 1
			FROM detalle_venta d
			JOIN ventas v ON d.id_venta = v.id_venta
			WHERE d.id_producto = p.id_producto
			  AND v.fecha >= CURRENT_DATE - INTERVAL '3 months'
		)
		ORDER BY p.nombre`)
	if err != nil {
		return nil, fmt.Errorf("error consultando no vendidos: %w", err)
	}
	defer rows.Close()

	var filas [][]string
	for rows.Next() {
		var nombre string
		if err := rows.Scan(&nombre); err != nil {
			return nil, fmt.Errorf("error escaneando fila: %w", err)
		}
		filas = append(filas, []string{nombre})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterando no vendidos: %w", err)
	}

	return &entity.ReporteTabla{
		Titulo:    "Productos No Vendidos en los Últimos 3 Meses",
		Columnas:  []string{"Producto"},
		Secciones: []entity.Seccion{{Filas: filas}},
	}, nil
}
