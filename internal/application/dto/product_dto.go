package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Precio acepta número o texto decimal.
type CreateProductRequest struct {
	Nombre      string           `json:"nombre" validate:"required,max=200"`
	Precio      *decimal.Decimal `json:"precio" validate:"required"`
	Categoria   string           `json:"categoria" validate:"required,max=100"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	Descripcion string           `json:"descripcion"`
}

// UpdateProductRequest actualización parcial; los campos ausentes no se modifican.
type UpdateProductRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,max=200"`
	Precio      *decimal.Decimal `json:"precio"`
	Categoria   *string          `json:"categoria" validate:"omitempty,max=100"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	Descripcion *string          `json:"descripcion"`
}

// SetStockRequest fija el stock absoluto.
type SetStockRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

// ReduceStockRequest descuenta unidades del stock.
type ReduceStockRequest struct {
	Cantidad *int `json:"cantidad" validate:"required,gt=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                 string     `json:"id"`
	Nombre             string     `json:"nombre"`
	Precio             float64    `json:"precio"`
	Categoria          string     `json:"categoria"`
	Stock              int        `json:"stock"`
	Descripcion        string     `json:"descripcion"`
	Activo             bool       `json:"activo"`
	FechaCreacion      time.Time  `json:"fechaCreacion"`
	FechaActualizacion time.Time  `json:"fechaActualizacion"`
	FechaEliminacion   *time.Time `json:"fechaEliminacion,omitempty"`
}

// ProductListResponse listado de productos; los campos opcionales describen la consulta.
type ProductListResponse struct {
	Total            int               `json:"total"`
	FiltrosAplicados map[string]string `json:"filtros_aplicados,omitempty"`
	TextoBuscado     string            `json:"texto_buscado,omitempty"`
	Categoria        string            `json:"categoria,omitempty"`
	Productos        []ProductResponse `json:"productos"`
}

// ProductMutationResponse resultado de crear, actualizar o eliminar un producto.
type ProductMutationResponse struct {
	Mensaje  string          `json:"mensaje"`
	Producto ProductResponse `json:"producto"`
}

// ProductStatsResponse estadísticas de productos activos.
type ProductStatsResponse struct {
	Tipo              string         `json:"tipo"`
	Total             int            `json:"total"`
	PrecioPromedio    float64        `json:"precio_promedio"`
	StockTotal        int            `json:"stock_total"`
	ProductosAgotados int            `json:"productos_agotados"`
	PorCategoria      map[string]int `json:"por_categoria"`
}
