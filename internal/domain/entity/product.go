package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock nunca es negativo; Precio siempre es mayor a 0.
type Product struct {
	ID                 string
	Nombre             string
	Precio             decimal.Decimal
	Categoria          string
	Stock              int
	Descripcion        string
	Activo             bool
	Version            int64
	FechaCreacion      time.Time
	FechaActualizacion time.Time
	FechaEliminacion   *time.Time
}
