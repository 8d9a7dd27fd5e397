package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/filter"
)

// ProductPatch campos modificables de un producto; nil = no se toca.
type ProductPatch struct {
	Nombre      *string
	Precio      *decimal.Decimal
	Categoria   *string
	Stock       *int
	Descripcion *string
}

// Empty indica si el parche no modifica ningún campo.
func (p ProductPatch) Empty() bool {
	return p.Nombre == nil && p.Precio == nil && p.Categoria == nil && p.Stock == nil && p.Descripcion == nil
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven solo productos activos; (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	ListByCategoria(ctx context.Context, categoria string) ([]*entity.Product, error)
	ListInStock(ctx context.Context) ([]*entity.Product, error)
	ListOutOfStock(ctx context.Context) ([]*entity.Product, error)
	Filter(ctx context.Context, plan filter.Plan) ([]*entity.Product, error)
	Search(ctx context.Context, text string) ([]*entity.Product, error)
	Categorias(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, patch ProductPatch) (*entity.Product, error)
	// SetStock fija el stock absoluto.
	SetStock(ctx context.Context, id string, stock int) (*entity.Product, error)
	// ReduceStock descuenta amount con escritura condicional por versión.
	// domain.ErrInsufficientStock si quedaría negativo; domain.ErrStaleWrite si
	// otra escritura se adelantó.
	ReduceStock(ctx context.Context, id string, amount int) (*entity.Product, error)
	SoftDelete(ctx context.Context, id string) (*entity.Product, error)
	HardDelete(ctx context.Context, id string) error
}
