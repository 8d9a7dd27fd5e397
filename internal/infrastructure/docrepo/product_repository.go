package docrepo

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/docstore"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/filter"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el almacén de documentos.
type ProductRepo struct {
	c collection[entity.Product]
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(gw docstore.Gateway) *ProductRepo {
	return &ProductRepo{c: collection[entity.Product]{
		gw:     gw,
		name:   filter.CollectionProducts,
		decode: productFromDoc,
		now:    time.Now,
	}}
}

// Create persiste un producto nuevo: activo y con ambas fechas.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	now := r.c.now().UTC()
	product.Activo = true
	product.FechaCreacion = now
	product.FechaActualizacion = now
	product.FechaEliminacion = nil

	id, err := r.c.insert(ctx, productToDoc(product))
	if err != nil {
		return err
	}
	product.ID = id
	product.Version = 1
	return nil
}

// GetByID obtiene un producto activo por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.c.get(ctx, id)
}

// List devuelve todos los productos activos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.c.active(ctx)
}

// ListByCategoria productos activos de una categoría exacta.
func (r *ProductRepo) ListByCategoria(ctx context.Context, categoria string) ([]*entity.Product, error) {
	return r.c.active(ctx, docstore.Where(filter.FieldCategoria, docstore.OpEq, categoria))
}

// ListInStock productos activos con stock > 0.
func (r *ProductRepo) ListInStock(ctx context.Context) ([]*entity.Product, error) {
	return r.c.active(ctx, docstore.Where(filter.FieldStock, docstore.OpGt, int64(0)))
}

// ListOutOfStock productos activos con stock == 0.
func (r *ProductRepo) ListOutOfStock(ctx context.Context) ([]*entity.Product, error) {
	return r.c.active(ctx, docstore.Where(filter.FieldStock, docstore.OpEq, int64(0)))
}

// Filter ejecuta un plan compilado con filter.Products.
func (r *ProductRepo) Filter(ctx context.Context, plan filter.Plan) ([]*entity.Product, error) {
	return r.c.filter(ctx, plan, productField)
}

// Search busca text en nombre, descripción y categoría.
func (r *ProductRepo) Search(ctx context.Context, text string) ([]*entity.Product, error) {
	return r.c.search(ctx, text, productField, filter.FieldNombre, filter.FieldDescripcion, filter.FieldCategoria)
}

// Categorias categorías distintas de productos activos.
func (r *ProductRepo) Categorias(ctx context.Context) ([]string, error) {
	return r.c.categorias(ctx, productField)
}

// Update aplica el parche y refresca fechaActualizacion.
func (r *ProductRepo) Update(ctx context.Context, id string, patch repository.ProductPatch) (*entity.Product, error) {
	return r.c.modify(ctx, id, func(map[string]any) (map[string]any, error) {
		fields := r.touched()
		if patch.Nombre != nil {
			fields[filter.FieldNombre] = *patch.Nombre
		}
		if patch.Precio != nil {
			fields[filter.FieldPrecio] = patch.Precio.InexactFloat64()
		}
		if patch.Categoria != nil {
			fields[filter.FieldCategoria] = *patch.Categoria
		}
		if patch.Stock != nil {
			fields[filter.FieldStock] = int64(*patch.Stock)
		}
		if patch.Descripcion != nil {
			fields[filter.FieldDescripcion] = *patch.Descripcion
		}
		return fields, nil
	})
}

// SetStock fija el stock absoluto.
func (r *ProductRepo) SetStock(ctx context.Context, id string, stock int) (*entity.Product, error) {
	return r.c.modify(ctx, id, func(map[string]any) (map[string]any, error) {
		fields := r.touched()
		fields[filter.FieldStock] = int64(stock)
		return fields, nil
	})
}

// ReduceStock descuenta amount del stock leído. La escritura solo se aplica si
// nadie modificó el producto desde la lectura.
func (r *ProductRepo) ReduceStock(ctx context.Context, id string, amount int) (*entity.Product, error) {
	return r.c.modify(ctx, id, func(data map[string]any) (map[string]any, error) {
		next := int64(num(data, filter.FieldStock)) - int64(amount)
		if next < 0 {
			return nil, domain.ErrInsufficientStock
		}
		fields := r.touched()
		fields[filter.FieldStock] = next
		return fields, nil
	})
}

// SoftDelete marca el producto como inactivo.
func (r *ProductRepo) SoftDelete(ctx context.Context, id string) (*entity.Product, error) {
	return r.c.softDelete(ctx, id)
}

// HardDelete elimina físicamente el documento.
func (r *ProductRepo) HardDelete(ctx context.Context, id string) error {
	return r.c.hardDelete(ctx, id)
}

func (r *ProductRepo) touched() map[string]any {
	return map[string]any{filter.FieldFechaActualizacion: r.c.now().UTC()}
}
