package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/validation"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/filter"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo. Precio > 0 y stock >= 0 siempre.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve los productos activos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, wrap("Error al obtener productos", err)
	}
	return toProductResponses(products), nil
}

// GetByID obtiene un producto activo; ErrProductNotFound si no existe o está inactivo.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrap("Error al obtener producto", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// Create crea un producto. Stock ausente = 0.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Categoria = strings.TrimSpace(in.Categoria)
	in.Descripcion = strings.TrimSpace(in.Descripcion)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := checkPrecio(*in.Precio); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Nombre:      in.Nombre,
		Precio:      *in.Precio,
		Categoria:   in.Categoria,
		Descripcion: in.Descripcion,
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, wrap("Error al crear producto", err)
	}
	return toProductResponse(product), nil
}

// Update aplica una actualización parcial.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var patch repository.ProductPatch
	if in.Nombre != nil {
		v := strings.TrimSpace(*in.Nombre)
		if v == "" {
			return nil, domain.Validation("El nombre no puede estar vacío")
		}
		patch.Nombre = &v
	}
	if in.Categoria != nil {
		v := strings.TrimSpace(*in.Categoria)
		if v == "" {
			return nil, domain.Validation("La categoría no puede estar vacía")
		}
		patch.Categoria = &v
	}
	if in.Descripcion != nil {
		v := strings.TrimSpace(*in.Descripcion)
		patch.Descripcion = &v
	}
	if in.Precio != nil {
		if err := checkPrecio(*in.Precio); err != nil {
			return nil, err
		}
		patch.Precio = in.Precio
	}
	patch.Stock = in.Stock
	if patch.Empty() {
		return nil, domain.Validation("No se proporcionaron datos para actualizar.")
	}

	product, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, wrap("Error al actualizar producto", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// Delete borrado lógico.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, wrap("Error al eliminar producto", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// DeletePermanent borrado físico; no falla si el producto no existe.
func (uc *ProductUseCase) DeletePermanent(ctx context.Context, id string) error {
	return wrap("Error al eliminar producto permanentemente", uc.repo.HardDelete(ctx, id))
}

// Filter compila los parámetros con filter.Products y rechaza cotas negativas.
func (uc *ProductUseCase) Filter(ctx context.Context, params map[string]string) ([]dto.ProductResponse, error) {
	plan := filter.Products.Compile(params)
	for _, bound := range []struct{ param, msg string }{
		{"precio_min", "El precio mínimo no puede ser negativo"},
		{"precio_max", "El precio máximo no puede ser negativo"},
		{"stock_min", "El stock mínimo no puede ser negativo"},
		{"stock_max", "El stock máximo no puede ser negativo"},
	} {
		if v, ok := plan.Numbers[bound.param]; ok && v < 0 {
			return nil, domain.Validation(bound.msg)
		}
	}

	products, err := uc.repo.Filter(ctx, plan)
	if err != nil {
		return nil, wrap("Error al filtrar productos", err)
	}
	return toProductResponses(products), nil
}

// Search busca texto en nombre, descripción y categoría.
func (uc *ProductUseCase) Search(ctx context.Context, texto string) ([]dto.ProductResponse, error) {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return nil, domain.Validation("Texto de búsqueda es requerido")
	}
	products, err := uc.repo.Search(ctx, texto)
	if err != nil {
		return nil, wrap("Error al buscar productos", err)
	}
	return toProductResponses(products), nil
}

// ByCategoria productos activos de una categoría.
func (uc *ProductUseCase) ByCategoria(ctx context.Context, categoria string) ([]dto.ProductResponse, error) {
	categoria = strings.TrimSpace(categoria)
	if categoria == "" {
		return nil, domain.Validation("Categoría es requerida")
	}
	products, err := uc.repo.ListByCategoria(ctx, categoria)
	if err != nil {
		return nil, wrap("Error al obtener productos por categoría", err)
	}
	return toProductResponses(products), nil
}

// Categorias categorías distintas de productos activos.
func (uc *ProductUseCase) Categorias(ctx context.Context) ([]string, error) {
	cats, err := uc.repo.Categorias(ctx)
	if err != nil {
		return nil, wrap("Error al obtener categorías", err)
	}
	return cats, nil
}

// InStock productos con stock disponible.
func (uc *ProductUseCase) InStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListInStock(ctx)
	if err != nil {
		return nil, wrap("Error al obtener productos con stock", err)
	}
	return toProductResponses(products), nil
}

// OutOfStock productos agotados.
func (uc *ProductUseCase) OutOfStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListOutOfStock(ctx)
	if err != nil {
		return nil, wrap("Error al obtener productos agotados", err)
	}
	return toProductResponses(products), nil
}

// SetStock fija el stock absoluto (>= 0).
func (uc *ProductUseCase) SetStock(ctx context.Context, id string, in dto.SetStockRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.SetStock(ctx, id, *in.Stock)
	if err != nil {
		return nil, wrap("Error al actualizar stock", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// ReduceStock descuenta in.Cantidad. ErrInsufficientStock si el resultado sería
// negativo; ErrStaleWrite si otra petición modificó el producto a la vez.
func (uc *ProductUseCase) ReduceStock(ctx context.Context, id string, in dto.ReduceStockRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	product, err := uc.repo.ReduceStock(ctx, id, *in.Cantidad)
	if err != nil {
		return nil, wrap("Error al reducir stock", err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

func checkPrecio(p decimal.Decimal) error {
	if !p.IsPositive() {
		return domain.Validation("El precio debe ser mayor a 0")
	}
	return nil
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                 p.ID,
		Nombre:             p.Nombre,
		Precio:             p.Precio.InexactFloat64(),
		Categoria:          p.Categoria,
		Stock:              p.Stock,
		Descripcion:        p.Descripcion,
		Activo:             p.Activo,
		FechaCreacion:      p.FechaCreacion,
		FechaActualizacion: p.FechaActualizacion,
		FechaEliminacion:   p.FechaEliminacion,
	}
}
