package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// StatsUseCase estadísticas agregadas sobre los registros activos.
type StatsUseCase struct {
	users    repository.UserRepository
	products repository.ProductRepository
}

// NewStatsUseCase construye el caso de uso de estadísticas.
func NewStatsUseCase(users repository.UserRepository, products repository.ProductRepository) *StatsUseCase {
	return &StatsUseCase{users: users, products: products}
}

// Users total, edad promedio (2 decimales) y conteo por categoría.
func (uc *StatsUseCase) Users(ctx context.Context) (*dto.UserStatsResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, wrap("Error al obtener estadísticas", err)
	}
	return userStats(users), nil
}

// Products total, precio promedio, stock total, agotados y conteo por categoría.
func (uc *StatsUseCase) Products(ctx context.Context) (*dto.ProductStatsResponse, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, wrap("Error al obtener estadísticas", err)
	}
	return productStats(products), nil
}

// Global cantidad de registros activos de cada colección.
func (uc *StatsUseCase) Global(ctx context.Context) (*dto.GlobalStatsResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, wrap("Error al obtener estadísticas", err)
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, wrap("Error al obtener estadísticas", err)
	}
	return &dto.GlobalStatsResponse{
		Usuarios:  len(users),
		Productos: len(products),
		Mensaje:   "Usa ?tipo=usuarios o ?tipo=productos para estadísticas específicas",
	}, nil
}

func userStats(users []*entity.User) *dto.UserStatsResponse {
	out := &dto.UserStatsResponse{
		Tipo:         "usuarios",
		Total:        len(users),
		PorCategoria: make(map[string]int),
	}
	sum := decimal.Zero
	for _, u := range users {
		sum = sum.Add(decimal.NewFromInt(int64(u.Edad)))
		out.PorCategoria[u.Categoria]++
	}
	out.EdadPromedio = average(sum, len(users))
	return out
}

func productStats(products []*entity.Product) *dto.ProductStatsResponse {
	out := &dto.ProductStatsResponse{
		Tipo:         "productos",
		Total:        len(products),
		PorCategoria: make(map[string]int),
	}
	sum := decimal.Zero
	for _, p := range products {
		sum = sum.Add(p.Precio)
		out.StockTotal += p.Stock
		if p.Stock == 0 {
			out.ProductosAgotados++
		}
		out.PorCategoria[p.Categoria]++
	}
	out.PrecioPromedio = average(sum, len(products))
	return out
}

// average redondea a 2 decimales; 0 si no hay elementos.
func average(sum decimal.Decimal, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum.Div(decimal.NewFromInt(int64(n))).Round(2).InexactFloat64()
}
