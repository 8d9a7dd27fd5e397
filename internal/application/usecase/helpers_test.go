package usecase_test

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/infrastructure/docrepo"
	"github.com/jhoicas/tienda-api/internal/infrastructure/memstore"
)

type fixture struct {
	users    *usecase.UserUseCase
	products *usecase.ProductUseCase
	stats    *usecase.StatsUseCase
}

func newFixture() fixture {
	gw := memstore.New()
	userRepo := docrepo.NewUserRepository(gw)
	productRepo := docrepo.NewProductRepository(gw)
	return fixture{
		users:    usecase.NewUserUseCase(userRepo, 4),
		products: usecase.NewProductUseCase(productRepo),
		stats:    usecase.NewStatsUseCase(userRepo, productRepo),
	}
}

func intPtr(n int) *int             { return &n }
func strPtr(s string) *string       { return &s }
func dec(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }
