// Package store elige la implementación de docstore.Gateway según STORE_DRIVER.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/docstore"
	"github.com/jhoicas/tienda-api/internal/domain/filter"
	"github.com/jhoicas/tienda-api/internal/infrastructure/firestoredb"
	"github.com/jhoicas/tienda-api/internal/infrastructure/memstore"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-api/pkg/config"
)

// Open abre el almacén configurado. La función devuelta libera el cliente y
// debe llamarse al apagar.
func Open(ctx context.Context, cfg *config.Config) (docstore.Gateway, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverFirestore:
		gw, err := firestoredb.NewGateway(ctx, cfg.Firebase)
		if err != nil {
			return nil, nil, err
		}
		return gw, func() { _ = gw.Close() }, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		gw := postgres.NewDocumentGateway(pool, postgres.WithNumericFields(filter.CollectionProducts, filter.FieldPrecio))
		return gw, pool.Close, nil
	case config.DriverMemory:
		return memstore.New(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("driver de almacén desconocido %q", cfg.Store.Driver)
	}
}
