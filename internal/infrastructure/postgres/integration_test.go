package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain/docstore"
	"github.com/jhoicas/tienda-api/pkg/config"
)

// newTestGateway abre TEST_DATABASE_URL y crea el esquema; sin la variable el
// test se omite. Cada test usa una colección propia.
func newTestGateway(t *testing.T) (*DocumentGateway, string) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, EnsureSchema(ctx, pool))

	coll := "products_" + uuid.NewString()[:8]
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM documents WHERE collection = $1`, coll)
	})
	return NewDocumentGateway(pool, WithNumericFields(coll, "precio")), coll
}

func TestDB_UpdateIfVersion(t *testing.T) {
	gw, coll := newTestGateway(t)
	ctx := context.Background()

	id, err := gw.Insert(ctx, coll, map[string]any{"nombre": "Café", "stock": int64(10)})
	require.NoError(t, err)

	err = gw.UpdateIfVersion(ctx, coll, id, 2, map[string]any{"stock": int64(9)})
	assert.ErrorIs(t, err, docstore.ErrVersionMismatch)

	require.NoError(t, gw.UpdateIfVersion(ctx, coll, id, 1, map[string]any{"stock": int64(9)}))
	doc, err := gw.Get(ctx, coll, id)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, float64(9), doc.Data["stock"])
	assert.Equal(t, float64(2), doc.Data[docstore.VersionField])

	err = gw.UpdateIfVersion(ctx, coll, id, 1, map[string]any{"stock": int64(8)})
	assert.ErrorIs(t, err, docstore.ErrVersionMismatch, "la versión ya avanzó")

	err = gw.UpdateIfVersion(ctx, coll, uuid.NewString(), 1, map[string]any{"stock": int64(1)})
	assert.ErrorIs(t, err, docstore.ErrNoDocument)
}

func TestDB_PrecioNumericoExacto(t *testing.T) {
	gw, coll := newTestGateway(t)
	ctx := context.Background()

	_, err := gw.Insert(ctx, coll, map[string]any{"nombre": "Té", "precio": 19.99, "activo": true})
	require.NoError(t, err)
	_, err = gw.Insert(ctx, coll, map[string]any{"nombre": "Azúcar", "activo": true})
	require.NoError(t, err)

	docs, err := gw.Query(ctx, docstore.Query{
		Collection: coll,
		Predicates: []docstore.Predicate{docstore.Where("activo", docstore.OpEq, true)},
	})
	require.NoError(t, err)
	require.Len(t, docs, 2)

	precio, ok := docs[0].Data["precio"].(decimal.Decimal)
	require.True(t, ok)
	assert.Equal(t, "19.99", precio.String())
	_, has := docs[1].Data["precio"]
	assert.False(t, has, "sin precio no se agrega el campo")
}
