package docrepo

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-api/internal/domain/docstore"
	"github.com/jhoicas/tienda-api/internal/domain/filter"
)

func TestProductFromDoc_PrecioDecimalOFloat(t *testing.T) {
	exact := productFromDoc(docstore.Document{ID: "a", Data: map[string]any{
		filter.FieldPrecio: decimal.RequireFromString("0.30"),
	}})
	assert.Equal(t, "0.3", exact.Precio.String())

	fromFloat := productFromDoc(docstore.Document{ID: "b", Data: map[string]any{
		filter.FieldPrecio: 19.99,
	}})
	assert.True(t, fromFloat.Precio.Equal(decimal.RequireFromString("19.99")))

	missing := productFromDoc(docstore.Document{ID: "c", Data: map[string]any{}})
	assert.True(t, missing.Precio.IsZero())
}
