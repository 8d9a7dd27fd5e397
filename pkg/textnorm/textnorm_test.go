package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-api/pkg/textnorm"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Café Especial": "cafe especial",
		"ÁRBOL":         "arbol",
		"Pingüino":      "pinguino",
		"año":           "ano",
		"mouse":         "mouse",
		"":              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, textnorm.Normalize(in), "entrada %q", in)
	}
}

func TestContains_IgnoraTildesYMayusculas(t *testing.T) {
	needle := textnorm.Normalize("CAFÉ")
	assert.True(t, textnorm.Contains("Café Especial", needle))
	assert.True(t, textnorm.Contains("cafe molido", needle))
	assert.False(t, textnorm.Contains("Té verde", needle))
}

func TestNewCollator_OrdenEspanol(t *testing.T) {
	c := textnorm.NewCollator()
	assert.Negative(t, c.CompareString("nube", "ñu"), "ñ va después de n")
	assert.Negative(t, c.CompareString("árbol", "bote"))
}
