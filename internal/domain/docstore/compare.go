package docstore

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Compare ordena dos valores de documento del mismo tipo lógico (número, texto,
// booleano o fecha). ok=false si los tipos no son comparables.
func Compare(a, b any) (c int, ok bool) {
	if fa, okA := ToFloat(a); okA {
		fb, okB := ToFloat(b)
		if !okB {
			return 0, false
		}
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		}
		return 0, true
	}
	switch va := a.(type) {
	case string:
		vb, okB := b.(string)
		if !okB {
			return 0, false
		}
		return strings.Compare(va, vb), true
	case bool:
		vb, okB := b.(bool)
		if !okB {
			return 0, false
		}
		switch {
		case va == vb:
			return 0, true
		case !va:
			return -1, true
		}
		return 1, true
	case time.Time:
		vb, okB := b.(time.Time)
		if !okB {
			return 0, false
		}
		return va.Compare(vb), true
	}
	return 0, false
}

// Matches evalúa un predicado sobre los datos de un documento. Un campo ausente
// o de tipo distinto nunca coincide, igual que en Firestore.
func Matches(data map[string]any, p Predicate) bool {
	v, exists := data[p.Field]
	if !exists {
		return false
	}
	c, ok := Compare(v, p.Value)
	if !ok {
		return false
	}
	switch p.Op {
	case OpEq:
		return c == 0
	case OpGt:
		return c > 0
	case OpGte:
		return c >= 0
	case OpLt:
		return c < 0
	case OpLte:
		return c <= 0
	}
	return false
}

// ToFloat convierte cualquier numérico a float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case decimal.Decimal:
		return n.InexactFloat64(), true
	}
	return 0, false
}
