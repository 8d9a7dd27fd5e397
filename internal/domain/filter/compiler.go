package filter

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/jhoicas/tienda-api/internal/domain/docstore"
	"github.com/jhoicas/tienda-api/pkg/textnorm"
)

// TextFilter filtro de subcadena aplicado en memoria; Needle ya está normalizado.
type TextFilter struct {
	Field  string
	Needle string
}

// Plan resultado de compilar los parámetros: la consulta nativa y lo que queda
// por aplicar en memoria. Fallback y Query.OrderBy nunca están ambos presentes.
type Plan struct {
	Query       docstore.Query
	TextFilters []TextFilter
	Fallback    *SortKey
	// Numbers valores numéricos efectivamente aplicados, por nombre de parámetro.
	Numbers map[string]float64
}

// Compile traduce los parámetros crudos. Parámetros desconocidos, vacíos o con
// números no interpretables se ignoran sin error: el filtrado es permisivo.
// De los números se toma el prefijo numérico: "2.5" en un campo entero vale 2
// y "12.5kg" vale 12.5.
func (s *Spec) Compile(params map[string]string) Plan {
	plan := Plan{
		Query: docstore.Query{
			Collection: s.collection,
			Predicates: []docstore.Predicate{docstore.Where(FieldActivo, docstore.OpEq, true)},
		},
		Numbers: make(map[string]float64),
	}

	for _, f := range s.fields {
		raw := strings.TrimSpace(params[f.Param])
		if raw == "" {
			continue
		}
		switch f.Kind {
		case Equality:
			plan.Query.Predicates = append(plan.Query.Predicates, docstore.Where(f.Target, docstore.OpEq, raw))
		case Range:
			value, n, ok := parseNumber(raw, f.Number)
			if !ok {
				continue
			}
			plan.Numbers[f.Param] = n
			plan.Query.Predicates = append(plan.Query.Predicates, docstore.Where(f.Target, f.Op, value))
		case Text:
			plan.TextFilters = append(plan.TextFilters, TextFilter{Field: f.Target, Needle: textnorm.Normalize(raw)})
		}
	}

	if key := strings.ToLower(strings.TrimSpace(params[ParamOrdenar])); key != "" {
		if sk, ok := s.sorts[key]; ok {
			if sk.Native {
				plan.Query.OrderBy = &docstore.Order{Field: sk.Field, Dir: sk.Dir}
			} else {
				plan.Fallback = &sk
			}
		}
	}

	// El límite es nativo: se aplica antes del filtro de texto y del orden de
	// respaldo, así que con ellos puede devolver menos de n resultados.
	if n, ok := leadingInt(strings.TrimSpace(params[ParamLimite])); ok && n > 0 && n <= math.MaxInt32 {
		plan.Query.Limit = int(n)
	}
	return plan
}

var (
	intPrefix   = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatPrefix = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?`)
)

func parseNumber(raw string, kind Number) (value any, asFloat float64, ok bool) {
	switch kind {
	case Int:
		n, ok := leadingInt(raw)
		if !ok {
			return nil, 0, false
		}
		return n, float64(n), true
	default:
		f, ok := leadingFloat(raw)
		if !ok {
			return nil, 0, false
		}
		return f, f, true
	}
}

// leadingInt interpreta el entero al inicio de s e ignora el resto.
func leadingInt(s string) (int64, bool) {
	m := intPrefix.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(m, 10, 64)
	return n, err == nil
}

// leadingFloat interpreta el decimal al inicio de s e ignora el resto.
func leadingFloat(s string) (float64, bool) {
	m := floatPrefix.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Apply ejecuta sobre los registros ya consultados los filtros de texto y el
// orden de respaldo. value devuelve el valor de un campo del registro.
// El orden es estable: los empates conservan el orden devuelto por el almacén.
func Apply[T any](items []T, plan Plan, value func(T, string) any) []T {
	out := items
	for _, tf := range plan.TextFilters {
		kept := make([]T, 0, len(out))
		for _, it := range out {
			s, _ := value(it, tf.Field).(string)
			if textnorm.Contains(s, tf.Needle) {
				kept = append(kept, it)
			}
		}
		out = kept
	}

	if plan.Fallback != nil && plan.Query.OrderBy == nil {
		sk := *plan.Fallback
		coll := textnorm.NewCollator()
		sorted := slices.Clone(out)
		slices.SortStableFunc(sorted, func(a, b T) int {
			c := compareValues(coll.CompareString, value(a, sk.Field), value(b, sk.Field))
			if sk.Dir == docstore.Desc {
				return -c
			}
			return c
		})
		out = sorted
	}
	return out
}

func compareValues(cmpText func(a, b string) int, a, b any) int {
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return cmpText(sa, sb)
		}
	}
	c, _ := docstore.Compare(a, b)
	return c
}
