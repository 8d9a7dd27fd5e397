package postgres

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/docstore"
)

// timeLayout ancho fijo en UTC: el orden lexicográfico en JSONB coincide con el cronológico.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// selectColumns lista id, data y una columna NUMERIC por cada campo de numeric.
// Agrega los nombres de campo a args.
func selectColumns(numeric []string, args *[]any) string {
	cols := []string{"id::text", "data"}
	for _, field := range numeric {
		*args = append(*args, field)
		cols = append(cols, fmt.Sprintf("(data ->> $%d::text)::numeric", len(*args)))
	}
	return strings.Join(cols, ", ")
}

// buildSelect arma el SELECT para una docstore.Query. Los nombres de campo viajan
// como parámetros (data -> $n), nunca interpolados en el SQL.
func buildSelect(q docstore.Query, numeric []string) (string, []any, error) {
	var sb strings.Builder
	args := []any{q.Collection}
	cols := selectColumns(numeric, &args)
	sb.WriteString("SELECT " + cols + " FROM documents WHERE collection = $1")

	for _, p := range q.Predicates {
		op, ok := sqlOps[p.Op]
		if !ok {
			return "", nil, fmt.Errorf("operador no soportado %q", p.Op)
		}
		raw, err := json.Marshal(encodeValue(p.Value))
		if err != nil {
			return "", nil, fmt.Errorf("codificar valor de %s: %w", p.Field, err)
		}
		args = append(args, p.Field, string(raw))
		fmt.Fprintf(&sb, " AND data -> $%d::text %s $%d::jsonb", len(args)-1, op, len(args))
	}

	if q.OrderBy != nil {
		args = append(args, q.OrderBy.Field)
		dir := "ASC"
		if q.OrderBy.Dir == docstore.Desc {
			dir = "DESC"
		}
		fmt.Fprintf(&sb, " AND data -> $%d::text IS NOT NULL ORDER BY data -> $%d::text %s, created_at", len(args), len(args), dir)
	} else {
		sb.WriteString(" ORDER BY created_at")
	}

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	return sb.String(), args, nil
}

var sqlOps = map[docstore.Op]string{
	docstore.OpEq:  "=",
	docstore.OpGt:  ">",
	docstore.OpGte: ">=",
	docstore.OpLt:  "<",
	docstore.OpLte: "<=",
}

// encodeValue adapta los valores a su forma JSON comparable.
func encodeValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.UTC().Format(timeLayout)
	case *time.Time:
		if x == nil {
			return nil
		}
		return x.UTC().Format(timeLayout)
	case decimal.Decimal:
		return x.InexactFloat64()
	}
	return v
}

func encodeDocument(data map[string]any) ([]byte, error) {
	enc := make(map[string]any, len(data))
	for k, v := range data {
		enc[k] = encodeValue(v)
	}
	return json.Marshal(enc)
}
