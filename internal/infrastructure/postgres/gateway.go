package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/docstore"
)

var _ docstore.Gateway = (*DocumentGateway)(nil)

// DocumentGateway implementación de docstore.Gateway sobre una tabla JSONB
// (usable con pool o tx). Alternativa a Firestore para despliegues on-premise.
type DocumentGateway struct {
	q       Querier
	numeric map[string][]string
}

// Option configura el DocumentGateway.
type Option func(*DocumentGateway)

// WithNumericFields lee esos campos de la colección como NUMERIC y los entrega
// como decimal.Decimal exacto en lugar del float64 de JSON.
func WithNumericFields(collection string, fields ...string) Option {
	return func(g *DocumentGateway) {
		g.numeric[collection] = append(g.numeric[collection], fields...)
	}
}

// NewDocumentGateway construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentGateway(q Querier, opts ...Option) *DocumentGateway {
	g := &DocumentGateway{q: q, numeric: make(map[string][]string)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Query ejecuta la consulta compuesta.
func (g *DocumentGateway) Query(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	numeric := g.numeric[q.Collection]
	sql, args, err := buildSelect(q, numeric)
	if err != nil {
		return nil, fmt.Errorf("build query %s: %w", q.Collection, err)
	}
	rows, err := g.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", q.Collection, err)
	}
	defer rows.Close()
	var list []docstore.Document
	for rows.Next() {
		d, err := scanDocument(rows, numeric)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Get obtiene un documento por ID.
func (g *DocumentGateway) Get(ctx context.Context, collection, id string) (*docstore.Document, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil // un id que no es UUID no puede existir
	}
	numeric := g.numeric[collection]
	args := []any{collection, id}
	sql := "SELECT " + selectColumns(numeric, &args) + " FROM documents WHERE collection = $1 AND id = $2"
	d, err := scanDocument(g.q.QueryRow(ctx, sql, args...), numeric)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return &d, nil
}

// Insert persiste un nuevo documento con version=1.
func (g *DocumentGateway) Insert(ctx context.Context, collection string, data map[string]any) (string, error) {
	doc := make(map[string]any, len(data)+1)
	for k, v := range data {
		doc[k] = v
	}
	doc[docstore.VersionField] = int64(1)
	raw, err := encodeDocument(doc)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", collection, err)
	}
	id := uuid.New().String()
	_, err = g.q.Exec(ctx,
		`INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3::jsonb)`,
		collection, id, string(raw),
	)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	return id, nil
}

const updateSQL = `
	UPDATE documents
	SET data = data || $3::jsonb || jsonb_build_object('version', COALESCE((data->>'version')::bigint, 0) + 1)
	WHERE collection = $1 AND id = $2`

// Update mezcla los campos (operador ||) e incrementa version.
func (g *DocumentGateway) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if _, err := uuid.Parse(id); err != nil {
		return docstore.ErrNoDocument
	}
	raw, err := encodeDocument(withoutVersion(fields))
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	cmd, err := g.q.Exec(ctx, updateSQL, collection, id, string(raw))
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if cmd.RowsAffected() == 0 {
		return docstore.ErrNoDocument
	}
	return nil
}

// UpdateIfVersion la condición sobre version va en el mismo UPDATE: es atómica.
func (g *DocumentGateway) UpdateIfVersion(ctx context.Context, collection, id string, expected int64, fields map[string]any) error {
	if _, err := uuid.Parse(id); err != nil {
		return docstore.ErrNoDocument
	}
	raw, err := encodeDocument(withoutVersion(fields))
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	cmd, err := g.q.Exec(ctx, updateSQL+` AND (data->>'version')::bigint = $4`, collection, id, string(raw), expected)
	if err != nil {
		return fmt.Errorf("conditional update %s/%s: %w", collection, id, err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}
	existing, err := g.Get(ctx, collection, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return docstore.ErrNoDocument
	}
	return docstore.ErrVersionMismatch
}

// Delete elimina un documento por ID.
func (g *DocumentGateway) Delete(ctx context.Context, collection, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	_, err := g.q.Exec(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// scanDocument lee id, data y las columnas NUMERIC en el orden de selectColumns.
// Un campo NUMERIC nulo o ausente conserva el valor de data.
func scanDocument(row pgx.Row, numeric []string) (docstore.Document, error) {
	var d docstore.Document
	decs := make([]decimal.NullDecimal, len(numeric))
	dest := make([]any, 0, 2+len(numeric))
	dest = append(dest, &d.ID, &d.Data)
	for i := range decs {
		dest = append(dest, &decs[i])
	}
	if err := row.Scan(dest...); err != nil {
		return d, err
	}
	for i, field := range numeric {
		if decs[i].Valid {
			d.Data[field] = decs[i].Decimal
		}
	}
	return d, nil
}

func withoutVersion(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if k != docstore.VersionField {
			out[k] = v
		}
	}
	return out
}
