package docrepo

import (
	"context"
	"maps"
	"time"

	"github.com/pkg/errors"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/docstore"
	"github.com/jhoicas/tienda-api/internal/domain/filter"
	"github.com/jhoicas/tienda-api/pkg/textnorm"
)

// collection concentra la convención común a ambas entidades: lecturas con
// activo == true, borrado lógico y escrituras condicionales por versión.
type collection[T any] struct {
	gw     docstore.Gateway
	name   string
	decode func(docstore.Document) *T
	now    func() time.Time
}

func (c *collection[T]) query(ctx context.Context, q docstore.Query) ([]*T, error) {
	docs, err := c.gw.Query(ctx, q)
	if err != nil {
		return nil, errors.Wrapf(err, "query %s", c.name)
	}
	out := make([]*T, 0, len(docs))
	for _, d := range docs {
		out = append(out, c.decode(d))
	}
	return out, nil
}

// active lista los registros activos que cumplen además preds.
func (c *collection[T]) active(ctx context.Context, preds ...docstore.Predicate) ([]*T, error) {
	q := docstore.Query{
		Collection: c.name,
		Predicates: append([]docstore.Predicate{docstore.Where(filter.FieldActivo, docstore.OpEq, true)}, preds...),
	}
	return c.query(ctx, q)
}

// getActive devuelve el documento crudo solo si existe y está activo.
func (c *collection[T]) getActive(ctx context.Context, id string) (*docstore.Document, error) {
	if id == "" {
		return nil, nil
	}
	doc, err := c.gw.Get(ctx, c.name, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s/%s", c.name, id)
	}
	if doc == nil || !boolean(doc.Data, filter.FieldActivo) {
		return nil, nil
	}
	return doc, nil
}

func (c *collection[T]) get(ctx context.Context, id string) (*T, error) {
	doc, err := c.getActive(ctx, id)
	if err != nil || doc == nil {
		return nil, err
	}
	return c.decode(*doc), nil
}

func (c *collection[T]) insert(ctx context.Context, data map[string]any) (string, error) {
	id, err := c.gw.Insert(ctx, c.name, data)
	if err != nil {
		return "", errors.Wrapf(err, "insert %s", c.name)
	}
	return id, nil
}

// modify lee el registro activo, calcula los cambios con change y los escribe
// solo si la versión no cambió entretanto. (nil, nil) si no existe o está inactivo.
func (c *collection[T]) modify(ctx context.Context, id string, change func(data map[string]any) (map[string]any, error)) (*T, error) {
	doc, err := c.getActive(ctx, id)
	if err != nil || doc == nil {
		return nil, err
	}
	fields, err := change(doc.Data)
	if err != nil {
		return nil, err
	}
	version := int64(num(doc.Data, docstore.VersionField))
	err = c.gw.UpdateIfVersion(ctx, c.name, id, version, fields)
	switch {
	case errors.Is(err, docstore.ErrNoDocument):
		return nil, nil
	case errors.Is(err, docstore.ErrVersionMismatch):
		return nil, domain.ErrStaleWrite
	case err != nil:
		return nil, errors.Wrapf(err, "update %s/%s", c.name, id)
	}

	merged := maps.Clone(doc.Data)
	maps.Copy(merged, fields)
	merged[docstore.VersionField] = version + 1
	return c.decode(docstore.Document{ID: id, Data: merged}), nil
}

func (c *collection[T]) softDelete(ctx context.Context, id string) (*T, error) {
	return c.modify(ctx, id, func(map[string]any) (map[string]any, error) {
		return map[string]any{
			filter.FieldActivo:           false,
			filter.FieldFechaEliminacion: c.now().UTC(),
		}, nil
	})
}

func (c *collection[T]) hardDelete(ctx context.Context, id string) error {
	if err := c.gw.Delete(ctx, c.name, id); err != nil {
		return errors.Wrapf(err, "delete %s/%s", c.name, id)
	}
	return nil
}

// search recorre todos los activos y conserva los que contienen text
// (normalizado) en alguno de los campos dados.
func (c *collection[T]) search(ctx context.Context, text string, value func(*T, string) any, fields ...string) ([]*T, error) {
	all, err := c.active(ctx)
	if err != nil {
		return nil, err
	}
	needle := textnorm.Normalize(text)
	out := make([]*T, 0, len(all))
	for _, it := range all {
		for _, f := range fields {
			s, _ := value(it, f).(string)
			if textnorm.Contains(s, needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out, nil
}

// categorias categorías distintas y no vacías, en orden de aparición.
func (c *collection[T]) categorias(ctx context.Context, value func(*T, string) any) ([]string, error) {
	all, err := c.active(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, it := range all {
		cat, _ := value(it, filter.FieldCategoria).(string)
		if cat == "" {
			continue
		}
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out, nil
}

func (c *collection[T]) filter(ctx context.Context, plan filter.Plan, value func(*T, string) any) ([]*T, error) {
	if plan.Query.Collection != c.name {
		return nil, errors.Errorf("plan para %q aplicado sobre %q", plan.Query.Collection, c.name)
	}
	items, err := c.query(ctx, plan.Query)
	if err != nil {
		return nil, err
	}
	return filter.Apply(items, plan, value), nil
}
