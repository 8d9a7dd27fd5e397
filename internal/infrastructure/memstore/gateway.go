// Package memstore implementa docstore.Gateway en memoria sobre go-cache.
// Pensado para desarrollo local (STORE_DRIVER=memory) y pruebas.
package memstore

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/jhoicas/tienda-api/internal/domain/docstore"
)

var _ docstore.Gateway = (*Gateway)(nil)

type entry struct {
	seq  uint64
	data map[string]any
}

// Gateway almacén en memoria. Las claves son "<colección>/<id>" y nunca expiran.
type Gateway struct {
	mu    sync.Mutex
	c     *gocache.Cache
	seq   atomic.Uint64
	newID func() string
}

// New construye un almacén vacío.
func New() *Gateway {
	return &Gateway{
		c:     gocache.New(gocache.NoExpiration, 0),
		newID: uuid.NewString,
	}
}

func key(collection, id string) string { return collection + "/" + id }

// Query filtra por predicados, ordena y limita. Sin OrderBy devuelve el orden de inserción.
func (g *Gateway) Query(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prefix := q.Collection + "/"

	type hit struct {
		seq uint64
		doc docstore.Document
	}
	var hits []hit
	for k, it := range g.c.Items() {
		id, ok := strings.CutPrefix(k, prefix)
		if !ok {
			continue
		}
		e := it.Object.(*entry)
		if !matchesAll(e.data, q.Predicates) {
			continue
		}
		if q.OrderBy != nil {
			if _, has := e.data[q.OrderBy.Field]; !has {
				continue
			}
		}
		hits = append(hits, hit{seq: e.seq, doc: docstore.Document{ID: id, Data: maps.Clone(e.data)}})
	}

	slices.SortFunc(hits, func(a, b hit) int {
		if q.OrderBy != nil {
			c, _ := docstore.Compare(a.doc.Data[q.OrderBy.Field], b.doc.Data[q.OrderBy.Field])
			if q.OrderBy.Dir == docstore.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})

	if q.Limit > 0 && len(hits) > q.Limit {
		hits = hits[:q.Limit]
	}
	out := make([]docstore.Document, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.doc)
	}
	return out, nil
}

func matchesAll(data map[string]any, preds []docstore.Predicate) bool {
	for _, p := range preds {
		if !docstore.Matches(data, p) {
			return false
		}
	}
	return true
}

// Get devuelve una copia del documento o (nil, nil) si no existe.
func (g *Gateway) Get(ctx context.Context, collection, id string) (*docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, ok := g.c.Get(key(collection, id))
	if !ok {
		return nil, nil
	}
	return &docstore.Document{ID: id, Data: maps.Clone(v.(*entry).data)}, nil
}

// Insert guarda una copia de data con un UUID nuevo y version=1.
func (g *Gateway) Insert(ctx context.Context, collection string, data map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := g.newID()
	stored := maps.Clone(data)
	if stored == nil {
		stored = make(map[string]any)
	}
	stored[docstore.VersionField] = int64(1)
	g.c.Set(key(collection, id), &entry{seq: g.seq.Add(1), data: stored}, gocache.NoExpiration)
	return id, nil
}

// Update mezcla fields e incrementa version.
func (g *Gateway) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	return g.update(ctx, collection, id, nil, fields)
}

// UpdateIfVersion aplica la mezcla solo si la versión almacenada es expected.
func (g *Gateway) UpdateIfVersion(ctx context.Context, collection, id string, expected int64, fields map[string]any) error {
	return g.update(ctx, collection, id, &expected, fields)
}

func (g *Gateway) update(ctx context.Context, collection, id string, expected *int64, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	k := key(collection, id)
	v, ok := g.c.Get(k)
	if !ok {
		return docstore.ErrNoDocument
	}
	old := v.(*entry)
	current, _ := docstore.ToFloat(old.data[docstore.VersionField])
	if expected != nil && int64(current) != *expected {
		return docstore.ErrVersionMismatch
	}
	next := maps.Clone(old.data)
	maps.Copy(next, fields)
	next[docstore.VersionField] = int64(current) + 1
	// Se reemplaza la entrada completa: las copias entregadas por Get/Query no cambian.
	g.c.Set(k, &entry{seq: old.seq, data: next}, gocache.NoExpiration)
	return nil
}

// Delete elimina el documento si existe.
func (g *Gateway) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.c.Delete(key(collection, id))
	return nil
}
