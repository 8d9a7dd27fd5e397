// Package firestoredb implementa docstore.Gateway sobre Cloud Firestore usando el
// SDK de Firebase Admin.
package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jhoicas/tienda-api/internal/domain/docstore"
	"github.com/jhoicas/tienda-api/pkg/config"
)

var _ docstore.Gateway = (*Gateway)(nil)

// Gateway adaptador Firestore. El cliente es de larga vida y seguro para uso concurrente.
type Gateway struct {
	client *firestore.Client
}

// NewGateway inicializa la app de Firebase y obtiene el cliente de Firestore.
// Sin CredentialsPath se usan las credenciales por defecto del entorno (ADC).
func NewGateway(ctx context.Context, cfg config.FirebaseConfig) (*Gateway, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}
	var fbCfg *firebase.Config
	if cfg.ProjectID != "" {
		fbCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}
	app, err := firebase.NewApp(ctx, fbCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}
	return &Gateway{client: client}, nil
}

// Close libera las conexiones gRPC del cliente.
func (g *Gateway) Close() error {
	return g.client.Close()
}

// Query traduce la consulta a Where/OrderBy/Limit de Firestore.
func (g *Gateway) Query(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	fq := g.client.Collection(q.Collection).Query
	for _, p := range q.Predicates {
		fq = fq.Where(p.Field, string(p.Op), p.Value)
	}
	if q.OrderBy != nil {
		dir := firestore.Asc
		if q.OrderBy.Dir == docstore.Desc {
			dir = firestore.Desc
		}
		fq = fq.OrderBy(q.OrderBy.Field, dir)
	}
	if q.Limit > 0 {
		fq = fq.Limit(q.Limit)
	}
	snaps, err := fq.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrapf(err, "firestore: query %s", q.Collection)
	}
	out := make([]docstore.Document, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, docstore.Document{ID: s.Ref.ID, Data: s.Data()})
	}
	return out, nil
}

// Get devuelve (nil, nil) si el documento no existe.
func (g *Gateway) Get(ctx context.Context, collection, id string) (*docstore.Document, error) {
	snap, err := g.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "firestore: get %s/%s", collection, id)
	}
	return &docstore.Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

// Insert agrega el documento con ID autogenerado.
func (g *Gateway) Insert(ctx context.Context, collection string, data map[string]any) (string, error) {
	doc := make(map[string]any, len(data)+1)
	for k, v := range data {
		doc[k] = v
	}
	doc[docstore.VersionField] = int64(1)
	ref, _, err := g.client.Collection(collection).Add(ctx, doc)
	if err != nil {
		return "", errors.Wrapf(err, "firestore: add %s", collection)
	}
	return ref.ID, nil
}

// Update falla con ErrNoDocument si el documento no existe (semántica de DocumentRef.Update).
func (g *Gateway) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	_, err := g.client.Collection(collection).Doc(id).Update(ctx, toUpdates(fields))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return docstore.ErrNoDocument
		}
		return errors.Wrapf(err, "firestore: update %s/%s", collection, id)
	}
	return nil
}

// UpdateIfVersion lee y escribe dentro de una transacción de Firestore: la
// escritura solo se aplica si nadie cambió la versión entre medio.
func (g *Gateway) UpdateIfVersion(ctx context.Context, collection, id string, expected int64, fields map[string]any) error {
	ref := g.client.Collection(collection).Doc(id)
	err := g.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return docstore.ErrNoDocument
			}
			return err
		}
		current, _ := docstore.ToFloat(snap.Data()[docstore.VersionField])
		if int64(current) != expected {
			return docstore.ErrVersionMismatch
		}
		return tx.Update(ref, toUpdates(fields))
	})
	if err != nil {
		if errors.Is(err, docstore.ErrNoDocument) || errors.Is(err, docstore.ErrVersionMismatch) {
			return err
		}
		return errors.Wrapf(err, "firestore: conditional update %s/%s", collection, id)
	}
	return nil
}

// Delete elimina el documento; Firestore no falla si no existe.
func (g *Gateway) Delete(ctx context.Context, collection, id string) error {
	if _, err := g.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "firestore: delete %s/%s", collection, id)
	}
	return nil
}

func toUpdates(fields map[string]any) []firestore.Update {
	ups := make([]firestore.Update, 0, len(fields)+1)
	for k, v := range fields {
		if k == docstore.VersionField {
			continue
		}
		ups = append(ups, firestore.Update{Path: k, Value: v})
	}
	return append(ups, firestore.Update{Path: docstore.VersionField, Value: firestore.Increment(1)})
}
