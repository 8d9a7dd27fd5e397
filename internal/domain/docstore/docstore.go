// Package docstore define el puerto hacia el almacén de documentos (Firestore,
// PostgreSQL JSONB o memoria). Los repositorios solo conocen esta interfaz.
package docstore

import (
	"context"
	"errors"
)

// VersionField es el campo que cada adaptador incrementa en cada escritura.
const VersionField = "version"

var (
	// ErrNoDocument se devuelve al actualizar un documento que no existe.
	ErrNoDocument = errors.New("docstore: documento no existe")
	// ErrVersionMismatch se devuelve cuando UpdateIfVersion encuentra otra versión.
	ErrVersionMismatch = errors.New("docstore: versión del documento no coincide")
)

// Op operador de comparación soportado de forma nativa por todos los adaptadores.
type Op string

const (
	OpEq  Op = "=="
	OpGt  Op = ">"
	OpGte Op = ">="
	OpLt  Op = "<"
	OpLte Op = "<="
)

// Predicate condición campo-operador-valor.
type Predicate struct {
	Field string
	Op    Op
	Value any
}

// Where atajo para construir un Predicate.
func Where(field string, op Op, value any) Predicate {
	return Predicate{Field: field, Op: op, Value: value}
}

// Direction sentido de ordenamiento.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Order ordenamiento nativo por un único campo.
type Order struct {
	Field string
	Dir   Direction
}

// Query consulta compuesta: todos los predicados se combinan con AND.
// Limit <= 0 significa sin límite.
type Query struct {
	Collection string
	Predicates []Predicate
	OrderBy    *Order
	Limit      int
}

// Document registro crudo: ID asignado por el almacén y los campos.
type Document struct {
	ID   string
	Data map[string]any
}

// Gateway capacidad mínima que se exige al almacén. Sin transacciones; el único
// mecanismo de consistencia es la escritura condicional por versión.
type Gateway interface {
	Query(ctx context.Context, q Query) ([]Document, error)
	// Get devuelve (nil, nil) si el documento no existe.
	Get(ctx context.Context, collection, id string) (*Document, error)
	// Insert asigna ID y fija version=1.
	Insert(ctx context.Context, collection string, data map[string]any) (string, error)
	// Update mezcla fields en el documento e incrementa version.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	// UpdateIfVersion igual que Update, pero solo si version coincide con expected.
	UpdateIfVersion(ctx context.Context, collection, id string, expected int64, fields map[string]any) error
	// Delete elimina físicamente; borrar algo inexistente no es error.
	Delete(ctx context.Context, collection, id string) error
}
