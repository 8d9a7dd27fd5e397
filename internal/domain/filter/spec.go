// Package filter compone los parámetros de consulta del cliente en una consulta
// nativa del almacén más un post-filtro/orden en memoria para lo que el almacén
// no sabe expresar (búsqueda por subcadena sin tildes, ciertos órdenes).
package filter

import (
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain/docstore"
)

// Parámetros de control comunes a todas las entidades.
const (
	ParamOrdenar = "ordenar"
	ParamLimite  = "limite"
)

// Campos de documento compartidos por usuarios y productos.
const (
	FieldActivo             = "activo"
	FieldNombre             = "nombre"
	FieldCategoria          = "categoria"
	FieldDescripcion        = "descripcion"
	FieldFechaCreacion      = "fechaCreacion"
	FieldFechaActualizacion = "fechaActualizacion"
	FieldFechaEliminacion   = "fechaEliminacion"
)

// Kind tipo de filtro.
type Kind int

const (
	Equality Kind = iota
	Range
	Text
)

// Number cómo se interpreta el valor de un filtro de rango.
type Number int

const (
	Int Number = iota
	Float
)

// Field describe un parámetro de filtro reconocido.
type Field struct {
	Param  string // nombre del query param, p. ej. "precio_min"
	Target string // campo del documento, p. ej. "precio"
	Kind   Kind
	Op     docstore.Op // solo Range
	Number Number      // solo Range
	Native bool        // false: se aplica en memoria después de consultar
}

// SortKey valor aceptado en ?ordenar=.
type SortKey struct {
	Key    string
	Field  string
	Dir    docstore.Direction
	Native bool
}

// Spec configuración enumerada de filtros de una colección.
type Spec struct {
	collection string
	fields     []Field
	sorts      map[string]SortKey
}

// NewSpec valida y construye la configuración. Se llama una vez al iniciar el paquete.
func NewSpec(collection string, fields []Field, sorts []SortKey) (*Spec, error) {
	if collection == "" {
		return nil, fmt.Errorf("filter: colección vacía")
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Param == "" || f.Target == "" {
			return nil, fmt.Errorf("filter: campo incompleto %+v", f)
		}
		if f.Param == ParamOrdenar || f.Param == ParamLimite || seen[f.Param] {
			return nil, fmt.Errorf("filter: parámetro duplicado o reservado %q", f.Param)
		}
		if f.Kind == Text && f.Native {
			return nil, fmt.Errorf("filter: %q de texto no puede ser nativo", f.Param)
		}
		if f.Kind != Text && !f.Native {
			return nil, fmt.Errorf("filter: %q de igualdad/rango debe ser nativo", f.Param)
		}
		if f.Kind == Range && f.Op == docstore.OpEq {
			return nil, fmt.Errorf("filter: %q de rango requiere operador de rango", f.Param)
		}
		seen[f.Param] = true
	}
	byKey := make(map[string]SortKey, len(sorts))
	for _, s := range sorts {
		if _, dup := byKey[s.Key]; dup {
			return nil, fmt.Errorf("filter: orden duplicado %q", s.Key)
		}
		byKey[s.Key] = s
	}
	return &Spec{collection: collection, fields: fields, sorts: byKey}, nil
}

// MustSpec como NewSpec pero entra en pánico ante una configuración inválida.
func MustSpec(collection string, fields []Field, sorts []SortKey) *Spec {
	s, err := NewSpec(collection, fields, sorts)
	if err != nil {
		panic(err)
	}
	return s
}

// Collection nombre de la colección consultada.
func (s *Spec) Collection() string { return s.collection }

// NativeSortKeys claves de ?ordenar= resueltas por el almacén.
func (s *Spec) NativeSortKeys() []string {
	var keys []string
	for k, v := range s.sorts {
		if v.Native {
			keys = append(keys, k)
		}
	}
	return keys
}
