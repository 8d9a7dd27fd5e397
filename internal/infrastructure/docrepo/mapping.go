package docrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/docstore"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/filter"
)

// Los adaptadores no devuelven los mismos tipos: Firestore entrega int64 y
// time.Time, PostgreSQL (JSONB) float64 y texto. Los lectores aceptan ambos.

func str(d map[string]any, k string) string {
	s, _ := d[k].(string)
	return s
}

func num(d map[string]any, k string) float64 {
	f, _ := docstore.ToFloat(d[k])
	return f
}

// money acepta el decimal exacto que entrega PostgreSQL para columnas NUMERIC.
func money(d map[string]any, k string) decimal.Decimal {
	if v, ok := d[k].(decimal.Decimal); ok {
		return v
	}
	return decimal.NewFromFloat(num(d, k))
}

func boolean(d map[string]any, k string) bool {
	b, _ := d[k].(bool)
	return b
}

func timestamp(d map[string]any, k string) time.Time {
	switch v := d[k].(type) {
	case time.Time:
		return v.UTC()
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func optTimestamp(d map[string]any, k string) *time.Time {
	t := timestamp(d, k)
	if t.IsZero() {
		return nil
	}
	return &t
}

func userFromDoc(doc docstore.Document) *entity.User {
	d := doc.Data
	return &entity.User{
		ID:                 doc.ID,
		Email:              str(d, filter.FieldEmail),
		PasswordHash:       str(d, filter.FieldPassword),
		Nombre:             str(d, filter.FieldNombre),
		Edad:               int(num(d, filter.FieldEdad)),
		Categoria:          str(d, filter.FieldCategoria),
		Descripcion:        str(d, filter.FieldDescripcion),
		Activo:             boolean(d, filter.FieldActivo),
		Version:            int64(num(d, docstore.VersionField)),
		FechaCreacion:      timestamp(d, filter.FieldFechaCreacion),
		FechaActualizacion: timestamp(d, filter.FieldFechaActualizacion),
		FechaEliminacion:   optTimestamp(d, filter.FieldFechaEliminacion),
	}
}

func userToDoc(u *entity.User) map[string]any {
	return map[string]any{
		filter.FieldEmail:              u.Email,
		filter.FieldPassword:           u.PasswordHash,
		filter.FieldNombre:             u.Nombre,
		filter.FieldEdad:               int64(u.Edad),
		filter.FieldCategoria:          u.Categoria,
		filter.FieldDescripcion:        u.Descripcion,
		filter.FieldActivo:             u.Activo,
		filter.FieldFechaCreacion:      u.FechaCreacion,
		filter.FieldFechaActualizacion: u.FechaActualizacion,
	}
}

// userField expone los campos sobre los que filtra y ordena el compilador.
func userField(u *entity.User, field string) any {
	switch field {
	case filter.FieldNombre:
		return u.Nombre
	case filter.FieldCategoria:
		return u.Categoria
	case filter.FieldDescripcion:
		return u.Descripcion
	case filter.FieldEdad:
		return u.Edad
	case filter.FieldFechaCreacion:
		return u.FechaCreacion
	}
	return nil
}

func productFromDoc(doc docstore.Document) *entity.Product {
	d := doc.Data
	return &entity.Product{
		ID:                 doc.ID,
		Nombre:             str(d, filter.FieldNombre),
		Precio:             money(d, filter.FieldPrecio),
		Categoria:          str(d, filter.FieldCategoria),
		Stock:              int(num(d, filter.FieldStock)),
		Descripcion:        str(d, filter.FieldDescripcion),
		Activo:             boolean(d, filter.FieldActivo),
		Version:            int64(num(d, docstore.VersionField)),
		FechaCreacion:      timestamp(d, filter.FieldFechaCreacion),
		FechaActualizacion: timestamp(d, filter.FieldFechaActualizacion),
		FechaEliminacion:   optTimestamp(d, filter.FieldFechaEliminacion),
	}
}

func productToDoc(p *entity.Product) map[string]any {
	return map[string]any{
		filter.FieldNombre:             p.Nombre,
		filter.FieldPrecio:             p.Precio.InexactFloat64(),
		filter.FieldCategoria:          p.Categoria,
		filter.FieldStock:              int64(p.Stock),
		filter.FieldDescripcion:        p.Descripcion,
		filter.FieldActivo:             p.Activo,
		filter.FieldFechaCreacion:      p.FechaCreacion,
		filter.FieldFechaActualizacion: p.FechaActualizacion,
	}
}

func productField(p *entity.Product, field string) any {
	switch field {
	case filter.FieldNombre:
		return p.Nombre
	case filter.FieldCategoria:
		return p.Categoria
	case filter.FieldDescripcion:
		return p.Descripcion
	case filter.FieldPrecio:
		return p.Precio.InexactFloat64()
	case filter.FieldStock:
		return p.Stock
	case filter.FieldFechaCreacion:
		return p.FechaCreacion
	}
	return nil
}
