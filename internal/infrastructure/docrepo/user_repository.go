package docrepo

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/docstore"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/filter"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el almacén de documentos.
type UserRepo struct {
	c collection[entity.User]
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(gw docstore.Gateway) *UserRepo {
	return &UserRepo{c: collection[entity.User]{
		gw:     gw,
		name:   filter.CollectionUsers,
		decode: userFromDoc,
		now:    time.Now,
	}}
}

// Create persiste un usuario nuevo: activo y con ambas fechas.
// No verifica unicidad del email; eso lo hace el caso de uso.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	now := r.c.now().UTC()
	user.Activo = true
	user.FechaCreacion = now
	user.FechaActualizacion = now
	user.FechaEliminacion = nil

	id, err := r.c.insert(ctx, userToDoc(user))
	if err != nil {
		return err
	}
	user.ID = id
	user.Version = 1
	return nil
}

// GetByID obtiene un usuario activo por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.c.get(ctx, id)
}

// GetByEmail obtiene el usuario con ese email. Si hay varios prefiere el activo
// y, entre inactivos, el creado más recientemente.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	users, err := r.c.query(ctx, docstore.Query{
		Collection: filter.CollectionUsers,
		Predicates: []docstore.Predicate{docstore.Where(filter.FieldEmail, docstore.OpEq, email)},
	})
	if err != nil || len(users) == 0 {
		return nil, err
	}
	latest := users[0]
	for _, u := range users {
		if u.Activo {
			return u, nil
		}
		if u.FechaCreacion.After(latest.FechaCreacion) {
			latest = u
		}
	}
	return latest, nil
}

// List devuelve todos los usuarios activos.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return r.c.active(ctx)
}

// ListByCategoria usuarios activos de una categoría exacta.
func (r *UserRepo) ListByCategoria(ctx context.Context, categoria string) ([]*entity.User, error) {
	return r.c.active(ctx, docstore.Where(filter.FieldCategoria, docstore.OpEq, categoria))
}

// Filter ejecuta un plan compilado con filter.Users.
func (r *UserRepo) Filter(ctx context.Context, plan filter.Plan) ([]*entity.User, error) {
	return r.c.filter(ctx, plan, userField)
}

// Search busca text en nombre, descripción y categoría.
func (r *UserRepo) Search(ctx context.Context, text string) ([]*entity.User, error) {
	return r.c.search(ctx, text, userField, filter.FieldNombre, filter.FieldDescripcion, filter.FieldCategoria)
}

// Categorias categorías distintas de usuarios activos.
func (r *UserRepo) Categorias(ctx context.Context) ([]string, error) {
	return r.c.categorias(ctx, userField)
}

// Update aplica el parche y refresca fechaActualizacion; fechaCreacion no se toca.
func (r *UserRepo) Update(ctx context.Context, id string, patch repository.UserPatch) (*entity.User, error) {
	return r.c.modify(ctx, id, func(map[string]any) (map[string]any, error) {
		fields := map[string]any{filter.FieldFechaActualizacion: r.c.now().UTC()}
		if patch.Nombre != nil {
			fields[filter.FieldNombre] = *patch.Nombre
		}
		if patch.Edad != nil {
			fields[filter.FieldEdad] = int64(*patch.Edad)
		}
		if patch.Categoria != nil {
			fields[filter.FieldCategoria] = *patch.Categoria
		}
		if patch.Descripcion != nil {
			fields[filter.FieldDescripcion] = *patch.Descripcion
		}
		if patch.PasswordHash != nil {
			fields[filter.FieldPassword] = *patch.PasswordHash
		}
		return fields, nil
	})
}

// SoftDelete marca el usuario como inactivo.
func (r *UserRepo) SoftDelete(ctx context.Context, id string) (*entity.User, error) {
	return r.c.softDelete(ctx, id)
}

// HardDelete elimina físicamente el documento.
func (r *UserRepo) HardDelete(ctx context.Context, id string) error {
	return r.c.hardDelete(ctx, id)
}
