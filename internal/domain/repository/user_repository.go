package repository

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/filter"
)

// UserPatch campos modificables de un usuario; nil = no se toca.
type UserPatch struct {
	Nombre       *string
	Edad         *int
	Categoria    *string
	Descripcion  *string
	PasswordHash *string
}

// Empty indica si el parche no modifica ningún campo.
func (p UserPatch) Empty() bool {
	return p.Nombre == nil && p.Edad == nil && p.Categoria == nil && p.Descripcion == nil && p.PasswordHash == nil
}

// UserRepository define el puerto de persistencia para User (DIP).
// Las lecturas devuelven solo usuarios activos; (nil, nil) si no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail busca por email exacto sin filtrar por activo: el login
	// necesita distinguir la cuenta deshabilitada.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	ListByCategoria(ctx context.Context, categoria string) ([]*entity.User, error)
	Filter(ctx context.Context, plan filter.Plan) ([]*entity.User, error)
	Search(ctx context.Context, text string) ([]*entity.User, error)
	Categorias(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, patch UserPatch) (*entity.User, error)
	SoftDelete(ctx context.Context, id string) (*entity.User, error)
	HardDelete(ctx context.Context, id string) error
}
