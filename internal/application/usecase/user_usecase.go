package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/validation"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/filter"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo       repository.UserRepository
	bcryptCost int
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, bcryptCost int) *UserUseCase {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserUseCase{repo: repo, bcryptCost: bcryptCost}
}

// List devuelve los usuarios activos.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, wrap("Error al obtener usuarios", err)
	}
	return toUserResponses(users), nil
}

// GetByID obtiene un usuario activo; ErrUserNotFound si no existe o está inactivo.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, wrap("Error al obtener usuario", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Create valida, verifica que el email no esté en uso por un usuario activo,
// hashea la contraseña y persiste.
// La verificación del email y la inserción no son atómicas.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Email = strings.TrimSpace(in.Email)
	in.Categoria = strings.TrimSpace(in.Categoria)
	in.Descripcion = strings.TrimSpace(in.Descripcion)
	if strings.TrimSpace(in.Password) == "" {
		in.Password = ""
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, wrap("Error al crear usuario", err)
	}
	if existing != nil && existing.Activo {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, wrap("Error al crear usuario", err)
	}
	user := &entity.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Nombre:       in.Nombre,
		Categoria:    in.Categoria,
		Descripcion:  in.Descripcion,
	}
	if in.Edad != nil {
		user.Edad = *in.Edad
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, wrap("Error al crear usuario", err)
	}
	return toUserResponse(user), nil
}

// Update aplica una actualización parcial. El email no es modificable; una
// contraseña vacía se ignora.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var patch repository.UserPatch
	if in.Nombre != nil {
		v := strings.TrimSpace(*in.Nombre)
		if v == "" {
			return nil, domain.Validation("El nombre no puede estar vacío")
		}
		patch.Nombre = &v
	}
	if in.Categoria != nil {
		v := strings.TrimSpace(*in.Categoria)
		if v == "" {
			return nil, domain.Validation("La categoría no puede estar vacía")
		}
		patch.Categoria = &v
	}
	if in.Descripcion != nil {
		v := strings.TrimSpace(*in.Descripcion)
		patch.Descripcion = &v
	}
	patch.Edad = in.Edad
	if in.Password != nil && strings.TrimSpace(*in.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), uc.bcryptCost)
		if err != nil {
			return nil, wrap("Error al actualizar usuario", err)
		}
		h := string(hash)
		patch.PasswordHash = &h
	}
	if patch.Empty() {
		return nil, domain.Validation("No se proporcionaron campos válidos para actualizar.")
	}

	user, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, wrap("Error al actualizar usuario", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Delete borrado lógico.
func (uc *UserUseCase) Delete(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, wrap("Error al eliminar usuario", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// DeletePermanent borrado físico; no falla si el usuario no existe.
func (uc *UserUseCase) DeletePermanent(ctx context.Context, id string) error {
	return wrap("Error al eliminar usuario permanentemente", uc.repo.HardDelete(ctx, id))
}

// Filter compila los parámetros con filter.Users. Rechaza edades negativas y
// un rango invertido; los valores no numéricos se ignoran.
func (uc *UserUseCase) Filter(ctx context.Context, params map[string]string) ([]dto.UserResponse, error) {
	plan := filter.Users.Compile(params)
	lo, hasMin := plan.Numbers["edad_min"]
	hi, hasMax := plan.Numbers["edad_max"]
	if hasMin && lo < 0 {
		return nil, domain.Validation("La edad mínima no puede ser negativa")
	}
	if hasMax && hi < 0 {
		return nil, domain.Validation("La edad máxima no puede ser negativa")
	}
	if hasMin && hasMax && lo > hi {
		return nil, domain.Validation("La edad mínima no puede ser mayor que la máxima")
	}

	users, err := uc.repo.Filter(ctx, plan)
	if err != nil {
		return nil, wrap("Error al filtrar usuarios", err)
	}
	return toUserResponses(users), nil
}

// Search busca texto en nombre, descripción y categoría.
func (uc *UserUseCase) Search(ctx context.Context, texto string) ([]dto.UserResponse, error) {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return nil, domain.Validation("Texto de búsqueda es requerido")
	}
	users, err := uc.repo.Search(ctx, texto)
	if err != nil {
		return nil, wrap("Error al buscar usuarios", err)
	}
	return toUserResponses(users), nil
}

// ByCategoria usuarios activos de una categoría.
func (uc *UserUseCase) ByCategoria(ctx context.Context, categoria string) ([]dto.UserResponse, error) {
	categoria = strings.TrimSpace(categoria)
	if categoria == "" {
		return nil, domain.Validation("Categoría es requerida")
	}
	users, err := uc.repo.ListByCategoria(ctx, categoria)
	if err != nil {
		return nil, wrap("Error al obtener usuarios por categoría", err)
	}
	return toUserResponses(users), nil
}

// Categorias categorías distintas de usuarios activos.
func (uc *UserUseCase) Categorias(ctx context.Context) ([]string, error) {
	cats, err := uc.repo.Categorias(ctx)
	if err != nil {
		return nil, wrap("Error al obtener categorías", err)
	}
	return cats, nil
}

func toUserResponses(users []*entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Nombre:             u.Nombre,
		Edad:               u.Edad,
		Categoria:          u.Categoria,
		Descripcion:        u.Descripcion,
		Activo:             u.Activo,
		FechaCreacion:      u.FechaCreacion,
		FechaActualizacion: u.FechaActualizacion,
		FechaEliminacion:   u.FechaEliminacion,
	}
}
