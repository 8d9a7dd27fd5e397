package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
)

func validUser(email string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Nombre:    "  Ana  ",
		Email:     email,
		Password:  "clave123",
		Edad:      intPtr(30),
		Categoria: "cliente",
	}
}

func TestUserCreate_NormalizaYActiva(t *testing.T) {
	f := newFixture()
	u, err := f.users.Create(context.Background(), validUser("ana@x.com"))
	require.NoError(t, err)

	assert.Equal(t, "Ana", u.Nombre)
	assert.True(t, u.Activo)
	assert.False(t, u.FechaCreacion.IsZero())
	assert.False(t, u.FechaActualizacion.IsZero())
}

func TestUserCreate_Validaciones(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	in := validUser("ana@x.com")
	in.Nombre = "   "
	_, err := f.users.Create(ctx, in)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	in = validUser("ana@x.com")
	in.Password = "  "
	_, err = f.users.Create(ctx, in)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	in = validUser("ana@x.com")
	in.Edad = intPtr(-1)
	_, err = f.users.Create(ctx, in)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	first, err := f.users.Create(ctx, validUser("ana@x.com"))
	require.NoError(t, err)

	_, err = f.users.Create(ctx, validUser("ana@x.com"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	// Tras el borrado lógico el email queda libre.
	_, err = f.users.Delete(ctx, first.ID)
	require.NoError(t, err)
	_, err = f.users.Create(ctx, validUser("ana@x.com"))
	assert.NoError(t, err)
}

func TestUserUpdate_ParcialYFechaCreacionIntacta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	u, err := f.users.Create(ctx, validUser("ana@x.com"))
	require.NoError(t, err)

	got, err := f.users.Update(ctx, u.ID, dto.UpdateUserRequest{Edad: intPtr(31)})
	require.NoError(t, err)
	assert.Equal(t, 31, got.Edad)
	assert.Equal(t, "Ana", got.Nombre)
	assert.Equal(t, u.FechaCreacion, got.FechaCreacion)

	_, err = f.users.Update(ctx, u.ID, dto.UpdateUserRequest{})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = f.users.Update(ctx, u.ID, dto.UpdateUserRequest{Nombre: strPtr(" ")})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = f.users.Update(ctx, "no-existe", dto.UpdateUserRequest{Edad: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserDelete_SoftYHard(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	u, err := f.users.Create(ctx, validUser("ana@x.com"))
	require.NoError(t, err)

	deleted, err := f.users.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, deleted.Activo)

	_, err = f.users.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.users.Delete(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, f.users.DeletePermanent(ctx, u.ID))
	list, err := f.users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUserFilter_ValidaRangoDeEdad(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.users.Filter(ctx, map[string]string{"edad_min": "-1"})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = f.users.Filter(ctx, map[string]string{"edad_min": "40", "edad_max": "20"})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	// Valores no numéricos se ignoran.
	_, err = f.users.Create(ctx, validUser("ana@x.com"))
	require.NoError(t, err)
	got, err := f.users.Filter(ctx, map[string]string{"edad_min": "abc"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUserSearchYCategorias(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	in := validUser("jose@x.com")
	in.Nombre = "José Pérez"
	_, err := f.users.Create(ctx, in)
	require.NoError(t, err)

	got, err := f.users.Search(ctx, "PEREZ")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = f.users.Search(ctx, "  ")
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	byCat, err := f.users.ByCategoria(ctx, "cliente")
	require.NoError(t, err)
	assert.Len(t, byCat, 1)

	cats, err := f.users.Categorias(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"cliente"}, cats)
}
