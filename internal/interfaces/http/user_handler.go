package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP para usuarios (protegido).
type UserHandler struct {
	uc    *usecase.UserUseCase
	stats *usecase.StatsUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, stats *usecase.StatsUseCase) *UserHandler {
	return &UserHandler{uc: uc, stats: stats}
}

// List godoc
// @Summary      Listar usuarios activos
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.UserListResponse{Total: len(out), Usuarios: out})
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/usuarios [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UserMutationResponse{
		Mensaje: fmt.Sprintf("Usuario creado: %s", out.Nombre),
		Usuario: *out,
	})
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UserMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id := c.Params("id")
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.UserMutationResponse{Mensaje: fmt.Sprintf("Usuario %s actualizado", id), Usuario: *out})
}

// Delete godoc
// @Summary      Eliminar usuario (borrado lógico)
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserMutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.UserMutationResponse{Mensaje: "Usuario eliminado (soft delete)", Usuario: *out})
}

// DeletePermanent godoc
// @Summary      Eliminar usuario permanentemente
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/usuarios/{id}/permanente [delete]
func (h *UserHandler) DeletePermanent(c *fiber.Ctx) error {
	if err := h.uc.DeletePermanent(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Usuario eliminado permanentemente"})
}

// Filter godoc
// @Summary      Filtrar usuarios
// @Description  categoria, edad_min, edad_max, nombre; ordenar=edad_asc|edad_desc|nombre|fecha_desc|nombre_desc|fecha_asc; limite.
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/usuarios/filtrar [get]
func (h *UserHandler) Filter(c *fiber.Ctx) error {
	params := c.Queries()
	out, err := h.uc.Filter(c.UserContext(), params)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.UserListResponse{Total: len(out), FiltrosAplicados: params, Usuarios: out})
}

// Search godoc
// @Summary      Buscar usuarios por texto
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        texto  query  string  true  "Texto a buscar"
// @Success      200    {object}  dto.UserListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/usuarios/buscar [get]
func (h *UserHandler) Search(c *fiber.Ctx) error {
	texto := c.Query("texto")
	out, err := h.uc.Search(c.UserContext(), texto)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.UserListResponse{Total: len(out), TextoBuscado: texto, Usuarios: out})
}

// ByCategoria godoc
// @Summary      Usuarios por categoría
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        categoria  path  string  true  "Categoría"
// @Success      200        {object}  dto.UserListResponse
// @Router       /api/usuarios/categoria/{categoria} [get]
func (h *UserHandler) ByCategoria(c *fiber.Ctx) error {
	categoria := c.Params("categoria")
	out, err := h.uc.ByCategoria(c.UserContext(), categoria)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.UserListResponse{Total: len(out), Categoria: categoria, Usuarios: out})
}

// Categorias godoc
// @Summary      Categorías de usuarios
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoriasResponse
// @Router       /api/usuarios/categorias [get]
func (h *UserHandler) Categorias(c *fiber.Ctx) error {
	cats, err := h.uc.Categorias(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CategoriasResponse{Total: len(cats), Categorias: cats})
}

// Stats godoc
// @Summary      Estadísticas de usuarios
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserStatsResponse
// @Router       /api/usuarios/estadisticas [get]
func (h *UserHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stats.Users(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
