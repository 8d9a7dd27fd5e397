package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para productos (protegido).
type ProductHandler struct {
	uc    *usecase.ProductUseCase
	stats *usecase.StatsUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, stats *usecase.StatsUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, stats: stats}
}

func productList(out []dto.ProductResponse) dto.ProductListResponse {
	return dto.ProductListResponse{Total: len(out), Productos: out}
}

// List godoc
// @Summary      Listar productos activos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(productList(out))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductMutationResponse{
		Mensaje:  fmt.Sprintf("Producto creado: %s ($%v)", out.Nombre, out.Precio),
		Producto: *out,
	})
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id := c.Params("id")
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ProductMutationResponse{Mensaje: fmt.Sprintf("Producto %s actualizado", id), Producto: *out})
}

// Delete godoc
// @Summary      Eliminar producto (borrado lógico)
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductMutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ProductMutationResponse{Mensaje: "Producto eliminado (soft delete)", Producto: *out})
}

// DeletePermanent godoc
// @Summary      Eliminar producto permanentemente
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/productos/{id}/permanente [delete]
func (h *ProductHandler) DeletePermanent(c *fiber.Ctx) error {
	if err := h.uc.DeletePermanent(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Producto eliminado permanentemente"})
}

// Filter godoc
// @Summary      Filtrar productos
// @Description  categoria, stock_min, stock_max, precio_min, precio_max, nombre; ordenar=precio_asc|precio_desc|nombre|fecha_desc|nombre_desc|fecha_asc; limite.
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos/filtrar [get]
func (h *ProductHandler) Filter(c *fiber.Ctx) error {
	params := c.Queries()
	out, err := h.uc.Filter(c.UserContext(), params)
	if err != nil {
		return writeError(c, err)
	}
	res := productList(out)
	res.FiltrosAplicados = params
	return c.JSON(res)
}

// Search godoc
// @Summary      Buscar productos por texto
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        texto  query  string  true  "Texto a buscar"
// @Success      200    {object}  dto.ProductListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/productos/buscar [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	texto := c.Query("texto")
	out, err := h.uc.Search(c.UserContext(), texto)
	if err != nil {
		return writeError(c, err)
	}
	res := productList(out)
	res.TextoBuscado = texto
	return c.JSON(res)
}

// ByCategoria godoc
// @Summary      Productos por categoría
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        categoria  path  string  true  "Categoría"
// @Success      200        {object}  dto.ProductListResponse
// @Router       /api/productos/categoria/{categoria} [get]
func (h *ProductHandler) ByCategoria(c *fiber.Ctx) error {
	categoria := c.Params("categoria")
	out, err := h.uc.ByCategoria(c.UserContext(), categoria)
	if err != nil {
		return writeError(c, err)
	}
	res := productList(out)
	res.Categoria = categoria
	return c.JSON(res)
}

// Categorias godoc
// @Summary      Categorías de productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoriasResponse
// @Router       /api/productos/categorias [get]
func (h *ProductHandler) Categorias(c *fiber.Ctx) error {
	cats, err := h.uc.Categorias(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CategoriasResponse{Total: len(cats), Categorias: cats})
}

// InStock godoc
// @Summary      Productos con stock
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/productos/con-stock [get]
func (h *ProductHandler) InStock(c *fiber.Ctx) error {
	out, err := h.uc.InStock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(productList(out))
}

// OutOfStock godoc
// @Summary      Productos agotados
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/productos/agotados [get]
func (h *ProductHandler) OutOfStock(c *fiber.Ctx) error {
	out, err := h.uc.OutOfStock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(productList(out))
}

// SetStock godoc
// @Summary      Fijar stock
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.SetStockRequest  true  "Nuevo stock"
// @Success      200   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/stock [put]
func (h *ProductHandler) SetStock(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Mensaje: "Stock debe ser un número"})
	}
	id := c.Params("id")
	out, err := h.uc.SetStock(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ProductMutationResponse{
		Mensaje:  fmt.Sprintf("Stock del producto %s actualizado a %d", id, out.Stock),
		Producto: *out,
	})
}

// ReduceStock godoc
// @Summary      Reducir stock
// @Description  Falla con 400 "Stock insuficiente" si el resultado sería negativo y con 409 si otra petición modificó el producto a la vez.
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ReduceStockRequest  true  "Cantidad a descontar"
// @Success      200   {object}  dto.ProductMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/reducir-stock [put]
func (h *ProductHandler) ReduceStock(c *fiber.Ctx) error {
	var in dto.ReduceStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Mensaje: "Cantidad debe ser un número positivo"})
	}
	id := c.Params("id")
	out, err := h.uc.ReduceStock(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ProductMutationResponse{
		Mensaje:  fmt.Sprintf("Stock del producto %s reducido en %d", id, *in.Cantidad),
		Producto: *out,
	})
}

// Stats godoc
// @Summary      Estadísticas de productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductStatsResponse
// @Router       /api/productos/estadisticas [get]
func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stats.Products(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
