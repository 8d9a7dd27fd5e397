package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// StatsHandler estadísticas generales (protegido).
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Get godoc
// @Summary      Estadísticas
// @Description  tipo=usuarios o tipo=productos; sin tipo devuelve el conteo de ambas colecciones.
// @Tags         estadisticas
// @Security     Bearer
// @Produce      json
// @Param        tipo  query  string  false  "usuarios | productos"
// @Success      200   {object}  dto.GlobalStatsResponse
// @Router       /api/estadisticas [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var (
		out any
		err error
	)
	switch c.Query("tipo") {
	case "usuarios":
		out, err = h.uc.Users(ctx)
	case "productos":
		out, err = h.uc.Products(ctx)
	default:
		out, err = h.uc.Global(ctx)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
