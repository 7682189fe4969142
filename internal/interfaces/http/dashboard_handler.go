package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maboutik/maboutik-web/internal/application/dashboard"
)

// DashboardHandler tarjetas de estadísticas del dashboard du marchand.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve las tres tarjetas del dashboard: totales, serie mensual de
// 12 puntos y repartición por categoría. Cada tarjeta falla por separado: la
// respuesta siempre es 200 y la tarjeta caída lleva su propio mensaje de
// error sin contaminar a las demás.
// GET /api/boutique/dashboard
//
// @Summary      Tableau de bord de la boutique
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/boutique/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	sess := GetSession(c)
	return c.JSON(h.uc.Summary(c.Context(), sess, sess.BoutiqueID))
}
