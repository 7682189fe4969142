package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maboutik/maboutik-web/internal/application/usecase"
)

// PaymentHandler listados de paiements: los de la boutique del marchand y la
// vista global de la consola admin. Solo lectura, el backend es el único que
// escribe paiements.
type PaymentHandler struct {
	views *usecase.PaymentViews
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(views *usecase.PaymentViews) *PaymentHandler {
	return &PaymentHandler{views: views}
}

// ListByBoutique godoc
// @Summary      Paiements de la boutique
// @Tags         paiements
// @Security     Bearer
// @Produce      json
// @Param        q            query  string  false  "Recherche (référence, commande)"
// @Param        statut       query  string  false  "Filtre par statut"
// @Param        montant_min  query  string  false  "Montant min (FCFA)"
// @Param        montant_max  query  string  false  "Montant max (FCFA)"
// @Param        tri          query  string  false  "Clé de tri (date|montant)"
// @Param        ordre        query  string  false  "asc|desc"
// @Param        page         query  int     false  "Page (1-based)"
// @Success      200  {object}  dto.PaymentListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/boutique/paiements [get]
func (h *PaymentHandler) ListByBoutique(c *fiber.Ctx) error {
	sess := GetSession(c)
	out, err := h.views.ListByBoutique(c.Context(), sess, sess.BoutiqueID, parseListParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Vue globale des paiements (console admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        statut  query  string  false  "Filtre par statut"
// @Param        page    query  int     false  "Page (1-based)"
// @Success      200  {object}  dto.PaymentListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/paiements [get]
func (h *PaymentHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.views.ListAll(c.Context(), GetSession(c), parseListParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
