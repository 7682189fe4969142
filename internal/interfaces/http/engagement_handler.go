package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maboutik/maboutik-web/internal/application/usecase"
)

// EngagementHandler boîte de réception y notifications del dashboard du
// marchand. Los avis públicos viven en StorefrontHandler.
type EngagementHandler struct {
	views *usecase.EngagementViews
}

// NewEngagementHandler construye el handler.
func NewEngagementHandler(views *usecase.EngagementViews) *EngagementHandler {
	return &EngagementHandler{views: views}
}

// Inbox godoc
// @Summary      Messages reçus par la boutique
// @Tags         messages
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Message
// @Router       /api/boutique/messages [get]
func (h *EngagementHandler) Inbox(c *fiber.Ctx) error {
	sess := GetSession(c)
	out, err := h.views.Inbox(c.Context(), sess, sess.BoutiqueID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkMessageRead godoc
// @Summary      Marquer un message comme lu
// @Tags         messages
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du message"
// @Success      200  {object}  entity.Message
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boutique/messages/{id}/lu [patch]
func (h *EngagementHandler) MarkMessageRead(c *fiber.Ctx) error {
	out, err := h.views.MarkMessageRead(c.Context(), GetSession(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteMessage godoc
// @Summary      Supprimer un message
// @Tags         messages
// @Security     Bearer
// @Param        id   path  string  true  "ID du message"
// @Success      204  "supprimé"
// @Router       /api/boutique/messages/{id} [delete]
func (h *EngagementHandler) DeleteMessage(c *fiber.Ctx) error {
	if err := h.views.DeleteMessage(c.Context(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Notifications godoc
// @Summary      Notifications de la boutique
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Notification
// @Router       /api/boutique/notifications [get]
func (h *EngagementHandler) Notifications(c *fiber.Ctx) error {
	sess := GetSession(c)
	out, err := h.views.Notifications(c.Context(), sess, sess.BoutiqueID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkNotificationRead godoc
// @Summary      Marquer une notification comme lue
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la notification"
// @Success      200  {object}  entity.Notification
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boutique/notifications/{id}/lu [patch]
func (h *EngagementHandler) MarkNotificationRead(c *fiber.Ctx) error {
	out, err := h.views.MarkNotificationRead(c.Context(), GetSession(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
