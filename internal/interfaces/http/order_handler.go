package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/application/usecase"
)

// OrderHandler pantallas de commandes del dashboard du marchand: listado
// filtrable, cambio de estado, suppression, export CSV y reçu PDF.
type OrderHandler struct {
	views *usecase.OrderViews
}

// NewOrderHandler construye el handler.
func NewOrderHandler(views *usecase.OrderViews) *OrderHandler {
	return &OrderHandler{views: views}
}

// List godoc
// @Summary      Lister les commandes de la boutique
// @Tags         commandes
// @Security     Bearer
// @Produce      json
// @Param        q            query  string  false  "Recherche (client, ID)"
// @Param        statut       query  string  false  "Filtre par statut"
// @Param        date_debut   query  string  false  "Date min (AAAA-MM-JJ)"
// @Param        date_fin     query  string  false  "Date max (AAAA-MM-JJ)"
// @Param        montant_min  query  string  false  "Total min (FCFA)"
// @Param        montant_max  query  string  false  "Total max (FCFA)"
// @Param        tri          query  string  false  "Clé de tri (date|montant)"
// @Param        ordre        query  string  false  "asc|desc"
// @Param        page         query  int     false  "Page (1-based)"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/boutique/commandes [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	sess := GetSession(c)
	out, err := h.views.List(c.Context(), sess, sess.BoutiqueID, parseListParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Détail d'une commande
// @Tags         commandes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la commande"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boutique/commandes/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.views.GetByID(c.Context(), GetSession(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Changer le statut d'une commande
// @Tags         commandes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la commande"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nouveau statut"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/boutique/commandes/{id}/statut [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil || in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "statut requis"})
	}
	out, err := h.views.UpdateStatus(c.Context(), GetSession(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer une commande
// @Tags         commandes
// @Security     Bearer
// @Param        id   path  string  true  "ID de la commande"
// @Success      204  "supprimée"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boutique/commandes/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.views.Delete(c.Context(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportCSV godoc
// @Summary      Exporter les commandes filtrées en CSV
// @Tags         commandes
// @Security     Bearer
// @Produce      text/csv
// @Param        q            query  string  false  "Recherche (client, ID)"
// @Param        statut       query  string  false  "Filtre par statut"
// @Param        date_debut   query  string  false  "Date min (AAAA-MM-JJ)"
// @Param        date_fin     query  string  false  "Date max (AAAA-MM-JJ)"
// @Success      200  {string}  string  "fichier CSV"
// @Router       /api/boutique/commandes/export.csv [get]
func (h *OrderHandler) ExportCSV(c *fiber.Ctx) error {
	sess := GetSession(c)
	csv, err := h.views.ExportCSV(c.Context(), sess, sess.BoutiqueID, parseListParams(c))
	if err != nil {
		return respondError(c, err)
	}
	name := fmt.Sprintf("commandes-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, name))
	return c.SendString(csv)
}

// Receipt godoc
// @Summary      Reçu PDF d'une commande
// @Tags         commandes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la commande"
// @Success      200  {string}  string  "document PDF"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boutique/commandes/{id}/recu.pdf [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	sess := GetSession(c)
	pdf, err := h.views.Receipt(c.Context(), sess, sess.BoutiqueID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="recu-%s.pdf"`, c.Params("id")))
	return c.Send(pdf)
}
