package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/application/usecase"
)

// CategoryHandler CRUD de las dos familias de categorías: las de produit
// (dashboard du marchand) y las de boutique (consola admin). Colecciones
// pequeñas, sin paginación.
type CategoryHandler struct {
	views *usecase.CategoryViews
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(views *usecase.CategoryViews) *CategoryHandler {
	return &CategoryHandler{views: views}
}

// ─── Catégories de produit (marchand) ────────────────────────────────────────

// ListProduitCategories godoc
// @Summary      Catégories de produits de la boutique
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.CategoryProduit
// @Router       /api/boutique/categories [get]
func (h *CategoryHandler) ListProduitCategories(c *fiber.Ctx) error {
	sess := GetSession(c)
	out, err := h.views.ListProduitCategories(c.Context(), sess, sess.BoutiqueID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateProduitCategory godoc
// @Summary      Créer une catégorie de produit
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryFormRequest  true  "Catégorie"
// @Success      201   {object}  entity.CategoryProduit
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/boutique/categories [post]
func (h *CategoryHandler) CreateProduitCategory(c *fiber.Ctx) error {
	return h.submitProduitCategory(c, "")
}

// UpdateProduitCategory godoc
// @Summary      Modifier une catégorie de produit
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la catégorie"
// @Param        body  body  dto.CategoryFormRequest  true  "Catégorie"
// @Success      200   {object}  entity.CategoryProduit
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/boutique/categories/{id} [put]
func (h *CategoryHandler) UpdateProduitCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id requis"})
	}
	return h.submitProduitCategory(c, id)
}

func (h *CategoryHandler) submitProduitCategory(c *fiber.Ctx, id string) error {
	sess := GetSession(c)
	in, ok := parseCategoryBody(c)
	if !ok {
		return nil // réponse déjà écrite
	}
	f := h.views.NewProduitCategoryForm(sess.BoutiqueID, nil)
	f.Open(id, map[string]string{"nom": in.Name, "description": in.Description})
	if !f.CanSubmit() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nom requis"})
	}
	out, err := f.Submit(c.Context(), sess)
	if err != nil {
		return respondError(c, err)
	}
	if id == "" {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}

// DeleteProduitCategory godoc
// @Summary      Supprimer une catégorie de produit
// @Tags         categories
// @Security     Bearer
// @Param        id   path  string  true  "ID de la catégorie"
// @Success      204  "supprimée"
// @Router       /api/boutique/categories/{id} [delete]
func (h *CategoryHandler) DeleteProduitCategory(c *fiber.Ctx) error {
	if err := h.views.DeleteProduitCategory(c.Context(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ─── Catégories de boutique (admin) ──────────────────────────────────────────

// ListBoutiqueCategories godoc
// @Summary      Catégories de boutiques
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.CategoryBoutique
// @Router       /api/admin/categories [get]
func (h *CategoryHandler) ListBoutiqueCategories(c *fiber.Ctx) error {
	out, err := h.views.ListBoutiqueCategories(c.Context(), GetSession(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateBoutiqueCategory godoc
// @Summary      Créer une catégorie de boutique
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryFormRequest  true  "Catégorie"
// @Success      201   {object}  entity.CategoryBoutique
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/categories [post]
func (h *CategoryHandler) CreateBoutiqueCategory(c *fiber.Ctx) error {
	return h.submitBoutiqueCategory(c, "")
}

// UpdateBoutiqueCategory godoc
// @Summary      Modifier une catégorie de boutique
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la catégorie"
// @Param        body  body  dto.CategoryFormRequest  true  "Catégorie"
// @Success      200   {object}  entity.CategoryBoutique
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/categories/{id} [put]
func (h *CategoryHandler) UpdateBoutiqueCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id requis"})
	}
	return h.submitBoutiqueCategory(c, id)
}

func (h *CategoryHandler) submitBoutiqueCategory(c *fiber.Ctx, id string) error {
	sess := GetSession(c)
	in, ok := parseCategoryBody(c)
	if !ok {
		return nil
	}
	f := h.views.NewBoutiqueCategoryForm(nil)
	f.Open(id, map[string]string{"nom": in.Name, "description": in.Description})
	if !f.CanSubmit() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nom requis"})
	}
	out, err := f.Submit(c.Context(), sess)
	if err != nil {
		return respondError(c, err)
	}
	if id == "" {
		return c.Status(fiber.StatusCreated).JSON(out)
	}
	return c.JSON(out)
}

// DeleteBoutiqueCategory godoc
// @Summary      Supprimer une catégorie de boutique
// @Tags         admin
// @Security     Bearer
// @Param        id   path  string  true  "ID de la catégorie"
// @Success      204  "supprimée"
// @Router       /api/admin/categories/{id} [delete]
func (h *CategoryHandler) DeleteBoutiqueCategory(c *fiber.Ctx) error {
	if err := h.views.DeleteBoutiqueCategory(c.Context(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseCategoryBody(c *fiber.Ctx) (dto.CategoryFormRequest, bool) {
	var in dto.CategoryFormRequest
	if err := c.BodyParser(&in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
		return in, false
	}
	return in, true
}
