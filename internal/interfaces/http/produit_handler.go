package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/application/usecase"
)

// ProduitHandler pantallas de produits del dashboard du marchand (protegido).
type ProduitHandler struct {
	views *usecase.ProduitViews
}

// NewProduitHandler construye el handler.
func NewProduitHandler(views *usecase.ProduitViews) *ProduitHandler {
	return &ProduitHandler{views: views}
}

// List godoc
// @Summary      Lister les produits de la boutique
// @Tags         produits
// @Security     Bearer
// @Produce      json
// @Param        q            query  string  false  "Recherche libre"
// @Param        statut       query  string  false  "Filtre par statut"
// @Param        tri          query  string  false  "Clé de tri (date|montant)"
// @Param        ordre        query  string  false  "asc|desc"
// @Param        page         query  int     false  "Page (1-based)"
// @Success      200  {object}  dto.ProduitListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/boutique/produits [get]
func (h *ProduitHandler) List(c *fiber.Ctx) error {
	sess := GetSession(c)
	out, err := h.views.List(c.Context(), sess, sess.BoutiqueID, parseListParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Détail d'un produit
// @Tags         produits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID du produit"
// @Success      200  {object}  dto.ProduitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boutique/produits/{id} [get]
func (h *ProduitHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.views.GetByID(c.Context(), GetSession(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Créer un produit
// @Tags         produits
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        nom        formData  string  true   "Nom"
// @Param        prix       formData  string  true   "Prix (FCFA)"
// @Param        categorie  formData  string  true   "Catégorie"
// @Param        image      formData  file    false  "Photo"
// @Success      201  {object}  dto.ProduitResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/boutique/produits [post]
func (h *ProduitHandler) Create(c *fiber.Ctx) error {
	return h.submit(c, "")
}

// Update godoc
// @Summary      Modifier un produit
// @Tags         produits
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id   path  string  true  "ID du produit"
// @Success      200  {object}  dto.ProduitResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boutique/produits/{id} [put]
func (h *ProduitHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id requis"})
	}
	return h.submit(c, id)
}

// submit alimenta el formulario con el borrador de la petición y lo envía.
// El formulario decide create o update según id; la imagen, si llega, va como
// parte multipart hacia el backend.
func (h *ProduitHandler) submit(c *fiber.Ctx, id string) error {
	sess := GetSession(c)
	var in dto.ProduitFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}

	f := h.views.NewForm(sess.BoutiqueID, nil)
	f.Open(id, map[string]string{
		"categorie":   in.CategoryID,
		"nom":         in.Name,
		"description": in.Description,
		"prix":        in.Price,
		"ancien_prix": in.OldPrice,
		"quantite":    in.Quantity,
		"statut":      in.Status,
	})
	img, err := formImage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "image illisible"})
	}
	f.SetImage(img)

	if !f.CanSubmit() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nom, prix et catégorie sont requis"})
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

// UpdateStatus godoc
// @Summary      Changer le statut d'un produit depuis la liste
// @Tags         produits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID du produit"
// @Param        body  body  UpdateStatusRequest      true  "Nouveau statut"
// @Success      200   {object}  dto.ProduitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/boutique/produits/{id}/statut [patch]
func (h *ProduitHandler) UpdateStatus(c *fiber.Ctx) error {
	var in UpdateStatusRequest
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
// @Summary      Supprimer un produit
// @Tags         produits
// @Security     Bearer
// @Param        id   path  string  true  "ID du produit"
// @Success      204  "supprimé"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boutique/produits/{id} [delete]
func (h *ProduitHandler) Delete(c *fiber.Ctx) error {
	if err := h.views.Delete(c.Context(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateStatusRequest cambio de estado desde la fila de un listado.
type UpdateStatusRequest struct {
	Status string `json:"statut" form:"statut" validate:"required"`
}
