package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/application/usecase"
)

// AdminHandler consola admin: gestion des boutiques (CRUD + changement de
// statut) y gestion des comptes. Todas las rutas pasan por RequireAdmin.
type AdminHandler struct {
	boutiques *usecase.BoutiqueViews
	users     *usecase.UserViews
}

// NewAdminHandler construye el handler.
func NewAdminHandler(boutiques *usecase.BoutiqueViews, users *usecase.UserViews) *AdminHandler {
	return &AdminHandler{boutiques: boutiques, users: users}
}

// ─── Boutiques ───────────────────────────────────────────────────────────────

// ListBoutiques godoc
// @Summary      Lister toutes les boutiques
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Recherche libre"
// @Param        statut  query  string  false  "Filtre par statut"
// @Param        page    query  int     false  "Page (1-based)"
// @Success      200  {object}  dto.BoutiqueListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/boutiques [get]
func (h *AdminHandler) ListBoutiques(c *fiber.Ctx) error {
	out, err := h.boutiques.List(c.Context(), GetSession(c), parseListParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetBoutique godoc
// @Summary      Détail d'une boutique
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la boutique"
// @Success      200  {object}  dto.BoutiqueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/boutiques/{id} [get]
func (h *AdminHandler) GetBoutique(c *fiber.Ctx) error {
	out, err := h.boutiques.GetByID(c.Context(), GetSession(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateBoutique godoc
// @Summary      Créer une boutique
// @Tags         admin
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        nom        formData  string  true   "Nom"
// @Param        categorie  formData  string  true   "Catégorie"
// @Param        image      formData  file    false  "Photo"
// @Success      201  {object}  dto.BoutiqueResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/boutiques [post]
func (h *AdminHandler) CreateBoutique(c *fiber.Ctx) error {
	return h.submitBoutique(c, "")
}

// UpdateBoutique godoc
// @Summary      Modifier une boutique
// @Tags         admin
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id   path  string  true  "ID de la boutique"
// @Success      200  {object}  dto.BoutiqueResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/boutiques/{id} [put]
func (h *AdminHandler) UpdateBoutique(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id requis"})
	}
	return h.submitBoutique(c, id)
}

func (h *AdminHandler) submitBoutique(c *fiber.Ctx, id string) error {
	sess := GetSession(c)
	var in dto.BoutiqueFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}

	f := h.boutiques.NewForm(nil)
	f.Open(id, map[string]string{
		"nom":         in.Name,
		"description": in.Description,
		"categorie":   in.CategoryID,
		"telephone":   in.Phone,
		"adresse":     in.Address,
		"statut":      in.Status,
	})
	img, err := formImage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "image illisible"})
	}
	f.SetImage(img)

	if !f.CanSubmit() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nom et catégorie sont requis"})
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

// UpdateBoutiqueStatus godoc
// @Summary      Changer le statut d'une boutique (activation, suspension)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID de la boutique"
// @Param        body  body  dto.UpdateBoutiqueStatusRequest  true  "Nouveau statut"
// @Success      200   {object}  dto.BoutiqueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/boutiques/{id}/statut [patch]
func (h *AdminHandler) UpdateBoutiqueStatus(c *fiber.Ctx) error {
	var in dto.UpdateBoutiqueStatusRequest
	if err := c.BodyParser(&in); err != nil || in.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "statut requis"})
	}
	out, err := h.boutiques.UpdateStatus(c.Context(), GetSession(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteBoutique godoc
// @Summary      Supprimer une boutique
// @Tags         admin
// @Security     Bearer
// @Param        id   path  string  true  "ID de la boutique"
// @Success      204  "supprimée"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/boutiques/{id} [delete]
func (h *AdminHandler) DeleteBoutique(c *fiber.Ctx) error {
	if err := h.boutiques.Delete(c.Context(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ─── Comptes ────────────────────────────────────────────────────────────────

// ListUsers godoc
// @Summary      Lister les comptes
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        q     query  string  false  "Recherche (email, nom)"
// @Param        page  query  int     false  "Page (1-based)"
// @Success      200  {object}  dto.UserListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/comptes [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	p := parseListParams(c)
	page, err := h.users.List(c.Context(), GetSession(c), p)
	if err != nil {
		return respondError(c, err)
	}
	out := dto.UserListResponse{Items: page.Items, Meta: dto.ListMeta{Page: p.Page, PageSize: len(page.Items), Count: page.Count}}
	return c.JSON(out)
}

// CreateUser godoc
// @Summary      Créer un compte
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserFormRequest  true  "Compte"
// @Success      201   {object}  entity.User
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/comptes [post]
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	return h.submitUser(c, "")
}

// UpdateUser godoc
// @Summary      Modifier un compte
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID du compte"
// @Param        body  body  dto.UserFormRequest  true  "Compte"
// @Success      200   {object}  entity.User
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/comptes/{id} [put]
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id requis"})
	}
	return h.submitUser(c, id)
}

func (h *AdminHandler) submitUser(c *fiber.Ctx, id string) error {
	sess := GetSession(c)
	var in dto.UserFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}

	f := h.users.NewForm(nil)
	f.Open(id, map[string]string{
		"email":      in.Email,
		"first_name": in.FirstName,
		"last_name":  in.LastName,
		"role":       in.Role,
		"password":   in.Password,
		"is_active":  strconv.FormatBool(in.Active),
	})
	if !f.CanSubmit() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email et rôle sont requis"})
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

// DeleteUser godoc
// @Summary      Supprimer un compte
// @Tags         admin
// @Security     Bearer
// @Param        id   path  string  true  "ID du compte"
// @Success      204  "supprimé"
// @Router       /api/admin/comptes/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.users.Delete(c.Context(), GetSession(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
