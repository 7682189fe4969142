package http

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/gofiber/fiber/v2"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/application/usecase"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
)

// StorefrontHandler pantallas públicas: annuaire de boutiques, página de
// boutique con sus productos, página de producto con avis. Todas las
// peticiones al backend salen con sesión anónima.
type StorefrontHandler struct {
	boutiques  *usecase.BoutiqueViews
	produits   *usecase.ProduitViews
	engagement *usecase.EngagementViews
	publicURL  string
}

// NewStorefrontHandler construye el handler. publicURL es la base absoluta
// de los enlaces del sitemap.
func NewStorefrontHandler(boutiques *usecase.BoutiqueViews, produits *usecase.ProduitViews, engagement *usecase.EngagementViews, publicURL string) *StorefrontHandler {
	return &StorefrontHandler{boutiques: boutiques, produits: produits, engagement: engagement, publicURL: strings.TrimRight(publicURL, "/")}
}

// Directory godoc
// @Summary      Annuaire público de boutiques
// @Tags         vitrine
// @Produce      json
// @Param        q        query  string  false  "Recherche libre"
// @Param        statut   query  string  false  "Filtre par statut"
// @Param        page     query  int     false  "Page (1-based)"
// @Success      200  {object}  dto.BoutiqueListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/boutiques [get]
func (h *StorefrontHandler) Directory(c *fiber.Ctx) error {
	out, err := h.boutiques.List(c.Context(), domain.Anonymous(), parseListParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DirectoryCategories godoc
// @Summary      Catégories de boutiques (filtre de l'annuaire)
// @Tags         vitrine
// @Produce      json
// @Success      200  {array}  entity.CategoryBoutique
// @Router       /api/categories [get]
func (h *StorefrontHandler) DirectoryCategories(c *fiber.Ctx) error {
	out, err := h.boutiques.Categories(c.Context(), domain.Anonymous())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Boutique godoc
// @Summary      Page publique d'une boutique
// @Tags         vitrine
// @Produce      json
// @Param        id   path  string  true  "ID de la boutique"
// @Success      200  {object}  dto.BoutiqueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/boutiques/{id} [get]
func (h *StorefrontHandler) Boutique(c *fiber.Ctx) error {
	out, err := h.boutiques.GetByID(c.Context(), domain.Anonymous(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BoutiqueProducts godoc
// @Summary      Produits d'une boutique (catalogue public)
// @Tags         vitrine
// @Produce      json
// @Param        id      path   string  true   "ID de la boutique"
// @Param        q       query  string  false  "Recherche libre"
// @Param        statut  query  string  false  "Filtre par statut"
// @Param        page    query  int     false  "Page (1-based)"
// @Success      200  {object}  dto.ProduitListResponse
// @Router       /api/boutiques/{id}/produits [get]
func (h *StorefrontHandler) BoutiqueProducts(c *fiber.Ctx) error {
	out, err := h.produits.List(c.Context(), domain.Anonymous(), c.Params("id"), parseListParams(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BoutiqueProductCategories godoc
// @Summary      Catégories de produits d'une boutique (filtre du catalogue)
// @Tags         vitrine
// @Produce      json
// @Param        id   path  string  true  "ID de la boutique"
// @Success      200  {array}  entity.CategoryProduit
// @Router       /api/boutiques/{id}/categories [get]
func (h *StorefrontHandler) BoutiqueProductCategories(c *fiber.Ctx) error {
	out, err := h.produits.Categories(c.Context(), domain.Anonymous(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Product godoc
// @Summary      Page publique d'un produit
// @Tags         vitrine
// @Produce      json
// @Param        id   path  string  true  "ID du produit"
// @Success      200  {object}  dto.ProduitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produits/{id} [get]
func (h *StorefrontHandler) Product(c *fiber.Ctx) error {
	out, err := h.produits.GetByID(c.Context(), domain.Anonymous(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProductComments godoc
// @Summary      Avis d'un produit
// @Tags         vitrine
// @Produce      json
// @Param        id   path  string  true  "ID du produit"
// @Success      200  {array}  entity.Comment
// @Router       /api/produits/{id}/commentaires [get]
func (h *StorefrontHandler) ProductComments(c *fiber.Ctx) error {
	out, err := h.engagement.ProductComments(c.Context(), domain.Anonymous(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddCommentRequest cuerpo del formulario público de avis.
type AddCommentRequest struct {
	Author  string `json:"auteur" form:"auteur" validate:"required"`
	Content string `json:"contenu" form:"contenu" validate:"required"`
	Rating  int    `json:"note" form:"note"`
}

// AddComment godoc
// @Summary      Déposer un avis sur un produit
// @Tags         vitrine
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID du produit"
// @Param        body  body  AddCommentRequest  true  "Avis"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/produits/{id}/commentaires [post]
func (h *StorefrontHandler) AddComment(c *fiber.Ctx) error {
	var in AddCommentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.Author == "" || in.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "auteur et contenu sont requis"})
	}
	out, err := h.engagement.AddComment(c.Context(), domain.Anonymous(), c.Params("id"), in.Author, in.Content, in.Rating)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Sitemap genera el sitemap XML de la vitrine: annuaire, boutiques actives y
// sus produits. GET /sitemap.xml
func (h *StorefrontHandler) Sitemap(c *fiber.Ctx) error {
	sess := domain.Anonymous()
	boutiques, err := h.boutiques.List(c.Context(), sess, repository.ListParams{Status: "active"})
	if err != nil {
		return respondError(c, err)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", "http://www.sitemaps.org/schemas/sitemap/0.9")

	addURL := func(path string) {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(h.publicURL + path)
	}
	addURL("/")
	for _, b := range boutiques.Items {
		addURL(fmt.Sprintf("/boutiques/%s", b.ID))
		produits, err := h.produits.List(c.Context(), sess, b.ID, repository.ListParams{})
		if err != nil {
			continue // boutique sans catalogue accessible: on l'omet, pas d'échec global
		}
		for _, p := range produits.Items {
			addURL(fmt.Sprintf("/produits/%s", p.ID))
		}
	}

	doc.Indent(2)
	xml, err := doc.WriteToString()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.SendString(xml)
}
