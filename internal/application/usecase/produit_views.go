package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/application/form"
	"github.com/maboutik/maboutik-web/internal/application/listing"
	"github.com/maboutik/maboutik-web/internal/application/presenter"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
	"github.com/maboutik/maboutik-web/pkg/logger"
)

// Campos requeridos del formulario de producto. Conveniencia de UX: el
// backend revalida en el submit.
var produitRequired = []string{"nom", "prix", "categorie"}

// ProduitViews pantallas de productos del dashboard de boutique.
// El listado es client-driven: un fetch de la colección de la boutique y
// filtro/orden/página en memoria.
type ProduitViews struct {
	products   repository.ProductRepository
	categories repository.CategoryProduitRepository
	pageSize   int
	log        *logger.Logger
}

// NewProduitViews construye las vistas de producto.
func NewProduitViews(products repository.ProductRepository, categories repository.CategoryProduitRepository, pageSize int, log *logger.Logger) *ProduitViews {
	return &ProduitViews{products: products, categories: categories, pageSize: pageSize, log: log}
}

func produitFields() listing.Fields[entity.Product] {
	return listing.Fields[entity.Product]{
		ID:     func(p entity.Product) string { return p.ID },
		Text:   func(p entity.Product) []string { return []string{p.ID, p.Name} },
		Status: func(p entity.Product) string { return p.Status },
		Date:   func(p entity.Product) time.Time { return p.CreatedAt },
		Amount: func(p entity.Product) decimal.Decimal { return p.Price },
	}
}

// NewList controlador del listado de productos de la boutique.
func (v *ProduitViews) NewList(boutiqueID string) *listing.Controller[entity.Product] {
	return listing.NewController(listing.ModeClient, v.pageSize, produitFields(),
		func(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[entity.Product], error) {
			return v.products.ListByBoutique(ctx, sess, boutiqueID, p)
		})
}

// List carga y proyecta el listado con los parámetros de la vista.
func (v *ProduitViews) List(ctx context.Context, sess domain.Session, boutiqueID string, p repository.ListParams) (*dto.ProduitListResponse, error) {
	ctrl := v.NewList(boutiqueID)
	ctrl.ApplyParams(p)
	if err := ctrl.Load(ctx, sess); err != nil {
		return nil, err
	}
	rows := ctrl.VisibleRows()
	items := make([]dto.ProduitResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toProduitResponse(row))
	}
	return &dto.ProduitListResponse{
		Items: items,
		Meta:  dto.ListMeta{Page: ctrl.Params().Page, PageSize: v.pageSize, Count: ctrl.Count()},
	}, nil
}

// GetByID proyección de detalle para el formulario de edición.
func (v *ProduitViews) GetByID(ctx context.Context, sess domain.Session, id string) (*dto.ProduitResponse, error) {
	p, err := v.products.GetByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	out := toProduitResponse(*p)
	return &out, nil
}

// UpdateStatus cambia el estado de un producto desde la fila del listado.
func (v *ProduitViews) UpdateStatus(ctx context.Context, sess domain.Session, id, status string) (*dto.ProduitResponse, error) {
	p, err := v.products.UpdateStatus(ctx, sess, id, status)
	if err != nil {
		return nil, err
	}
	out := toProduitResponse(*p)
	return &out, nil
}

// Delete elimina un producto.
func (v *ProduitViews) Delete(ctx context.Context, sess domain.Session, id string) error {
	return v.products.Delete(ctx, sess, id)
}

// Categories categorías de producto de la boutique (para el select del formulario).
func (v *ProduitViews) Categories(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.CategoryProduit, error) {
	return v.categories.ListByBoutique(ctx, sess, boutiqueID)
}

// NewForm abre el formulario de producto. existing nil arranca un alta con
// los valores por defecto (cadenas vacías, numéricos a cero, imagen
// placeholder); con entidad se siembra el borrador con sus valores actuales,
// incluido el nombre de categoría denormalizado.
func (v *ProduitViews) NewForm(boutiqueID string, existing *entity.Product) *form.Controller[*dto.ProduitResponse] {
	f := form.NewController(produitRequired, func(ctx context.Context, sess domain.Session, draft form.Draft) (*dto.ProduitResponse, error) {
		in, err := parseProduitDraft(draft)
		if err != nil {
			return nil, err
		}
		var p *entity.Product
		if draft.ID == "" {
			p, err = v.products.Create(ctx, sess, boutiqueID, in)
		} else {
			p, err = v.products.Update(ctx, sess, draft.ID, in)
		}
		if err != nil {
			return nil, err
		}
		out := toProduitResponse(*p)
		return &out, nil
	})

	if existing == nil {
		f.Open("", map[string]string{
			"categorie":   "",
			"nom":         "",
			"description": "",
			"prix":        "",
			"ancien_prix": "",
			"quantite":    "0",
			"statut":      entity.ProduitActif,
			"image":       entity.PlaceholderImage,
		})
		return f
	}

	f.Open(existing.ID, map[string]string{
		"categorie":     existing.CategoryID,
		"categorie_nom": existing.CategoryName, // solo display
		"nom":           existing.Name,
		"description":   existing.Description,
		"prix":          existing.Price.String(),
		"ancien_prix":   existing.OldPrice.String(),
		"quantite":      strconv.Itoa(existing.Quantity),
		"statut":        existing.Status,
		"image":         existing.Image,
	})
	return f
}

func parseProduitDraft(draft form.Draft) (dto.ProduitInput, error) {
	price, err := decimal.NewFromString(draft.Values["prix"])
	if err != nil {
		return dto.ProduitInput{}, fmt.Errorf("%w: prix invalide", domain.ErrInvalidInput)
	}
	oldPrice := decimal.Zero
	if s := draft.Values["ancien_prix"]; s != "" {
		if oldPrice, err = decimal.NewFromString(s); err != nil {
			return dto.ProduitInput{}, fmt.Errorf("%w: ancien prix invalide", domain.ErrInvalidInput)
		}
	}
	qty := 0
	if s := draft.Values["quantite"]; s != "" {
		if qty, err = strconv.Atoi(s); err != nil {
			return dto.ProduitInput{}, fmt.Errorf("%w: quantité invalide", domain.ErrInvalidInput)
		}
	}
	status := draft.Values["statut"]
	if status == "" {
		status = entity.ProduitActif
	}
	return dto.ProduitInput{
		CategoryID:  draft.Values["categorie"],
		Name:        draft.Values["nom"],
		Description: draft.Values["description"],
		Price:       price,
		OldPrice:    oldPrice,
		Quantity:    qty,
		Status:      status,
		Image:       draft.Image,
	}, nil
}

func toProduitResponse(p entity.Product) dto.ProduitResponse {
	badge := presenter.ProductBadge(p.Status)
	return dto.ProduitResponse{
		ID:           p.ID,
		BoutiqueID:   p.BoutiqueID,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		PriceLabel:   presenter.FCFA(p.Price),
		OldPrice:     p.OldPrice,
		Quantity:     p.Quantity,
		Image:        p.Image,
		Status:       p.Status,
		BadgeLabel:   badge.Label,
		BadgeColor:   badge.Color,
		CreatedAt:    p.CreatedAt,
	}
}
