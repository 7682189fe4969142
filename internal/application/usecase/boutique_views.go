package usecase

import (
	"context"
	"time"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/application/form"
	"github.com/maboutik/maboutik-web/internal/application/listing"
	"github.com/maboutik/maboutik-web/internal/application/presenter"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
	"github.com/maboutik/maboutik-web/pkg/logger"
)

var boutiqueRequired = []string{"nom", "categorie"}

// BoutiqueViews directorio público de boutiques y pantallas CRUD de la
// consola admin. El directorio es server-driven: cada cambio de filtro o de
// página re-consulta al backend.
type BoutiqueViews struct {
	boutiques  repository.BoutiqueRepository
	categories repository.CategoryBoutiqueRepository
	pageSize   int
	log        *logger.Logger
}

// NewBoutiqueViews construye las vistas de boutique.
func NewBoutiqueViews(boutiques repository.BoutiqueRepository, categories repository.CategoryBoutiqueRepository, pageSize int, log *logger.Logger) *BoutiqueViews {
	return &BoutiqueViews{boutiques: boutiques, categories: categories, pageSize: pageSize, log: log}
}

func boutiqueFields() listing.Fields[entity.Boutique] {
	return listing.Fields[entity.Boutique]{
		ID:     func(b entity.Boutique) string { return b.ID },
		Text:   func(b entity.Boutique) []string { return []string{b.ID, b.Name} },
		Status: func(b entity.Boutique) string { return b.Status },
		Date:   func(b entity.Boutique) time.Time { return b.CreatedAt },
	}
}

// NewList controlador del directorio/listado de boutiques.
func (v *BoutiqueViews) NewList() *listing.Controller[entity.Boutique] {
	return listing.NewController(listing.ModeServer, v.pageSize, boutiqueFields(),
		func(ctx context.Context, sess domain.Session, p repository.ListParams) (repository.Page[entity.Boutique], error) {
			return v.boutiques.List(ctx, sess, p)
		})
}

// List carga y proyecta el listado con los parámetros de la vista.
func (v *BoutiqueViews) List(ctx context.Context, sess domain.Session, p repository.ListParams) (*dto.BoutiqueListResponse, error) {
	ctrl := v.NewList()
	ctrl.ApplyParams(p)
	if err := ctrl.Load(ctx, sess); err != nil {
		return nil, err
	}
	rows := ctrl.VisibleRows()
	items := make([]dto.BoutiqueResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toBoutiqueResponse(row))
	}
	return &dto.BoutiqueListResponse{
		Items: items,
		Meta:  dto.ListMeta{Page: ctrl.Params().Page, PageSize: v.pageSize, Count: ctrl.Count()},
	}, nil
}

// GetByID detalle de una boutique (página pública o formulario admin).
func (v *BoutiqueViews) GetByID(ctx context.Context, sess domain.Session, id string) (*dto.BoutiqueResponse, error) {
	b, err := v.boutiques.GetByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	out := toBoutiqueResponse(*b)
	return &out, nil
}

// UpdateStatus activa o suspende una boutique desde la consola admin.
func (v *BoutiqueViews) UpdateStatus(ctx context.Context, sess domain.Session, id, status string) (*dto.BoutiqueResponse, error) {
	b, err := v.boutiques.UpdateStatus(ctx, sess, id, status)
	if err != nil {
		return nil, err
	}
	out := toBoutiqueResponse(*b)
	return &out, nil
}

// Delete elimina una boutique.
func (v *BoutiqueViews) Delete(ctx context.Context, sess domain.Session, id string) error {
	return v.boutiques.Delete(ctx, sess, id)
}

// Categories categorías de boutique (filtro del directorio y select del formulario).
func (v *BoutiqueViews) Categories(ctx context.Context, sess domain.Session) ([]entity.CategoryBoutique, error) {
	return v.categories.List(ctx, sess)
}

// NewForm abre el formulario de boutique de la consola admin.
func (v *BoutiqueViews) NewForm(existing *entity.Boutique) *form.Controller[*dto.BoutiqueResponse] {
	f := form.NewController(boutiqueRequired, func(ctx context.Context, sess domain.Session, draft form.Draft) (*dto.BoutiqueResponse, error) {
		in := dto.BoutiqueInput{
			Name:        draft.Values["nom"],
			Description: draft.Values["description"],
			CategoryID:  draft.Values["categorie"],
			Phone:       draft.Values["telephone"],
			Address:     draft.Values["adresse"],
			Status:      draft.Values["statut"],
			Image:       draft.Image,
		}
		if in.Status == "" {
			in.Status = entity.BoutiqueEnAttente
		}
		var (
			b   *entity.Boutique
			err error
		)
		if draft.ID == "" {
			b, err = v.boutiques.Create(ctx, sess, in)
		} else {
			b, err = v.boutiques.Update(ctx, sess, draft.ID, in)
		}
		if err != nil {
			return nil, err
		}
		out := toBoutiqueResponse(*b)
		return &out, nil
	})

	if existing == nil {
		f.Open("", map[string]string{
			"nom":         "",
			"description": "",
			"categorie":   "",
			"telephone":   "",
			"adresse":     "",
			"statut":      entity.BoutiqueEnAttente,
		})
		return f
	}

	f.Open(existing.ID, map[string]string{
		"nom":           existing.Name,
		"description":   existing.Description,
		"categorie":     existing.CategoryID,
		"categorie_nom": existing.CategoryName, // solo display
		"telephone":     existing.Phone,
		"adresse":       existing.Address,
		"statut":        existing.Status,
	})
	return f
}

func toBoutiqueResponse(b entity.Boutique) dto.BoutiqueResponse {
	badge := presenter.BoutiqueBadge(b.Status)
	return dto.BoutiqueResponse{
		ID:           b.ID,
		Name:         b.Name,
		Description:  b.Description,
		Image:        b.Image,
		CategoryID:   b.CategoryID,
		CategoryName: b.CategoryName,
		Phone:        b.Phone,
		Address:      b.Address,
		Status:       b.Status,
		BadgeLabel:   badge.Label,
		BadgeColor:   badge.Color,
		CreatedAt:    b.CreatedAt,
	}
}
