package usecase

import (
	"context"

	"github.com/maboutik/maboutik-web/internal/application/dto"
	"github.com/maboutik/maboutik-web/internal/application/form"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
)

var categoryRequired = []string{"nom"}

// CategoryViews pantallas CRUD de las dos familias de categorías: las de
// boutique (consola admin) y las de producto (dashboard del marchand).
// Colecciones pequeñas, sin paginación ni filtros.
type CategoryViews struct {
	boutiqueCats repository.CategoryBoutiqueRepository
	produitCats  repository.CategoryProduitRepository
}

// NewCategoryViews construye las vistas de categorías.
func NewCategoryViews(boutiqueCats repository.CategoryBoutiqueRepository, produitCats repository.CategoryProduitRepository) *CategoryViews {
	return &CategoryViews{boutiqueCats: boutiqueCats, produitCats: produitCats}
}

// ListBoutiqueCategories categorías de boutique.
func (v *CategoryViews) ListBoutiqueCategories(ctx context.Context, sess domain.Session) ([]entity.CategoryBoutique, error) {
	return v.boutiqueCats.List(ctx, sess)
}

// ListProduitCategories categorías de producto de una boutique.
func (v *CategoryViews) ListProduitCategories(ctx context.Context, sess domain.Session, boutiqueID string) ([]entity.CategoryProduit, error) {
	return v.produitCats.ListByBoutique(ctx, sess, boutiqueID)
}

// DeleteBoutiqueCategory elimina una categoría de boutique.
func (v *CategoryViews) DeleteBoutiqueCategory(ctx context.Context, sess domain.Session, id string) error {
	return v.boutiqueCats.Delete(ctx, sess, id)
}

// DeleteProduitCategory elimina una categoría de producto.
func (v *CategoryViews) DeleteProduitCategory(ctx context.Context, sess domain.Session, id string) error {
	return v.produitCats.Delete(ctx, sess, id)
}

// NewBoutiqueCategoryForm formulario de categoría de boutique.
func (v *CategoryViews) NewBoutiqueCategoryForm(existing *entity.CategoryBoutique) *form.Controller[*entity.CategoryBoutique] {
	f := form.NewController(categoryRequired, func(ctx context.Context, sess domain.Session, draft form.Draft) (*entity.CategoryBoutique, error) {
		in := dto.CategoryInput{Name: draft.Values["nom"], Description: draft.Values["description"]}
		if draft.ID == "" {
			return v.boutiqueCats.Create(ctx, sess, in)
		}
		return v.boutiqueCats.Update(ctx, sess, draft.ID, in)
	})
	openCategoryForm(f, existing == nil, func() (string, string, string) {
		return existing.ID, existing.Name, existing.Description
	})
	return f
}

// NewProduitCategoryForm formulario de categoría de producto de la boutique.
func (v *CategoryViews) NewProduitCategoryForm(boutiqueID string, existing *entity.CategoryProduit) *form.Controller[*entity.CategoryProduit] {
	f := form.NewController(categoryRequired, func(ctx context.Context, sess domain.Session, draft form.Draft) (*entity.CategoryProduit, error) {
		in := dto.CategoryInput{Name: draft.Values["nom"], Description: draft.Values["description"]}
		if draft.ID == "" {
			return v.produitCats.Create(ctx, sess, boutiqueID, in)
		}
		return v.produitCats.Update(ctx, sess, draft.ID, in)
	})
	openCategoryForm(f, existing == nil, func() (string, string, string) {
		return existing.ID, existing.Name, existing.Description
	})
	return f
}

func openCategoryForm[R any](f *form.Controller[R], isNew bool, seed func() (id, name, description string)) {
	if isNew {
		f.Open("", map[string]string{"nom": "", "description": ""})
		return
	}
	id, name, description := seed()
	f.Open(id, map[string]string{"nom": name, "description": description})
}
