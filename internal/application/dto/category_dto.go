package dto

// CategoryInput borrador de categoría (boutique o produit).
type CategoryInput struct {
	Name        string
	Description string
}

// CategoryFormRequest cuerpo del formulario de categoría.
type CategoryFormRequest struct {
	Name        string `json:"nom" form:"nom" validate:"required"`
	Description string `json:"description" form:"description"`
}
