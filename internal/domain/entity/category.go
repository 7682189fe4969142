package entity

// CategoryBoutique clasificación de primer nivel de las boutiques.
// Se usa para la navegación del storefront (directorio de tiendas).
type CategoryBoutique struct {
	ID          string `json:"id"`
	Name        string `json:"nom"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CategoryProduit clasificación de productos dentro de una boutique.
// Pertenece a una sola boutique; el backend garantiza la integridad referencial.
type CategoryProduit struct {
	ID          string `json:"id"`
	BoutiqueID  string `json:"boutique"`
	Name        string `json:"nom"`
	Description string `json:"description"`
}
