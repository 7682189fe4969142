package entity

import "time"

// Estados de una boutique (deben coincidir con el campo "statut" del backend).
const (
	BoutiqueActive    = "active"
	BoutiqueEnAttente = "en_attente"
	BoutiqueSuspendue = "suspendue"
)

// Boutique representa la tienda de un marchand (tenant del marketplace).
// La copia local nunca es la fuente de verdad; se rellena desde el backend
// y cualquier divergencia se resuelve re-consultando.
type Boutique struct {
	ID           string    `json:"id"`
	Name         string    `json:"nom"`
	Description  string    `json:"description"`
	Image        string    `json:"image"` // URL servida por el backend
	CategoryID   string    `json:"categorie"`
	CategoryName string    `json:"categorie_nom"` // solo lectura, denormalizado para listados
	OwnerID      string    `json:"proprietaire"`
	Phone        string    `json:"telephone"`
	Address      string    `json:"adresse"`
	Status       string    `json:"statut"` // ver constantes Boutique*
	CreatedAt    time.Time `json:"date_creation"`
}
