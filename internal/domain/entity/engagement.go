package entity

import "time"

// Comment avis de un cliente sobre un producto (página pública del producto).
type Comment struct {
	ID        string    `json:"id"`
	ProductID string    `json:"produit"`
	Author    string    `json:"auteur"`
	Content   string    `json:"contenu"`
	Rating    int       `json:"note"` // 1..5
	CreatedAt time.Time `json:"date_creation"`
}

// Message mensaje recibido por una boutique vía su formulario de contacto.
type Message struct {
	ID         string    `json:"id"`
	BoutiqueID string    `json:"boutique"`
	Sender     string    `json:"expediteur"`
	Email      string    `json:"email"`
	Subject    string    `json:"sujet"`
	Content    string    `json:"contenu"`
	Read       bool      `json:"lu"`
	CreatedAt  time.Time `json:"date_creation"`
}

// Notification aviso generado por el backend para una boutique
// (nueva commande, paiement recibido, stock bajo...).
type Notification struct {
	ID         string    `json:"id"`
	BoutiqueID string    `json:"boutique"`
	Kind       string    `json:"type"`
	Content    string    `json:"contenu"`
	Read       bool      `json:"lu"`
	CreatedAt  time.Time `json:"date_creation"`
}
