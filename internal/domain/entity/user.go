package entity

import "time"

// User cuenta gestionada desde la consola de administración.
// La contraseña nunca transita por el gateway salvo en el alta, y va directa
// al backend; aquí no se almacena ni se procesa.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       string    `json:"role"` // ver constantes domain.Role*
	Active     bool      `json:"is_active"`
	DateJoined time.Time `json:"date_joined"`
}
