package domain

// Roles de usuario reconocidos por el gateway.
// Deben coincidir con el claim "role" emitido por el backend.
const (
	RoleAdmin    = "admin"
	RoleMarchand = "marchand"
	RoleClient   = "client"
)

// Session identifica al usuario autenticado en una petición.
//
// Se construye en el middleware de auth a partir del Bearer token y se pasa
// explícitamente a cada llamada de datos: ningún componente lee un singleton
// global de autenticación, así los tests inyectan sesiones falsas sin fugas
// de estado compartido.
type Session struct {
	Token      string // Bearer token crudo, reenviado al backend
	UserID     string
	BoutiqueID string // boutique del marchand; vacío para admin y visitantes
	Role       string
}

// Anonymous sesión vacía para las vistas públicas del storefront.
// El cliente REST no adjunta Authorization cuando Token está vacío.
func Anonymous() Session { return Session{} }

// IsAnonymous indica si la sesión no lleva token.
func (s Session) IsAnonymous() bool { return s.Token == "" }

// IsAdmin indica si la sesión pertenece a la consola de administración.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
