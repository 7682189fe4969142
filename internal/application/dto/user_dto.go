package dto

import "github.com/maboutik/maboutik-web/internal/domain/entity"

// UserInput alta o modificación de cuenta desde la consola admin.
// Password vacío en update significa "sin cambio"; el backend lo valida.
type UserInput struct {
	Email     string
	FirstName string
	LastName  string
	Role      string
	Password  string
	Active    bool
}

// UserListResponse listado paginado de cuentas de la consola admin.
type UserListResponse struct {
	Items []entity.User `json:"items"`
	Meta  ListMeta      `json:"meta"`
}

// UserFormRequest cuerpo del formulario de usuario.
type UserFormRequest struct {
	Email     string `json:"email" form:"email" validate:"required,email"`
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Role      string `json:"role" form:"role" validate:"required"`
	Password  string `json:"password" form:"password"`
	Active    bool   `json:"is_active" form:"is_active"`
}
