package rest

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/maboutik/maboutik-web/internal/domain"
)

// APIError error tipado devuelto por el backend. Contiene o bien un mensaje
// plano (detail/error/message) o bien un mapa campo -> mensajes de validación.
type APIError struct {
	Status  int
	Message string
	Fields  domain.FieldErrors
}

// Error implementa error.
func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("backend %d: %s", e.Status, e.Fields.Error())
	}
	return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
}

// Unwrap mapea el status HTTP al error de dominio correspondiente, para que
// los call sites puedan usar errors.Is sin conocer el transporte.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusBadRequest:
		return domain.ErrInvalidInput
	default:
		return domain.ErrUnavailable
	}
}

// HasFields indica si el error lleva mensajes de validación por campo.
func (e *APIError) HasFields() bool { return len(e.Fields) > 0 }

// parseAPIError interpreta el cuerpo de error del backend. Dos formas
// documentadas: {detail|error|message: string} y {campo: [mensajes...]};
// cualquier otra cosa produce un mensaje genérico con el status.
func parseAPIError(status int, body []byte) *APIError {
	e := &APIError{Status: status}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		e.Message = genericMessage(status)
		return e
	}

	for _, key := range []string{"detail", "error", "message"} {
		if v := root.Get(key); v.Type == gjson.String {
			e.Message = v.String()
			return e
		}
	}

	// Forma {campo: [mensajes...]}. Se aceptan también valores string sueltos.
	fields := domain.FieldErrors{}
	root.ForEach(func(key, value gjson.Result) bool {
		switch {
		case value.IsArray():
			var msgs []string
			for _, m := range value.Array() {
				msgs = append(msgs, m.String())
			}
			if len(msgs) > 0 {
				fields[key.String()] = msgs
			}
		case value.Type == gjson.String:
			fields[key.String()] = []string{value.String()}
		}
		return true
	})
	if len(fields) > 0 {
		e.Fields = fields
		return e
	}

	e.Message = genericMessage(status)
	return e
}

func genericMessage(status int) string {
	switch {
	case status == http.StatusNotFound:
		return "ressource introuvable"
	case status == http.StatusUnauthorized:
		return "authentification requise"
	case status == http.StatusForbidden:
		return "accès refusé"
	case status >= 500:
		return "erreur du serveur, réessayez plus tard"
	default:
		return fmt.Sprintf("erreur %d du backend", status)
	}
}
