package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnavailable  = errors.New("servicio no disponible")
	ErrBadShape     = errors.New("respuesta del backend con forma inesperada")
)

// FieldErrors mapea nombre de campo -> mensajes de validación del backend.
// Es la forma {campo: [mensajes...]} que devuelve la API en errores 400.
type FieldErrors map[string][]string

// First devuelve el primer mensaje del campo, o "" si no hay errores para él.
// Las vistas muestran solo el primer mensaje debajo de cada input.
func (f FieldErrors) First(field string) string {
	msgs := f[field]
	if len(msgs) == 0 {
		return ""
	}
	return msgs[0]
}

// Error implementa error. Orden estable por nombre de campo.
func (f FieldErrors) Error() string {
	if len(f) == 0 {
		return "validación fallida"
	}
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, k := range fields {
		parts = append(parts, k+": "+f.First(k))
	}
	return strings.Join(parts, "; ")
}
