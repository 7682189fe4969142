// Package form implementa el patrón genérico de formulario detalle/edición:
// un borrador local de una entidad, validación de campos requeridos como
// conveniencia de UX (la validación autoritativa es la del backend) y mapeo
// de los errores de validación del servidor campo a campo.
package form

import (
	"context"
	"errors"

	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/infrastructure/rest"
)

// GenericError mensaje mostrado cuando el backend falla sin detalle de campos.
const GenericError = "une erreur est survenue, veuillez réessayer"

// Submitter envía el borrador al backend y devuelve la representación creada
// o actualizada. El formulario decide create o update según ID: vacío dispara
// el alta, no vacío la modificación.
type Submitter[R any] func(ctx context.Context, sess domain.Session, draft Draft) (R, error)

// Draft borrador que recibe el Submitter.
type Draft struct {
	ID     string // vacío = creación
	Values map[string]string
	Image  *entity.ImageFile
}

// Controller estado de un formulario abierto, parametrizado por el tipo de
// resultado del submit. Se destruye al cerrar: el éxito o el cancel lo liman;
// un fallo conserva el borrador intacto para reintentar.
type Controller[R any] struct {
	id       string
	values   map[string]string
	image    *entity.ImageFile
	required []string

	fieldErrors map[string]string // primer mensaje por campo
	banner      string

	open   bool
	submit Submitter[R]
}

// NewController construye el formulario con sus campos requeridos.
func NewController[R any](required []string, submit Submitter[R]) *Controller[R] {
	return &Controller[R]{
		required: required,
		submit:   submit,
	}
}

// Open abre el formulario. seed nil arranca un alta con valores por defecto;
// con seed se siembra el borrador con los valores actuales de la entidad
// (incluidos los campos denormalizados de solo lectura, como el nombre de la
// categoría).
func (c *Controller[R]) Open(id string, seed map[string]string) {
	c.id = id
	c.values = make(map[string]string, len(seed))
	for k, v := range seed {
		c.values[k] = v
	}
	c.image = nil
	c.fieldErrors = nil
	c.banner = ""
	c.open = true
}

// IsOpen indica si hay un borrador activo.
func (c *Controller[R]) IsOpen() bool { return c.open }

// IsNew indica si el borrador es un alta (sin identificador).
func (c *Controller[R]) IsNew() bool { return c.id == "" }

// SetField fija el valor de un campo del borrador y retira su error previo.
func (c *Controller[R]) SetField(name, value string) {
	if !c.open {
		return
	}
	c.values[name] = value
	delete(c.fieldErrors, name)
}

// Field devuelve el valor actual de un campo.
func (c *Controller[R]) Field(name string) string { return c.values[name] }

// SetImage adjunta la imagen del borrador (se enviará como multipart).
func (c *Controller[R]) SetImage(img *entity.ImageFile) {
	if c.open {
		c.image = img
	}
}

// CanSubmit es false mientras algún campo requerido esté vacío. La vista
// deshabilita el botón de envío con este valor; Submit lo vuelve a comprobar
// y nunca llama a la red si falla.
func (c *Controller[R]) CanSubmit() bool {
	if !c.open {
		return false
	}
	for _, name := range c.required {
		if c.values[name] == "" {
			return false
		}
	}
	return true
}

// Submit envía el borrador. En éxito limpia y cierra el formulario y devuelve
// la representación del backend. En fallo el borrador se conserva tal cual
// para que el usuario reintente sin perder datos: los errores de validación
// del backend quedan campo a campo (primer mensaje de cada uno) más un banner
// resumen; el resto de fallos solo banner.
func (c *Controller[R]) Submit(ctx context.Context, sess domain.Session) (R, error) {
	var zero R
	if !c.CanSubmit() {
		return zero, domain.ErrInvalidInput
	}

	draft := Draft{ID: c.id, Values: c.copyValues(), Image: c.image}
	out, err := c.submit(ctx, sess, draft)
	if err == nil {
		c.reset()
		return out, nil
	}

	var apiErr *rest.APIError
	if errors.As(err, &apiErr) && apiErr.HasFields() {
		c.fieldErrors = make(map[string]string, len(apiErr.Fields))
		for field := range apiErr.Fields {
			c.fieldErrors[field] = apiErr.Fields.First(field)
		}
		c.banner = "veuillez corriger les champs en erreur"
		return zero, err
	}

	c.banner = GenericError
	return zero, err
}

// Cancel descarta el borrador y cierra el formulario.
func (c *Controller[R]) Cancel() { c.reset() }

// FieldError primer mensaje de validación del campo, o "" si no hay.
func (c *Controller[R]) FieldError(name string) string { return c.fieldErrors[name] }

// Banner mensaje resumen del último fallo, o "" si no hay.
func (c *Controller[R]) Banner() string { return c.banner }

func (c *Controller[R]) copyValues() map[string]string {
	out := make(map[string]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

func (c *Controller[R]) reset() {
	c.id = ""
	c.values = nil
	c.image = nil
	c.fieldErrors = nil
	c.banner = ""
	c.open = false
}
