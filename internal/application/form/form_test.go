package form_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maboutik/maboutik-web/internal/application/form"
	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/infrastructure/rest"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type sent struct {
	id     string
	values map[string]string
}

// newForm formulario con "nom" requerido cuyo submitter registra cada envío y
// responde según respondErr.
func newForm(calls *[]sent, respondErr error) *form.Controller[string] {
	return form.NewController([]string{"nom"}, func(ctx context.Context, sess domain.Session, draft form.Draft) (string, error) {
		*calls = append(*calls, sent{id: draft.ID, values: draft.Values})
		if respondErr != nil {
			return "", respondErr
		}
		return "ok-" + draft.Values["nom"], nil
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos requeridos: sin red mientras falte alguno
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_ChampRequisVide_AucunAppelReseau(t *testing.T) {
	var calls []sent
	f := newForm(&calls, nil)
	f.Open("", map[string]string{"nom": "", "description": "savon artisanal"})

	assert.False(t, f.CanSubmit(), "nom vacío debe deshabilitar el envío")

	_, err := f.Submit(context.Background(), domain.Anonymous())
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, calls, "ningún envío debe salir con un requerido vacío")

	// Rellenar el campo habilita el envío.
	f.SetField("nom", "Savon de karité")
	assert.True(t, f.CanSubmit())

	out, err := f.Submit(context.Background(), domain.Anonymous())
	require.NoError(t, err)
	assert.Equal(t, "ok-Savon de karité", out)
	require.Len(t, calls, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create vs update según identificador
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_IDVideCreation_IDPresentModification(t *testing.T) {
	var calls []sent
	f := newForm(&calls, nil)

	f.Open("", map[string]string{"nom": "a"})
	assert.True(t, f.IsNew())
	_, err := f.Submit(context.Background(), domain.Anonymous())
	require.NoError(t, err)

	f.Open("p42", map[string]string{"nom": "b"})
	assert.False(t, f.IsNew())
	_, err = f.Submit(context.Background(), domain.Anonymous())
	require.NoError(t, err)

	require.Len(t, calls, 2)
	assert.Equal(t, "", calls[0].id, "sin ID el borrador es un alta")
	assert.Equal(t, "p42", calls[1].id, "con ID el borrador es una modificación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores de validación del backend
// ──────────────────────────────────────────────────────────────────────────────

// {nom: ["This field is required"]} debe quedar bajo el campo nom, con banner
// resumen y el borrador intacto para reintentar.
func TestSubmit_ErreurParChamp_BrouillonConserve(t *testing.T) {
	var calls []sent
	apiErr := &rest.APIError{
		Status: http.StatusBadRequest,
		Fields: domain.FieldErrors{"nom": {"This field is required", "Too short"}},
	}
	f := newForm(&calls, apiErr)
	f.Open("", map[string]string{"nom": "x", "description": "détail"})

	_, err := f.Submit(context.Background(), domain.Anonymous())
	require.Error(t, err)

	assert.Equal(t, "This field is required", f.FieldError("nom"),
		"se conserva el primer mensaje del campo")
	assert.Equal(t, "veuillez corriger les champs en erreur", f.Banner())
	assert.True(t, f.IsOpen(), "el formulario sigue abierto tras el fallo")
	assert.Equal(t, "x", f.Field("nom"), "el borrador no se pierde")
	assert.Equal(t, "détail", f.Field("description"))
}

// Corregir el campo retira su error y el reenvío parte del borrador conservado.
func TestSubmit_CorrectionRetireErreurDuChamp(t *testing.T) {
	var calls []sent
	apiErr := &rest.APIError{
		Status: http.StatusBadRequest,
		Fields: domain.FieldErrors{"nom": {"This field is required"}},
	}
	f := newForm(&calls, apiErr)
	f.Open("", map[string]string{"nom": "x"})

	_, _ = f.Submit(context.Background(), domain.Anonymous())
	require.NotEmpty(t, f.FieldError("nom"))

	f.SetField("nom", "corrigé")
	assert.Empty(t, f.FieldError("nom"), "editar el campo limpia su error")
}

// Un fallo sin detalle de campos produce solo el banner genérico.
func TestSubmit_EchecGenerique_BanniereSeule(t *testing.T) {
	var calls []sent
	f := newForm(&calls, errors.New("timeout"))
	f.Open("", map[string]string{"nom": "y"})

	_, err := f.Submit(context.Background(), domain.Anonymous())
	require.Error(t, err)
	assert.Equal(t, form.GenericError, f.Banner())
	assert.Empty(t, f.FieldError("nom"))
	assert.True(t, f.IsOpen())
}

// ──────────────────────────────────────────────────────────────────────────────
// Éxito y cancelación
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_SuccesFermeEtNettoie(t *testing.T) {
	var calls []sent
	f := newForm(&calls, nil)
	f.Open("p1", map[string]string{"nom": "z"})

	out, err := f.Submit(context.Background(), domain.Anonymous())
	require.NoError(t, err)
	assert.Equal(t, "ok-z", out)
	assert.False(t, f.IsOpen(), "el éxito cierra el formulario")
	assert.Empty(t, f.Banner())
}

func TestCancel_FermeSansEnvoyer(t *testing.T) {
	var calls []sent
	f := newForm(&calls, nil)
	f.Open("", map[string]string{"nom": "brouillon"})

	f.Cancel()
	assert.False(t, f.IsOpen())
	assert.Empty(t, calls, "cancelar nunca llama a la red")
}
