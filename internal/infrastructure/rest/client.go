// Package rest implementa el acceso al backend REST de maboutik.
//
// Un único Client compartido encapsula el transporte HTTP: base URL, timeout,
// Bearer token (tomado de la Session pasada en cada llamada, nunca de un
// singleton), X-Request-ID y logging. Los repositorios por recurso traducen
// los puertos de domain/repository a peticiones sobre este Client.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/entity"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
	"github.com/maboutik/maboutik-web/pkg/config"
	"github.com/maboutik/maboutik-web/pkg/logger"
)

// Client cliente HTTP compartido hacia el backend. No guarda estado de
// negocio ni credenciales: la Session viaja en cada llamada.
type Client struct {
	base     string
	pageSize int
	http     *http.Client
	log      *logger.Logger
}

// NewClient construye el cliente compartido.
func NewClient(cfg config.APIConfig, log *logger.Logger) *Client {
	return &Client{
		base:     strings.TrimRight(cfg.BaseURL, "/"),
		pageSize: cfg.PageSize,
		http:     &http.Client{Timeout: cfg.Timeout()},
		log:      log,
	}
}

// PageSize tamaño de página implícito de los listados del backend.
func (c *Client) PageSize() int { return c.pageSize }

// Get ejecuta GET path?query y devuelve el cuerpo crudo.
func (c *Client) Get(ctx context.Context, sess domain.Session, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, sess, http.MethodGet, path, query, nil, "")
}

// Delete ejecuta DELETE path. El backend responde 204 sin cuerpo.
func (c *Client) Delete(ctx context.Context, sess domain.Session, path string) error {
	_, err := c.do(ctx, sess, http.MethodDelete, path, nil, nil, "")
	return err
}

// SendJSON envía payload como JSON con el método indicado.
func (c *Client) SendJSON(ctx context.Context, sess domain.Session, method, path string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("rest: serializar payload: %w", err)
	}
	return c.do(ctx, sess, method, path, nil, bytes.NewReader(raw), "application/json")
}

// SendForm envía los campos como multipart/form-data, con la imagen como
// parte binaria si está presente. Es el formato que exige el backend cuando
// el formulario lleva un archivo.
func (c *Client) SendForm(ctx context.Context, sess domain.Session, method, path string, fields map[string]string, image *entity.ImageFile) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("rest: campo multipart %s: %w", k, err)
		}
	}
	if image != nil {
		part, err := w.CreateFormFile("image", image.Name)
		if err != nil {
			return nil, fmt.Errorf("rest: parte imagen: %w", err)
		}
		if _, err := part.Write(image.Data); err != nil {
			return nil, fmt.Errorf("rest: escribir imagen: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("rest: cerrar multipart: %w", err)
	}
	return c.do(ctx, sess, method, path, nil, &buf, w.FormDataContentType())
}

func (c *Client) do(ctx context.Context, sess domain.Session, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("rest: construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if !sess.IsAnonymous() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend inalcanzable")
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrUnavailable, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("llamada al backend")

	if resp.StatusCode >= 400 {
		return nil, parseAPIError(resp.StatusCode, raw)
	}
	return raw, nil
}

// queryParams traduce ListParams a los query params que entiende el backend.
// Solo se usa en vistas server-driven; las client-driven piden la colección
// completa y filtran en memoria.
func queryParams(p repository.ListParams) url.Values {
	q := url.Values{}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	if p.Status != "" && p.Status != "all" {
		q.Set("statut", p.Status)
	}
	if p.DateFrom != nil {
		q.Set("date_debut", p.DateFrom.Format("2006-01-02"))
	}
	if p.DateTo != nil {
		q.Set("date_fin", p.DateTo.Format("2006-01-02"))
	}
	if p.AmountMin != nil {
		q.Set("montant_min", p.AmountMin.String())
	}
	if p.AmountMax != nil {
		q.Set("montant_max", p.AmountMax.String())
	}
	if p.SortKey != "" {
		q.Set("tri", p.SortKey)
		if p.SortDesc {
			q.Set("ordre", repository.SortDesc)
		} else {
			q.Set("ordre", repository.SortAsc)
		}
	}
	if p.Page > 1 {
		q.Set("page", fmt.Sprintf("%d", p.Page))
	}
	return q
}
