package rest

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/maboutik/maboutik-web/internal/domain"
	"github.com/maboutik/maboutik-web/internal/domain/repository"
)

// DecodeList normaliza las dos formas de listado del backend: un array JSON
// desnudo, o un sobre {results, count} de paginación. Cualquier otra forma
// falla rápido con domain.ErrBadShape en lugar de llegar a las vistas.
func DecodeList[T any](body []byte) (repository.Page[T], error) {
	var page repository.Page[T]

	root := gjson.ParseBytes(body)
	switch {
	case root.IsArray():
		if err := json.Unmarshal(body, &page.Items); err != nil {
			return page, fmt.Errorf("%w: %v", domain.ErrBadShape, err)
		}
		page.Count = len(page.Items)
		return page, nil

	case root.IsObject() && root.Get("results").IsArray():
		results := root.Get("results")
		if err := json.Unmarshal([]byte(results.Raw), &page.Items); err != nil {
			return page, fmt.Errorf("%w: %v", domain.ErrBadShape, err)
		}
		if count := root.Get("count"); count.Exists() {
			page.Count = int(count.Int())
		} else {
			page.Count = len(page.Items)
		}
		return page, nil

	default:
		return page, fmt.Errorf("%w: ni array ni sobre results/count", domain.ErrBadShape)
	}
}

// DecodeOne deserializa un recurso individual. El cuerpo debe ser un objeto.
func DecodeOne[T any](body []byte) (*T, error) {
	if !gjson.ParseBytes(body).IsObject() {
		return nil, fmt.Errorf("%w: se esperaba un objeto JSON", domain.ErrBadShape)
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadShape, err)
	}
	return &out, nil
}
