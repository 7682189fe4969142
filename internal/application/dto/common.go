package dto

// ErrorResponse cuerpo de error HTTP del gateway.
// Fields solo se rellena en errores de validación del backend
// ({campo: [mensajes...]}); las vistas muestran el primer mensaje por campo.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// ListMeta metadatos de página en las respuestas de listados.
type ListMeta struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Count    int `json:"count"`
}
