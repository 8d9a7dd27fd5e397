package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Mensaje string `json:"mensaje"`
}

// MessageResponse respuesta con solo un mensaje.
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}

// CategoriasResponse categorías distintas de registros activos.
type CategoriasResponse struct {
	Total      int      `json:"total"`
	Categorias []string `json:"categorias"`
}
