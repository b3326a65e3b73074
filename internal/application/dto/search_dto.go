package dto

// SearchResponse concatenación (sin deduplicar) de las cuatro fuentes de búsqueda.
// Ante una falla de lectura las listas viajan vacías y Error describe el tipo de falla.
type SearchResponse struct {
	Products   []ProductResponse  `json:"products"`
	Categories []CategoryResponse `json:"categories"`
	Error      *ErrorResponse     `json:"error,omitempty"`
}
