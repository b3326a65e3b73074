package dto

// ErrorResponse cuerpo de error HTTP. Code es el tipo de falla del dominio (NOT_FOUND, STORE_UNAVAILABLE, ...).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteResponse resultado de una escritura: success=false en cualquier falla.
type WriteResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
