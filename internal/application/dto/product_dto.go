package dto

import "time"

// AttributeDTO par clave/valor de un producto o categoría.
type AttributeDTO struct {
	InstanceID int64  `json:"instanceId"`
	Key        string `json:"key" validate:"required,max=100"`
	Value      string `json:"value"`
}

// CategoryLinkDTO vínculo dueño -> categoría.
type CategoryLinkDTO struct {
	InstanceID         int64 `json:"instanceId"`
	CategoryInstanceID int64 `json:"categoryInstanceId" validate:"gt=0"`
}

// CreateProductRequest entrada para agregar un producto con sus atributos y categorías.
// InstanceID de los vínculos se ignora: siempre se usa el del producto.
type CreateProductRequest struct {
	InstanceID       int64             `json:"instanceId" validate:"gt=0"`
	Name             string            `json:"name" validate:"required,min=1,max=200"`
	Description      string            `json:"description"`
	ProductImageURIs string            `json:"productImageUris"`
	ValidSKUs        string            `json:"validSkus"`
	CreatedTimestamp *time.Time        `json:"createdTimestamp,omitempty"`
	Attributes       []AttributeDTO    `json:"attributes" validate:"dive"`
	Categories       []CategoryLinkDTO `json:"categories" validate:"dive"`
}

// ProductResponse salida de un producto hidratado (categorías planas, sin subárbol).
type ProductResponse struct {
	InstanceID       int64             `json:"instanceId"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	ProductImageURIs string            `json:"productImageUris"`
	ValidSKUs        string            `json:"validSkus"`
	CreatedTimestamp time.Time         `json:"createdTimestamp"`
	Categories       []CategoryLinkDTO `json:"categories"`
	Attributes       []AttributeDTO    `json:"attributes"`
}

// ProductListResponse listado completo de productos (sin paginación).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Error *ErrorResponse    `json:"error,omitempty"`
}
