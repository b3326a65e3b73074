package dto

import "time"

// CreateCategoryRequest entrada para agregar una categoría con atributos y subcategorías existentes.
type CreateCategoryRequest struct {
	InstanceID       int64          `json:"instanceID" validate:"gt=0"`
	Name             string         `json:"name" validate:"required,min=1,max=200"`
	Description      string         `json:"description"`
	CreatedTimeStamp *time.Time     `json:"createdTimeStamp,omitempty"`
	Attributes       []AttributeDTO `json:"attributes" validate:"dive"`
	Categories       []int64        `json:"categories" validate:"dive,gt=0"`
}

// LinkCategoryRequest vincula una subcategoría existente a una categoría padre.
type LinkCategoryRequest struct {
	CategoryInstanceID int64 `json:"categoryInstanceId" validate:"gt=0"`
}

// CategoryResponse categoría con su subárbol resuelto recursivamente.
type CategoryResponse struct {
	InstanceID       int64              `json:"instanceID"`
	Name             string             `json:"name"`
	Description      string             `json:"description"`
	CreatedTimeStamp time.Time          `json:"createdTimeStamp"`
	Categories       []CategoryResponse `json:"categories"`
	Attributes       []AttributeDTO     `json:"attributes"`
}
