package entity

import "time"

// Product representa un producto del catálogo.
// ProductImageURIs y ValidSKUs son cadenas delimitadas opacas; el catálogo no las interpreta.
// Categories es una lista plana de vínculos (no se resuelve el subárbol de cada categoría).
type Product struct {
	InstanceID       int64 // asignado externamente
	Name             string
	Description      string
	ProductImageURIs string
	ValidSKUs        string
	CreatedAt        time.Time
	Attributes       []Attribute
	Categories       []CategoryLink
}
