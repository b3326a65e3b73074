package entity

import "time"

// Category representa una categoría del catálogo.
// Categories contiene las subcategorías ya resueltas recursivamente.
type Category struct {
	InstanceID  int64
	Name        string
	Description string
	CreatedAt   time.Time
	Attributes  []Attribute
	Categories  []*Category
}
