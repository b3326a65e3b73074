package entity

import (
	"fmt"
	"strings"
)

// OwnerType identifica a qué entidad pertenece un atributo o vínculo de categoría.
type OwnerType string

const (
	OwnerProduct  OwnerType = "PRODUCT"
	OwnerCategory OwnerType = "CATEGORY"
)

// Valid indica si el tipo pertenece a la enumeración cerrada.
func (o OwnerType) Valid() bool {
	return o == OwnerProduct || o == OwnerCategory
}

// ParseOwnerType convierte un texto (sin distinguir mayúsculas) en OwnerType.
func ParseOwnerType(s string) (OwnerType, error) {
	o := OwnerType(strings.ToUpper(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", fmt.Errorf("tipo de dueño desconocido %q", s)
	}
	return o, nil
}

// Claves de atributo reservadas.
const (
	KeyInventory = "INV" // delta de inventario (ledger)
)

// IsReservedKey indica si la clave tiene semántica propia en el catálogo.
func IsReservedKey(key string) bool {
	return key == KeyInventory
}

// Attribute par clave/valor de solo-agregado asociado a un producto o categoría.
// Key no es única por dueño: varias filas INV forman el ledger de inventario.
type Attribute struct {
	InstanceID int64
	OwnerType  OwnerType
	Key        string
	Value      string
}

// CategoryLink vincula un dueño (producto o categoría padre) con una categoría.
type CategoryLink struct {
	InstanceID         int64 // dueño
	CategoryInstanceID int64 // categoría vinculada
}
