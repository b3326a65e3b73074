// Package migrations contiene el esquema SQL del catálogo. Se aplica fuera del arranque de la API.
package migrations

import _ "embed"

// Catalog esquema completo (idempotente).
//
//go:embed 0001_catalog.sql
var Catalog string
