package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrStoreUnavailable = errors.New("almacén de datos no disponible")
	ErrCorruptData      = errors.New("dato almacenado corrupto")
	ErrPartialWrite     = errors.New("escritura multi-paso revertida")
	ErrCategoryCycle    = errors.New("ciclo en el grafo de categorías")
	ErrCategoryDepth    = errors.New("profundidad máxima del grafo de categorías excedida")
)

// Kind clasifica un error en un código estable para los colaboradores (HTTP, logs).
type Kind string

const (
	KindNone             Kind = ""
	KindNotFound         Kind = "NOT_FOUND"
	KindInvalidInput     Kind = "VALIDATION"
	KindDuplicate        Kind = "DUPLICATE"
	KindStoreUnavailable Kind = "STORE_UNAVAILABLE"
	KindCorruptData      Kind = "CORRUPT_DATA"
	KindPartialWrite     Kind = "PARTIAL_WRITE"
	KindCategoryCycle    Kind = "CATEGORY_CYCLE"
	KindCategoryDepth    Kind = "CATEGORY_DEPTH"
	KindInternal         Kind = "INTERNAL"
)

// El orden importa: un fallo de validación dentro de una escritura revertida
// se informa como validación, no como escritura parcial.
var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrInvalidInput, KindInvalidInput},
	{ErrDuplicate, KindDuplicate},
	{ErrNotFound, KindNotFound},
	{ErrCategoryCycle, KindCategoryCycle},
	{ErrCategoryDepth, KindCategoryDepth},
	{ErrCorruptData, KindCorruptData},
	{ErrPartialWrite, KindPartialWrite},
	{ErrStoreUnavailable, KindStoreUnavailable},
}

// KindOf devuelve el tipo de falla de err. nil -> KindNone; errores sin clasificar -> KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
