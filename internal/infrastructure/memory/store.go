// Package memory implementa los puertos de persistencia del catálogo en memoria del proceso.
// Se usa con STORE_DRIVER=memory para ejecución local y en tests de aplicación/HTTP.
package memory

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

type linkRow struct {
	owner entity.OwnerType
	link  entity.CategoryLink
}

// dataset filas crudas; el orden de los slices es el orden de inserción.
type dataset struct {
	products   []entity.Product
	categories []entity.Category
	attributes []entity.Attribute
	links      []linkRow
}

func (d *dataset) clone() *dataset {
	return &dataset{
		products:   append([]entity.Product(nil), d.products...),
		categories: append([]entity.Category(nil), d.categories...),
		attributes: append([]entity.Attribute(nil), d.attributes...),
		links:      append([]linkRow(nil), d.links...),
	}
}

// backend abstrae el acceso al dataset: el del Store (con locks) o el de una transacción.
type backend interface {
	read(fn func(d *dataset))
	write(fn func(d *dataset) error) error
}

// Store base de datos en memoria. Seguro para uso concurrente.
type Store struct {
	writeMu sync.Mutex // serializa escrituras y transacciones
	mu      sync.RWMutex
	data    *dataset
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{data: &dataset{}}
}

func (s *Store) read(fn func(d *dataset)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

func (s *Store) write(fn func(d *dataset) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// Repositories devuelve los repositorios atados al almacén.
func (s *Store) Repositories() repository.Repositories {
	return repositoriesFor(s)
}

// Run ejecuta fn sobre una copia del dataset y la publica solo si fn no falla (Commit/Rollback).
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	tx := &txBackend{data: s.data.clone()}
	s.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(repositoriesFor(tx)); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = tx.data
	s.mu.Unlock()
	return nil
}

// txBackend dataset privado de una transacción; lo usa una sola goroutine.
type txBackend struct {
	data *dataset
}

func (t *txBackend) read(fn func(d *dataset))              { fn(t.data) }
func (t *txBackend) write(fn func(d *dataset) error) error { return fn(t.data) }

func repositoriesFor(b backend) repository.Repositories {
	return repository.Repositories{
		Products:   &ProductRepo{b: b},
		Categories: &CategoryRepo{b: b},
		Attributes: &AttributeRepo{b: b},
		Links:      &CategoryLinkRepo{b: b},
		Ledger:     &LedgerRepo{attrs: &AttributeRepo{b: b}},
	}
}

// containsFold replica UPPER(s) LIKE UPPER('%term%') de SQL: mayúscula runa a runa,
// sin expansiones (ß sigue siendo ß, como en PostgreSQL).
func containsFold(s, term string) bool {
	return strings.Contains(toUpper(s), toUpper(term))
}

func toUpper(s string) string {
	return strings.Map(unicode.ToUpper, s)
}
