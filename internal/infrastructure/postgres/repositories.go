package postgres

import "github.com/jhoicas/Catalogo-api/internal/domain/repository"

// NewRepositories ata todos los repositorios a q (pool o tx).
func NewRepositories(q Querier) repository.Repositories {
	return repository.Repositories{
		Products:   NewProductRepository(q),
		Categories: NewCategoryRepository(q),
		Attributes: NewAttributeRepository(q),
		Links:      NewCategoryLinkRepository(q),
		Ledger:     NewLedgerRepository(q),
	}
}
