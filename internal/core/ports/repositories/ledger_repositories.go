package repositories

import (
	"context"

	"github.com/SscSPs/smart_pocket/internal/core/domain"
)

// LedgerReaderRepository defines read operations against the ledger.
// Every call reads fresh data; nothing is cached across requests.
type LedgerReaderRepository interface {
	ListPayees(ctx context.Context) ([]domain.Payee, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListCategoryGroups(ctx context.Context) ([]domain.CategoryGroup, error)

	// ListTransactions returns the account's transactions dated within [sinceDate, untilDate].
	// An empty untilDate leaves the range open.
	ListTransactions(ctx context.Context, accountID, sinceDate, untilDate string) ([]domain.LedgerTransaction, error)
}

// LedgerWriterRepository defines write operations against the ledger. Writes are never
// retried by the repository.
type LedgerWriterRepository interface {
	// ImportTransactions creates transactions and reports the IDs that were added.
	ImportTransactions(ctx context.Context, accountID string, txns []domain.LedgerTransaction) (*domain.ImportResult, error)

	// AddBatchTransactions creates transactions in one call and returns the acknowledgement message.
	AddBatchTransactions(ctx context.Context, accountID string, txns []domain.LedgerTransaction) (string, error)
}

// LedgerRepositoryFacade combines all ledger operations.
type LedgerRepositoryFacade interface {
	LedgerReaderRepository
	LedgerWriterRepository
}
