package services

import (
	"context"

	"github.com/SscSPs/smart_pocket/internal/core/domain"
)

// MetadataSvcFacade exposes ledger entities for client-side pickers.
type MetadataSvcFacade interface {
	ListPayees(ctx context.Context) ([]domain.Payee, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListGroupedCategories(ctx context.Context) ([]domain.CategoryGroup, error)
}
