package services

import (
	"context"

	"github.com/SscSPs/smart_pocket/internal/core/domain"
	portsrepo "github.com/SscSPs/smart_pocket/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/smart_pocket/internal/core/ports/services"
)

// metadataService passes ledger entity lists through for client pickers.
type metadataService struct {
	BaseService
	ledger portsrepo.LedgerReaderRepository
}

func NewMetadataService(ledger portsrepo.LedgerReaderRepository) portssvc.MetadataSvcFacade {
	return &metadataService{ledger: ledger}
}

var _ portssvc.MetadataSvcFacade = (*metadataService)(nil)

func (s *metadataService) ListPayees(ctx context.Context) ([]domain.Payee, error) {
	payees, err := s.ledger.ListPayees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payees")
		return nil, err
	}
	return payees, nil
}

func (s *metadataService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.ledger.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

func (s *metadataService) ListGroupedCategories(ctx context.Context) ([]domain.CategoryGroup, error) {
	groups, err := s.ledger.ListCategoryGroups(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list category groups")
		return nil, err
	}
	return groups, nil
}
