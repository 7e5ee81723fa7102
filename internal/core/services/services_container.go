package services

import (
	portsrepo "github.com/SscSPs/smart_pocket/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/smart_pocket/internal/core/ports/services"
	"github.com/SscSPs/smart_pocket/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, extractor portssvc.ReceiptExtractorSvc) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Receipt: NewReceiptService(
			repos.LedgerRepo,
			repos.ArchiveRepo,
			extractor,
			WithCurrencySymbol(cfg.CurrencySymbol),
		),
		Metadata: NewMetadataService(repos.LedgerRepo),
	}
}
