package services_test

import (
	"context"

	"github.com/SscSPs/smart_pocket/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListPayees(ctx context.Context) ([]domain.Payee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payee), args.Error(1)
}

func (m *MockLedgerRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockLedgerRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockLedgerRepository) ListCategoryGroups(ctx context.Context) ([]domain.CategoryGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryGroup), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactions(ctx context.Context, accountID, sinceDate, untilDate string) ([]domain.LedgerTransaction, error) {
	args := m.Called(ctx, accountID, sinceDate, untilDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerTransaction), args.Error(1)
}

func (m *MockLedgerRepository) ImportTransactions(ctx context.Context, accountID string, txns []domain.LedgerTransaction) (*domain.ImportResult, error) {
	args := m.Called(ctx, accountID, txns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportResult), args.Error(1)
}

func (m *MockLedgerRepository) AddBatchTransactions(ctx context.Context, accountID string, txns []domain.LedgerTransaction) (string, error) {
	args := m.Called(ctx, accountID, txns)
	return args.String(0), args.Error(1)
}

// MockArchive is a mock type for the ReceiptArchiveRepository interface
type MockArchive struct {
	mock.Mock
}

func (m *MockArchive) SaveJSON(ctx context.Context, subDir, fileName, content string) error {
	args := m.Called(ctx, subDir, fileName, content)
	return args.Error(0)
}

// MockExtractor is a mock type for the ReceiptExtractorSvc interface
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) ExtractReceipt(ctx context.Context, rawText string, schema domain.ExtractionSchema) (string, error) {
	args := m.Called(ctx, rawText, schema)
	return args.String(0), args.Error(1)
}

func strPtr(s string) *string { return &s }

func mustDecimal(s string) decimal.Decimal { return decimal.RequireFromString(s) }
