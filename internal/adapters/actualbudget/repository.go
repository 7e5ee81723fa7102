// Package actualbudget implements the ledger repository against actual-http-api.
package actualbudget

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SscSPs/smart_pocket/internal/adapters/httpapi"
	"github.com/SscSPs/smart_pocket/internal/core/domain"
	portsrepo "github.com/SscSPs/smart_pocket/internal/core/ports/repositories"
)

// APIKeyHeader authenticates every call to the ledger bridge.
const APIKeyHeader = "x-api-key"

type listResponse[T any] struct {
	Data []T `json:"data"`
}

type importResponse struct {
	Data domain.ImportResult `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type writeMany struct {
	LearnCategories bool                       `json:"learnCategories"`
	RunTransfers    bool                       `json:"runTransfers"`
	Transactions    []domain.LedgerTransaction `json:"transactions"`
}

// LedgerRepository reads and writes one budget through the HTTP bridge.
type LedgerRepository struct {
	client   *httpapi.Client
	budgetID string
}

// NewLedgerRepository creates a repository for budgetID. The client should already carry the
// APIKeyHeader; see NewClient.
func NewLedgerRepository(client *httpapi.Client, budgetID string) *LedgerRepository {
	return &LedgerRepository{client: client, budgetID: budgetID}
}

// NewClient builds the HTTP client configured for the ledger bridge.
func NewClient(baseURL, apiKey string, cfg httpapi.Config, opts ...httpapi.Option) *httpapi.Client {
	cfg.ServiceName = "ledger"
	cfg.BaseURL = baseURL
	headers := map[string]string{APIKeyHeader: apiKey}
	for k, v := range cfg.Headers {
		headers[k] = v
	}
	cfg.Headers = headers
	return httpapi.NewClient(cfg, opts...)
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

func (r *LedgerRepository) budgetPath(suffix string) string {
	return fmt.Sprintf("/v1/budgets/%s/%s", url.PathEscape(r.budgetID), suffix)
}

func (r *LedgerRepository) transactionsPath(accountID, suffix string) string {
	p := r.budgetPath("accounts/" + url.PathEscape(accountID) + "/transactions")
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}

func listEntities[T any](ctx context.Context, r *LedgerRepository, kind string) ([]T, error) {
	resp, err := httpapi.Do[listResponse[T]](ctx, r.client, httpapi.Request{
		Method: http.MethodGet,
		Path:   r.budgetPath(kind),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	if resp.Data == nil {
		return []T{}, nil
	}
	return resp.Data, nil
}

func (r *LedgerRepository) ListPayees(ctx context.Context) ([]domain.Payee, error) {
	return listEntities[domain.Payee](ctx, r, "payees")
}

func (r *LedgerRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return listEntities[domain.Account](ctx, r, "accounts")
}

func (r *LedgerRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return listEntities[domain.Category](ctx, r, "categories")
}

func (r *LedgerRepository) ListCategoryGroups(ctx context.Context) ([]domain.CategoryGroup, error) {
	return listEntities[domain.CategoryGroup](ctx, r, "categorygroups")
}

func (r *LedgerRepository) ListTransactions(ctx context.Context, accountID, sinceDate, untilDate string) ([]domain.LedgerTransaction, error) {
	query := map[string]string{"since_date": sinceDate}
	if untilDate != "" {
		query["until_date"] = untilDate
	}
	resp, err := httpapi.Do[listResponse[domain.LedgerTransaction]](ctx, r.client, httpapi.Request{
		Method: http.MethodGet,
		Path:   r.transactionsPath(accountID, ""),
		Query:  query,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}
	return resp.Data, nil
}

func (r *LedgerRepository) ImportTransactions(ctx context.Context, accountID string, txns []domain.LedgerTransaction) (*domain.ImportResult, error) {
	resp, err := httpapi.Do[importResponse](ctx, r.client, httpapi.Request{
		Method: http.MethodPost,
		Path:   r.transactionsPath(accountID, "import"),
		Body:   writeMany{LearnCategories: false, RunTransfers: true, Transactions: txns},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import transactions: %w", err)
	}
	return &resp.Data, nil
}

func (r *LedgerRepository) AddBatchTransactions(ctx context.Context, accountID string, txns []domain.LedgerTransaction) (string, error) {
	resp, err := httpapi.Do[messageResponse](ctx, r.client, httpapi.Request{
		Method: http.MethodPost,
		Path:   r.transactionsPath(accountID, "batch"),
		Body:   writeMany{LearnCategories: false, RunTransfers: true, Transactions: txns},
	})
	if err != nil {
		return "", fmt.Errorf("failed to add transaction batch: %w", err)
	}
	return resp.Message, nil
}
