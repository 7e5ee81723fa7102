package actualbudget_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/smart_pocket/internal/adapters/actualbudget"
	"github.com/SscSPs/smart_pocket/internal/adapters/httpapi"
	"github.com/SscSPs/smart_pocket/internal/apperrors"
	"github.com/SscSPs/smart_pocket/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	apiKey string
	body   map[string]any
}

func newRepo(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*actualbudget.LedgerRepository, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, apiKey: r.Header.Get(actualbudget.APIKeyHeader)}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.body)
		}
		calls = append(calls, rec)
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := actualbudget.NewClient(srv.URL+"/", "secret-key", httpapi.Config{})
	return actualbudget.NewLedgerRepository(client, "budget-1"), &calls
}

func TestListPayees(t *testing.T) {
	repo, calls := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":[{"id":"p1","name":"Jollibee"},{"id":"p2","name":"Transfer: Savings","transfer_acct":"a9"}]}`)
	})

	payees, err := repo.ListPayees(context.Background())
	require.NoError(t, err)
	require.Len(t, payees, 2)
	assert.Equal(t, "Jollibee", payees[0].Name)
	assert.False(t, payees[0].IsTransfer())
	assert.True(t, payees[1].IsTransfer())

	require.Len(t, *calls, 1)
	assert.Equal(t, "/v1/budgets/budget-1/payees", (*calls)[0].path)
	assert.Equal(t, "secret-key", (*calls)[0].apiKey)
}

func TestListCategoryGroups(t *testing.T) {
	repo, calls := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":[{"id":"g1","name":"Daily","is_income":false,"hidden":false,"categories":[{"id":"c1","name":"Food","is_income":false,"hidden":false,"group_id":"g1"}]}]}`)
	})

	groups, err := repo.ListCategoryGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Categories, 1)
	assert.Equal(t, "g1", groups[0].Categories[0].GroupID)
	assert.Equal(t, "/v1/budgets/budget-1/categorygroups", (*calls)[0].path)
}

func TestListAccounts_EmptyData(t *testing.T) {
	repo, _ := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	accounts, err := repo.ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestListTransactions_SendsDateRange(t *testing.T) {
	repo, calls := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":[{"id":"t1","account":"a1","amount":1550,"date":"2024-03-01","is_parent":true,"category":null}]}`)
	})

	txns, err := repo.ListTransactions(context.Background(), "a1", "2024-03-01", "2024-03-01")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].IsParent)
	assert.Equal(t, domain.MinorUnits(1550), txns[0].Amount)

	assert.Equal(t, "/v1/budgets/budget-1/accounts/a1/transactions", (*calls)[0].path)
	assert.Equal(t, "since_date=2024-03-01&until_date=2024-03-01", (*calls)[0].query)
}

func TestImportTransactions(t *testing.T) {
	repo, calls := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"added":["new-id"],"updated":[],"errors":[]}}`)
	})

	result, err := repo.ImportTransactions(context.Background(), "a1", []domain.LedgerTransaction{
		{AccountID: "a1", Amount: 1550, PayeeID: "p1", Date: "2024-03-01", IsParent: true},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"new-id"}, result.Added)

	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/v1/budgets/budget-1/accounts/a1/transactions/import", call.path)
	assert.Equal(t, false, call.body["learnCategories"])
	assert.Equal(t, true, call.body["runTransfers"])
	txns, ok := call.body["transactions"].([]any)
	require.True(t, ok)
	require.Len(t, txns, 1)
	first := txns[0].(map[string]any)
	assert.Equal(t, float64(1550), first["amount"])
	assert.Equal(t, true, first["is_parent"])
	assert.Nil(t, first["category"])
	assert.Contains(t, first, "category")
}

func TestAddBatchTransactions(t *testing.T) {
	repo, calls := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	})

	msg, err := repo.AddBatchTransactions(context.Background(), "a1", []domain.LedgerTransaction{{AccountID: "a1", Amount: 100}})
	require.NoError(t, err)
	assert.Equal(t, "ok", msg)
	assert.Equal(t, "/v1/budgets/budget-1/accounts/a1/transactions/batch", (*calls)[0].path)
}

func TestWriteFailureIsClassified(t *testing.T) {
	repo, calls := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := repo.AddBatchTransactions(context.Background(), "a1", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamServer)
	assert.Len(t, *calls, 1)
}
