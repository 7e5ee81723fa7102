package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/smart_pocket/internal/apperrors"
	"github.com/SscSPs/smart_pocket/internal/core/domain"
	portsrepo "github.com/SscSPs/smart_pocket/internal/core/ports/repositories"
)

const batchAcknowledged = "ok"

// DefaultCurrencySymbol prefixes amounts in transaction notes.
const DefaultCurrencySymbol = "₱"

// TransactionDecomposer turns a resolved receipt into ledger writes: a single categorized
// transaction, or a parent with one child per category.
type TransactionDecomposer struct {
	BaseService
	ledger         portsrepo.LedgerWriterRepository
	currencySymbol string
}

func NewTransactionDecomposer(ledger portsrepo.LedgerWriterRepository, currencySymbol string) *TransactionDecomposer {
	if currencySymbol == "" {
		currencySymbol = DefaultCurrencySymbol
	}
	return &TransactionDecomposer{ledger: ledger, currencySymbol: currencySymbol}
}

type categoryGroup struct {
	categoryID string
	items      []domain.ResolvedReceiptItem
	total      domain.MinorUnits
}

// Plan validates r and builds the transactions to write. It performs no I/O.
// Child ParentIDs are left empty until the parent has been created.
func (d *TransactionDecomposer) Plan(r domain.ResolvedReceipt) (*domain.TransactionPlan, error) {
	if r.Account == nil || r.Account.ID == "" {
		return nil, &apperrors.IncompleteReceiptError{Field: "account"}
	}
	if r.Payee == nil || (r.Payee.ID == "" && r.Payee.Name == "") {
		return nil, &apperrors.IncompleteReceiptError{Field: "payee"}
	}
	if len(r.Items) == 0 {
		return nil, &apperrors.IncompleteReceiptError{Field: "items"}
	}
	for i, item := range r.Items {
		if item.Category == nil || item.Category.ID == "" {
			return nil, &apperrors.IncompleteReceiptError{Field: fmt.Sprintf("items[%d].category", i)}
		}
		if item.Quantity < 1 {
			return nil, &apperrors.IncompleteReceiptError{Field: fmt.Sprintf("items[%d].quantity", i)}
		}
	}
	if r.Date.IsZero() {
		return nil, &apperrors.IncompleteReceiptError{Field: "date"}
	}

	groups := groupByCategory(r.Items)
	var total domain.MinorUnits
	for _, g := range groups {
		total += g.total
	}

	base := domain.LedgerTransaction{
		AccountID: r.Account.ID,
		Date:      r.Date.LedgerDate(),
	}
	if r.Payee.ID != "" {
		base.PayeeID = r.Payee.ID
	} else {
		base.PayeeName = r.Payee.Name
	}

	principal := base
	principal.Amount = total
	principal.Notes = d.FormatNotes(r.Items)

	if len(groups) == 1 {
		categoryID := groups[0].categoryID
		principal.CategoryID = &categoryID
		return &domain.TransactionPlan{Principal: principal}, nil
	}

	principal.IsParent = true
	children := make([]domain.LedgerTransaction, len(groups))
	var childSum domain.MinorUnits
	for i, g := range groups {
		categoryID := g.categoryID
		child := base
		child.Amount = g.total
		child.CategoryID = &categoryID
		child.IsChild = true
		child.Notes = d.FormatNotes(g.items)
		children[i] = child
		childSum += g.total
	}
	if childSum != principal.Amount {
		return nil, fmt.Errorf("split amounts diverged: parent %d, children %d", principal.Amount, childSum)
	}

	return &domain.TransactionPlan{Principal: principal, Children: children}, nil
}

// Submit writes plan to the ledger: the principal through an import, then any children as one
// batch. Nothing is rolled back if the batch fails.
func (d *TransactionDecomposer) Submit(ctx context.Context, plan domain.TransactionPlan) (*domain.Submission, error) {
	accountID := plan.Principal.AccountID

	result, err := d.ledger.ImportTransactions(ctx, accountID, []domain.LedgerTransaction{plan.Principal})
	if err != nil {
		d.LogError(ctx, err, "Failed to import principal transaction", slog.String("account_id", accountID))
		return nil, err
	}
	if len(result.Added) != 1 {
		err := &apperrors.ParentTransactionNotFoundError{Added: result.Added}
		d.LogError(ctx, err, "Ledger did not report exactly one new transaction",
			slog.Any("added", result.Added),
			slog.Any("errors", result.Errors))
		return nil, err
	}
	principalID := result.Added[0]

	submission := &domain.Submission{PrincipalID: principalID, Amount: plan.Principal.Amount}
	if !plan.IsSplit() {
		d.LogInfo(ctx, "Added transaction", slog.String("transaction_id", principalID))
		return submission, nil
	}

	children := make([]domain.LedgerTransaction, len(plan.Children))
	for i, child := range plan.Children {
		child.ParentID = principalID
		children[i] = child
	}

	message, err := d.ledger.AddBatchTransactions(ctx, accountID, children)
	if err != nil {
		d.LogError(ctx, err, "Failed to add child transactions; parent left in place",
			slog.String("parent_id", principalID))
		return nil, fmt.Errorf("failed to add child transactions for parent %s: %w", principalID, err)
	}
	if message != batchAcknowledged {
		err := &apperrors.ChildBatchRejectedError{ParentID: principalID, Message: message}
		d.LogError(ctx, err, "Child batch not acknowledged; parent left in place",
			slog.String("parent_id", principalID))
		return nil, err
	}

	submission.ChildCount = len(children)
	d.LogInfo(ctx, "Added split transaction",
		slog.String("transaction_id", principalID),
		slog.Int("children", len(children)))
	return submission, nil
}

// FormatNotes renders items as "{name} (x{qty}) @ {price} → {lineTotal}" joined by "; ".
func (d *TransactionDecomposer) FormatNotes(items []domain.ResolvedReceiptItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		unit := domain.ToMinorUnits(item.Price).Major()
		parts[i] = fmt.Sprintf("%s (x%d) @ %s%s → %s%s",
			item.DisplayName(), item.Quantity,
			d.currencySymbol, unit.StringFixed(2),
			d.currencySymbol, item.LineTotal().Major().StringFixed(2))
	}
	return strings.Join(parts, "; ")
}

// groupByCategory keeps groups in order of first appearance.
func groupByCategory(items []domain.ResolvedReceiptItem) []categoryGroup {
	index := map[string]int{}
	var groups []categoryGroup
	for _, item := range items {
		id := item.Category.ID
		i, ok := index[id]
		if !ok {
			i = len(groups)
			index[id] = i
			groups = append(groups, categoryGroup{categoryID: id})
		}
		groups[i].items = append(groups[i].items, item)
		groups[i].total += item.LineTotal()
	}
	return groups
}
