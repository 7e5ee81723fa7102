package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/smart_pocket/internal/core/domain"
	portsrepo "github.com/SscSPs/smart_pocket/internal/core/ports/repositories"
	"golang.org/x/sync/errgroup"
)

// KeyMap indexes ledger entities by the canonical form of their display name.
type KeyMap[E domain.LedgerEntity] map[domain.CanonicalKey]E

// KeyCollision records two entities whose names canonicalize to the same key.
// The later entity in ledger order replaces the earlier one.
type KeyCollision struct {
	Key          domain.CanonicalKey
	ReplacedID   string
	ReplacedName string
	WinnerID     string
	WinnerName   string
}

type transferTarget interface {
	IsTransfer() bool
}

// BuildKeyMap canonicalizes each entity's name into a lookup map. With excludeTransferAccounts
// set, entities that are transfer targets are dropped first. Names that canonicalize to an
// empty key are skipped since nothing can resolve to them.
func BuildKeyMap[E domain.LedgerEntity](entities []E, excludeTransferAccounts bool) (KeyMap[E], []KeyCollision) {
	m := make(KeyMap[E], len(entities))
	var collisions []KeyCollision
	for _, e := range entities {
		if excludeTransferAccounts {
			if t, ok := any(e).(transferTarget); ok && t.IsTransfer() {
				continue
			}
		}
		key := domain.Canonicalize(e.DisplayName())
		if key == "" {
			continue
		}
		if prev, exists := m[key]; exists {
			collisions = append(collisions, KeyCollision{
				Key:          key,
				ReplacedID:   prev.EntityID(),
				ReplacedName: prev.DisplayName(),
				WinnerID:     e.EntityID(),
				WinnerName:   e.DisplayName(),
			})
		}
		m[key] = e
	}
	return m, collisions
}

// Resolve looks key up. A miss or an empty key yields nil, never an error.
func (m KeyMap[E]) Resolve(key domain.CanonicalKey) *E {
	if key == "" {
		return nil
	}
	e, ok := m[domain.Canonicalize(string(key))]
	if !ok {
		return nil
	}
	return &e
}

// Keys returns the map's keys in sorted order.
func (m KeyMap[E]) Keys() []domain.CanonicalKey {
	keys := make([]domain.CanonicalKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ReconciliationContext holds the key maps for one pipeline invocation.
type ReconciliationContext struct {
	Payees     KeyMap[domain.Payee]
	Accounts   KeyMap[domain.Account]
	Categories KeyMap[domain.Category]
	// Collisions is keyed by entity kind: "payee", "account" or "category".
	Collisions map[string][]KeyCollision
}

// NewReconciliationContext builds the key maps from raw entity lists. Transfer payees are excluded.
func NewReconciliationContext(payees []domain.Payee, accounts []domain.Account, categories []domain.Category) *ReconciliationContext {
	rc := &ReconciliationContext{Collisions: map[string][]KeyCollision{}}
	var c []KeyCollision

	rc.Payees, c = BuildKeyMap(payees, true)
	if len(c) > 0 {
		rc.Collisions["payee"] = c
	}
	rc.Accounts, c = BuildKeyMap(accounts, false)
	if len(c) > 0 {
		rc.Collisions["account"] = c
	}
	rc.Categories, c = BuildKeyMap(categories, false)
	if len(c) > 0 {
		rc.Collisions["category"] = c
	}
	return rc
}

// SchemaEnums lists the keys the extraction schema may choose from.
func (rc *ReconciliationContext) SchemaEnums() domain.SchemaEnums {
	return domain.SchemaEnums{
		Merchants:      rc.Payees.Keys(),
		PaymentMethods: rc.Accounts.Keys(),
		Categories:     rc.Categories.Keys(),
	}
}

// Reconcile resolves every key in u. Unmatched keys leave the entity nil.
func (rc *ReconciliationContext) Reconcile(u domain.UnresolvedReceipt, rawText string) domain.ResolvedReceipt {
	items := make([]domain.ResolvedReceiptItem, len(u.Items))
	for i, item := range u.Items {
		items[i] = domain.ResolvedReceiptItem{
			RawName:     item.RawName,
			Name:        item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
			CategoryKey: item.CategoryKey,
			Category:    rc.Categories.Resolve(item.CategoryKey),
		}
	}
	return domain.ResolvedReceipt{
		Date:             u.Date,
		MerchantKey:      u.MerchantKey,
		PaymentMethodKey: u.PaymentMethodKey,
		Items:            items,
		RawText:          rawText,
		Payee:            rc.Payees.Resolve(u.MerchantKey),
		Account:          rc.Accounts.Resolve(u.PaymentMethodKey),
	}
}

// EntityReconciler loads fresh ledger entities for each invocation.
type EntityReconciler struct {
	BaseService
	ledger portsrepo.LedgerReaderRepository
}

func NewEntityReconciler(ledger portsrepo.LedgerReaderRepository) *EntityReconciler {
	return &EntityReconciler{ledger: ledger}
}

// Load fetches payees, accounts and categories concurrently and builds their key maps.
func (r *EntityReconciler) Load(ctx context.Context) (*ReconciliationContext, error) {
	var (
		payees     []domain.Payee
		accounts   []domain.Account
		categories []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payees, err = r.ledger.ListPayees(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		accounts, err = r.ledger.ListAccounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = r.ledger.ListCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		r.LogError(ctx, err, "Failed to load ledger entities")
		return nil, fmt.Errorf("failed to load ledger entities: %w", err)
	}

	rc := NewReconciliationContext(payees, accounts, categories)
	for kind, collisions := range rc.Collisions {
		for _, c := range collisions {
			r.LogWarn(ctx, "Ledger entities share a canonical key; keeping the later one",
				slog.String("kind", kind),
				slog.String("key", string(c.Key)),
				slog.String("replaced_id", c.ReplacedID),
				slog.String("replaced_name", c.ReplacedName),
				slog.String("winner_id", c.WinnerID),
				slog.String("winner_name", c.WinnerName),
			)
		}
	}
	r.LogDebug(ctx, "Loaded ledger entities",
		slog.Int("payees", len(rc.Payees)),
		slog.Int("accounts", len(rc.Accounts)),
		slog.Int("categories", len(rc.Categories)),
	)
	return rc, nil
}
