package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/SscSPs/smart_pocket/internal/apperrors"
	"github.com/SscSPs/smart_pocket/internal/core/domain"
	portsrepo "github.com/SscSPs/smart_pocket/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/smart_pocket/internal/core/ports/services"
	"github.com/SscSPs/smart_pocket/internal/metrics"
	"github.com/shopspring/decimal"
)

// Archive layout under the data directory.
const (
	rawArchiveDir         = "receipts/raw"
	transactionArchiveDir = "receipts/transactions"
	archiveTimestamp      = "20060102150405"
)

type receiptService struct {
	BaseService
	ledger     portsrepo.LedgerReaderRepository
	archive    portsrepo.ReceiptArchiveRepository
	extractor  portssvc.ReceiptExtractorSvc
	reconciler *EntityReconciler
	decomposer *TransactionDecomposer
	now        func() time.Time
}

// ReceiptServiceOption is a functional option for configuring the receipt service
type ReceiptServiceOption func(*receiptService)

// WithCurrencySymbol sets the symbol used in transaction notes.
func WithCurrencySymbol(symbol string) ReceiptServiceOption {
	return func(s *receiptService) {
		if symbol != "" {
			s.decomposer.currencySymbol = symbol
		}
	}
}

// WithClock replaces the clock used for archive file names.
func WithClock(now func() time.Time) ReceiptServiceOption {
	return func(s *receiptService) {
		s.now = now
	}
}

// NewReceiptService wires the parse and submit pipelines.
func NewReceiptService(
	ledger portsrepo.LedgerRepositoryFacade,
	archive portsrepo.ReceiptArchiveRepository,
	extractor portssvc.ReceiptExtractorSvc,
	options ...ReceiptServiceOption,
) portssvc.ReceiptSvcFacade {
	svc := &receiptService{
		ledger:     ledger,
		archive:    archive,
		extractor:  extractor,
		reconciler: NewEntityReconciler(ledger),
		decomposer: NewTransactionDecomposer(ledger, DefaultCurrencySymbol),
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReceiptSvcFacade = (*receiptService)(nil)

func (s *receiptService) ParseReceipt(ctx context.Context, rawText string) (*domain.ResolvedReceipt, error) {
	rc, err := s.reconciler.Load(ctx)
	if err != nil {
		return nil, err
	}

	schema := BuildReceiptSchema(rc.SchemaEnums())
	content, err := s.extractor.ExtractReceipt(ctx, rawText, schema)
	if err != nil {
		s.LogError(ctx, err, "Receipt extraction failed, returning empty receipt")
		return s.fallback(rawText), nil
	}
	if content == "" {
		s.LogWarn(ctx, "Extractor returned no content, returning empty receipt")
		return s.fallback(rawText), nil
	}

	s.saveArchive(ctx, rawArchiveDir, s.timestamp()+"-raw.json", content)

	unresolved, err := DecodeExtraction(content)
	if err != nil {
		s.LogError(ctx, err, "Extractor output did not match the receipt schema, returning empty receipt")
		return s.fallback(rawText), nil
	}

	resolved := rc.Reconcile(unresolved, rawText)
	s.recordUnresolved(ctx, resolved)
	metrics.ReceiptsParsed.WithLabelValues("reconciled").Inc()
	s.LogInfo(ctx, "Receipt parsed",
		slog.Int("items", len(resolved.Items)),
		slog.Bool("payee_resolved", resolved.Payee != nil),
		slog.Bool("account_resolved", resolved.Account != nil))
	return &resolved, nil
}

func (s *receiptService) AddReceipt(ctx context.Context, receipt domain.ResolvedReceipt) (*domain.Submission, error) {
	plan, err := s.decomposer.Plan(receipt)
	if err != nil {
		metrics.ReceiptsSubmitted.WithLabelValues("unknown", "rejected").Inc()
		s.LogError(ctx, err, "Receipt cannot be submitted")
		return nil, err
	}

	shape := "single"
	if plan.IsSplit() {
		shape = "split"
	}

	submission, err := s.decomposer.Submit(ctx, *plan)
	if err != nil {
		metrics.ReceiptsSubmitted.WithLabelValues(shape, "failed").Inc()
		return nil, err
	}
	metrics.ReceiptsSubmitted.WithLabelValues(shape, "success").Inc()

	if content, err := json.MarshalIndent(receipt, "", "  "); err != nil {
		s.LogError(ctx, err, "Failed to encode receipt for archive", slog.String("transaction_id", submission.PrincipalID))
	} else {
		s.saveArchive(ctx, transactionArchiveDir, fmt.Sprintf("%s-%s.json", s.timestamp(), submission.PrincipalID), string(content))
	}

	return submission, nil
}

func (s *receiptService) FindOrphanParents(ctx context.Context, accountID, date string) ([]domain.LedgerTransaction, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account id is required", apperrors.ErrValidation)
	}
	if _, err := time.Parse(domain.LedgerDateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	txns, err := s.ledger.ListTransactions(ctx, accountID, date, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("account_id", accountID), slog.String("date", date))
		return nil, err
	}

	withChildren := map[string]bool{}
	for _, t := range txns {
		if t.IsChild && t.ParentID != "" {
			withChildren[t.ParentID] = true
		}
	}

	orphans := []domain.LedgerTransaction{}
	for _, t := range txns {
		if t.IsParent && len(t.Subtransactions) == 0 && !withChildren[t.ID] {
			orphans = append(orphans, t)
		}
	}
	if len(orphans) > 0 {
		s.LogWarn(ctx, "Found parent transactions without children",
			slog.String("account_id", accountID),
			slog.String("date", date),
			slog.Int("count", len(orphans)))
	}
	return orphans, nil
}

func (s *receiptService) fallback(rawText string) *domain.ResolvedReceipt {
	metrics.ReceiptsParsed.WithLabelValues("fallback").Inc()
	return &domain.ResolvedReceipt{RawText: rawText, Items: []domain.ResolvedReceiptItem{}}
}

func (s *receiptService) timestamp() string {
	return s.now().Format(archiveTimestamp)
}

// saveArchive never fails the caller; the ledger is the system of record.
func (s *receiptService) saveArchive(ctx context.Context, subDir, fileName, content string) {
	if s.archive == nil {
		return
	}
	if err := s.archive.SaveJSON(ctx, subDir, fileName, content); err != nil {
		s.LogError(ctx, err, "Failed to archive receipt", slog.String("file", subDir+"/"+fileName))
	}
}

func (s *receiptService) recordUnresolved(ctx context.Context, r domain.ResolvedReceipt) {
	if r.MerchantKey != "" && r.Payee == nil {
		metrics.UnresolvedKeys.WithLabelValues("merchant").Inc()
		s.LogDebug(ctx, "Merchant key unresolved", slog.String("key", string(r.MerchantKey)))
	}
	if r.PaymentMethodKey != "" && r.Account == nil {
		metrics.UnresolvedKeys.WithLabelValues("payment_method").Inc()
		s.LogDebug(ctx, "Payment method key unresolved", slog.String("key", string(r.PaymentMethodKey)))
	}
	for _, item := range r.Items {
		if item.CategoryKey != "" && item.Category == nil {
			metrics.UnresolvedKeys.WithLabelValues("category").Inc()
			s.LogDebug(ctx, "Category key unresolved", slog.String("key", string(item.CategoryKey)))
		}
	}
}

type extractedItem struct {
	RawName  string              `json:"rawName"`
	Name     string              `json:"name"`
	Price    decimal.NullDecimal `json:"price"`
	Quantity *float64            `json:"quantity"`
	Category string              `json:"category"`
}

type extractedReceipt struct {
	Date          string          `json:"date"`
	Merchant      string          `json:"merchant"`
	PaymentMethod string          `json:"paymentMethod"`
	Items         []extractedItem `json:"items"`
}

// DecodeExtraction reads extractor output into an UnresolvedReceipt. Missing or non-positive
// quantities become 1, fractional ones are rounded, and an unreadable date is left unknown.
// Keys are canonicalized; without an enum the model answers with display names.
func DecodeExtraction(content string) (domain.UnresolvedReceipt, error) {
	var raw extractedReceipt
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return domain.UnresolvedReceipt{}, fmt.Errorf("failed to decode extracted receipt: %w", err)
	}

	out := domain.UnresolvedReceipt{
		MerchantKey:      domain.Canonicalize(raw.Merchant),
		PaymentMethodKey: domain.Canonicalize(raw.PaymentMethod),
		Items:            make([]domain.UnresolvedReceiptItem, len(raw.Items)),
	}
	if raw.Date != "" {
		if d, err := domain.ParseLocalDateTime(raw.Date); err == nil {
			out.Date = d
		}
	}

	for i, item := range raw.Items {
		quantity := 1
		if item.Quantity != nil {
			if q := int(math.Round(*item.Quantity)); q >= 1 {
				quantity = q
			}
		}
		price := decimal.Zero
		if item.Price.Valid {
			price = item.Price.Decimal
		}
		out.Items[i] = domain.UnresolvedReceiptItem{
			RawName:     item.RawName,
			Name:        item.Name,
			Price:       price,
			Quantity:    quantity,
			CategoryKey: domain.Canonicalize(item.Category),
		}
	}
	return out, nil
}
