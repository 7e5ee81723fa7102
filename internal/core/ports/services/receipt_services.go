package services

import (
	"context"

	"github.com/SscSPs/smart_pocket/internal/core/domain"
)

// ReceiptParserSvc turns raw receipt text into a reconciled receipt.
type ReceiptParserSvc interface {
	// ParseReceipt extracts and reconciles a receipt. Extraction failures yield an empty
	// receipt rather than an error; ledger read failures are returned.
	ParseReceipt(ctx context.Context, rawText string) (*domain.ResolvedReceipt, error)
}

// ReceiptSubmitterSvc writes a reconciled receipt to the ledger.
type ReceiptSubmitterSvc interface {
	// AddReceipt decomposes the receipt into ledger transactions and submits them.
	// A submission is at-most-once: a failure after the parent write leaves the parent in place.
	AddReceipt(ctx context.Context, receipt domain.ResolvedReceipt) (*domain.Submission, error)
}

// ReceiptRecoverySvc helps clean up partial writes.
type ReceiptRecoverySvc interface {
	// FindOrphanParents lists parent transactions on the given date that have no children.
	FindOrphanParents(ctx context.Context, accountID, date string) ([]domain.LedgerTransaction, error)
}

// ReceiptSvcFacade combines all receipt-related service interfaces.
type ReceiptSvcFacade interface {
	ReceiptParserSvc
	ReceiptSubmitterSvc
	ReceiptRecoverySvc
}

// ReceiptExtractorSvc is the LLM completion collaborator. It returns the JSON document the
// model produced for the schema, or an empty string when the model returned nothing.
type ReceiptExtractorSvc interface {
	ExtractReceipt(ctx context.Context, rawText string, schema domain.ExtractionSchema) (string, error)
}
