package dto

import "github.com/SscSPs/smart_pocket/internal/core/domain"

// ParseRawRequest carries raw receipt text, typically OCR output from the mobile scanner.
type ParseRawRequest struct {
	Raw string `json:"raw" binding:"required"`
}

// ParsedReceiptResponse returns a reconciled receipt for the user to review.
type ParsedReceiptResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message,omitempty"`
	Data    *domain.ResolvedReceipt `json:"data"`
}

// NewParsedReceiptResponse mirrors the success flag from the presence of a receipt.
func NewParsedReceiptResponse(receipt *domain.ResolvedReceipt) ParsedReceiptResponse {
	if receipt == nil {
		return ParsedReceiptResponse{Success: false, Message: "Failed to parse transaction"}
	}
	return ParsedReceiptResponse{Success: true, Message: "Transaction parsed successfully", Data: receipt}
}

// AddReceiptRequest carries a reviewed receipt to be written to the ledger.
type AddReceiptRequest struct {
	Receipt domain.ResolvedReceipt `json:"receipt" binding:"required"`
}

// AddReceiptResponse reports whether the receipt was written.
type AddReceiptResponse struct {
	Success       bool   `json:"success"`
	Data          bool   `json:"data"`
	TransactionID string `json:"transactionId,omitempty"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
}

// OrphanParentsQuery selects the account and day to scan for childless parents.
type OrphanParentsQuery struct {
	AccountID string `form:"accountId" binding:"required"`
	Date      string `form:"date" binding:"required,datetime=2006-01-02"`
}
