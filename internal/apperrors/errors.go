package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrIncompleteReceipt indicates that a receipt is missing an account, payee, category or date
// and cannot be turned into ledger transactions.
var ErrIncompleteReceipt = errors.New("incomplete receipt")

// ErrParentTransactionNotFound indicates that the ledger did not report exactly one new
// transaction after the principal transaction was submitted.
var ErrParentTransactionNotFound = errors.New("parent transaction not found")

// ErrChildBatchRejected indicates that the ledger did not acknowledge a child transaction batch.
var ErrChildBatchRejected = errors.New("child transaction batch rejected")

// Upstream HTTP failures, classified by status range.
var (
	ErrUpstreamServer = errors.New("upstream server error")
	ErrUpstreamClient = errors.New("upstream client error")
	ErrUpstream       = errors.New("upstream error")
)

// IncompleteReceiptError names the first required field that could not be resolved.
type IncompleteReceiptError struct {
	Field string
}

func (e *IncompleteReceiptError) Error() string {
	return fmt.Sprintf("incomplete receipt: %s is required", e.Field)
}

func (e *IncompleteReceiptError) Unwrap() error { return ErrIncompleteReceipt }

// ParentTransactionNotFoundError carries the IDs the ledger reported as added.
type ParentTransactionNotFoundError struct {
	Added []string
}

func (e *ParentTransactionNotFoundError) Error() string {
	return fmt.Sprintf("expected 1 transaction to be added, but got %d", len(e.Added))
}

func (e *ParentTransactionNotFoundError) Unwrap() error { return ErrParentTransactionNotFound }

// ChildBatchRejectedError is returned when the child batch was not acknowledged.
// ParentID is the already-created parent that now needs manual cleanup.
type ChildBatchRejectedError struct {
	ParentID string
	Message  string
}

func (e *ChildBatchRejectedError) Error() string {
	return fmt.Sprintf("failed to add child transactions for parent %s: expected 'ok' message, but got '%s'", e.ParentID, e.Message)
}

func (e *ChildBatchRejectedError) Unwrap() error { return ErrChildBatchRejected }

// UpstreamError is an HTTP failure from the ledger or LLM service.
type UpstreamError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("upstream error (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("upstream error (status %d): %s", e.StatusCode, e.Message)
}

// Unwrap classifies the error by status range.
func (e *UpstreamError) Unwrap() error {
	switch {
	case e.StatusCode >= 500 && e.StatusCode <= 599:
		return ErrUpstreamServer
	case e.StatusCode >= 400 && e.StatusCode <= 499:
		return ErrUpstreamClient
	default:
		return ErrUpstream
	}
}
