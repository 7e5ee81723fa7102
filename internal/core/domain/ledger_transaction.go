package domain

// LedgerTransaction is a transaction as the ledger accepts and returns it.
// A split is one parent (IsParent, no category) plus children (IsChild, ParentID set).
type LedgerTransaction struct {
	ID              string              `json:"id,omitempty"`
	AccountID       string              `json:"account"`
	Amount          MinorUnits          `json:"amount"`
	PayeeID         string              `json:"payee,omitempty"`
	PayeeName       string              `json:"payee_name,omitempty"`
	Date            string              `json:"date"`
	Cleared         bool                `json:"cleared"`
	CategoryID      *string             `json:"category"`
	IsParent        bool                `json:"is_parent"`
	IsChild         bool                `json:"is_child"`
	ParentID        string              `json:"parent_id,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	Subtransactions []LedgerTransaction `json:"subtransactions,omitempty"`
}

// ImportResult is the ledger's report of an import call.
type ImportResult struct {
	Added   []string `json:"added"`
	Updated []string `json:"updated"`
	Errors  []string `json:"errors"`
}

// TransactionPlan is the set of ledger writes derived from one receipt.
// Children is empty when the receipt spans a single category.
type TransactionPlan struct {
	Principal LedgerTransaction
	Children  []LedgerTransaction
}

// IsSplit reports whether the plan is a parent with children.
func (p TransactionPlan) IsSplit() bool {
	return len(p.Children) > 0
}

// Submission is the outcome of writing a TransactionPlan.
type Submission struct {
	PrincipalID string
	ChildCount  int
	Amount      MinorUnits
}
