package domain

// LedgerEntity is a named entity owned by the ledger: a payee, an account or a category.
type LedgerEntity interface {
	EntityID() string
	DisplayName() string
}

// Payee is a ledger payee. A non-empty TransferAccount marks an inter-account transfer target.
type Payee struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	TransferAccount *string `json:"transfer_acct,omitempty"`
}

func (p Payee) EntityID() string    { return p.ID }
func (p Payee) DisplayName() string { return p.Name }

// IsTransfer reports whether the payee represents a transfer to another account.
func (p Payee) IsTransfer() bool {
	return p.TransferAccount != nil && *p.TransferAccount != ""
}

// Account is a ledger account; receipts use it as the payment method.
type Account struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OffBudget bool   `json:"offbudget"`
	Closed    bool   `json:"closed"`
}

func (a Account) EntityID() string    { return a.ID }
func (a Account) DisplayName() string { return a.Name }

// Category is a ledger budget category.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsIncome bool   `json:"is_income"`
	Hidden   bool   `json:"hidden"`
	GroupID  string `json:"group_id"`
}

func (c Category) EntityID() string    { return c.ID }
func (c Category) DisplayName() string { return c.Name }

// CategoryGroup groups categories for client-side pickers.
type CategoryGroup struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	IsIncome   bool       `json:"is_income"`
	Hidden     bool       `json:"hidden"`
	Categories []Category `json:"categories"`
}
