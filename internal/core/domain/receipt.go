package domain

import "github.com/shopspring/decimal"

// UnresolvedReceiptItem is a line item as extracted from receipt text. CategoryKey has not
// yet been matched against the ledger.
type UnresolvedReceiptItem struct {
	RawName     string          `json:"rawName"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CategoryKey CanonicalKey    `json:"category"`
}

// UnresolvedReceipt is the structured extraction result. It carries canonical keys, not IDs.
type UnresolvedReceipt struct {
	Date             LocalDateTime           `json:"date"`
	MerchantKey      CanonicalKey            `json:"merchant"`
	PaymentMethodKey CanonicalKey            `json:"paymentMethod"`
	Items            []UnresolvedReceiptItem `json:"items"`
}

// ResolvedReceiptItem is an item after reconciliation. Category is nil when the key matched nothing.
type ResolvedReceiptItem struct {
	RawName     string          `json:"rawName"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CategoryKey CanonicalKey    `json:"category"`
	Category    *Category       `json:"actualCategory"`
}

// DisplayName prefers the cleaned name, then the raw one.
func (i ResolvedReceiptItem) DisplayName() string {
	switch {
	case i.Name != "":
		return i.Name
	case i.RawName != "":
		return i.RawName
	default:
		return "Unnamed Item"
	}
}

// LineTotal is price * quantity in minor units.
func (i ResolvedReceiptItem) LineTotal() MinorUnits {
	return LineTotalMinor(i.Price, i.Quantity)
}

// ResolvedReceipt is a receipt whose keys have been matched against ledger entities.
// Unmatched keys leave the corresponding entity nil for a human to fill in.
type ResolvedReceipt struct {
	Date             LocalDateTime         `json:"date"`
	MerchantKey      CanonicalKey          `json:"merchant"`
	PaymentMethodKey CanonicalKey          `json:"paymentMethod"`
	Items            []ResolvedReceiptItem `json:"items"`
	RawText          string                `json:"rawReceiptText"`
	Payee            *Payee                `json:"actualPayee"`
	Account          *Account              `json:"actualAccount"`
	Remarks          string                `json:"remarks"`
}

// ItemTotals returns the line total of every item, in item order.
func (r ResolvedReceipt) ItemTotals() []MinorUnits {
	totals := make([]MinorUnits, len(r.Items))
	for i, item := range r.Items {
		totals[i] = item.LineTotal()
	}
	return totals
}
