package handlers

import (
	"fmt"

	"github.com/SscSPs/smart_pocket/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs receipt validation rules on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	v.RegisterStructValidation(resolvedReceiptStructLevel, domain.ResolvedReceipt{})
	return nil
}

// resolvedReceiptStructLevel rejects keys a client could not have received from the parser.
// Empty keys are allowed; the decomposer reports missing entities itself.
func resolvedReceiptStructLevel(sl validator.StructLevel) {
	r := sl.Current().Interface().(domain.ResolvedReceipt)

	if !canonicalOrEmpty(r.MerchantKey) {
		sl.ReportError(r.MerchantKey, "MerchantKey", "merchant", "canonicalkey", "")
	}
	if !canonicalOrEmpty(r.PaymentMethodKey) {
		sl.ReportError(r.PaymentMethodKey, "PaymentMethodKey", "paymentMethod", "canonicalkey", "")
	}
	for i, item := range r.Items {
		if !canonicalOrEmpty(item.CategoryKey) {
			name := fmt.Sprintf("items[%d].category", i)
			sl.ReportError(item.CategoryKey, name, name, "canonicalkey", "")
		}
	}
}

func canonicalOrEmpty(k domain.CanonicalKey) bool {
	return k == "" || domain.IsCanonical(string(k))
}
