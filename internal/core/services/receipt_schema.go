package services

import "github.com/SscSPs/smart_pocket/internal/core/domain"

const (
	receiptSchemaName        = "ParsedTransaction"
	receiptSchemaDescription = "A parsed transaction containing date, merchant, payment method, and items."
)

// BuildReceiptSchema builds the strict extraction schema for one invocation. Empty enum
// lists are left out because strict decoding rejects an empty enum.
func BuildReceiptSchema(enums domain.SchemaEnums) domain.ExtractionSchema {
	item := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"rawName": map[string]any{
				"type":        "string",
				"description": "Raw name of the item as found in the receipt.",
			},
			"name": map[string]any{
				"type":        "string",
				"description": "Cleaned name of the item. Empty if not applicable.",
			},
			"price":    map[string]any{"type": "number", "description": "Unit price of the item."},
			"quantity": map[string]any{"type": "integer", "description": "Quantity of the item. 1 if not specified."},
			"category": enumProperty(enums.Categories, "Category of the item, if applicable."),
		},
		"required":             []string{"rawName", "name", "price", "quantity", "category"},
		"additionalProperties": false,
	}

	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"date": map[string]any{
				"type":        "string",
				"description": "Transaction date in format YYYY-MM-ddTHH:mm:ss. Empty if not applicable.",
			},
			"merchant": enumProperty(enums.Merchants,
				"Closest match for the merchant name. Otherwise, the name of the merchant as found in the receipt."),
			"paymentMethod": enumProperty(enums.PaymentMethods,
				"Payment method used for the transaction. Might be a card or wallet name, or a POS terminal name; check other clues on the receipt."),
			"items": map[string]any{
				"type":  "array",
				"items": item,
			},
		},
		"required":             []string{"date", "merchant", "paymentMethod", "items"},
		"additionalProperties": false,
	}

	return domain.ExtractionSchema{
		Name:        receiptSchemaName,
		Description: receiptSchemaDescription,
		Strict:      true,
		Schema:      schema,
	}
}

func enumProperty(keys []domain.CanonicalKey, description string) map[string]any {
	prop := map[string]any{"type": "string", "description": description}
	if len(keys) > 0 {
		values := make([]string, len(keys))
		for i, k := range keys {
			values[i] = string(k)
		}
		prop["enum"] = values
	}
	return prop
}
