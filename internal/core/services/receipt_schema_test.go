package services_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/smart_pocket/internal/core/domain"
	"github.com/SscSPs/smart_pocket/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func properties(t *testing.T, schema map[string]any) map[string]any {
	t.Helper()
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	return props
}

func TestBuildReceiptSchema_PopulatesEnums(t *testing.T) {
	schema := services.BuildReceiptSchema(domain.SchemaEnums{
		Merchants:      []domain.CanonicalKey{"jollibee", "savemore"},
		PaymentMethods: []domain.CanonicalKey{"cash"},
		Categories:     []domain.CanonicalKey{"food", "general"},
	})

	assert.Equal(t, "ParsedTransaction", schema.Name)
	assert.True(t, schema.Strict)
	assert.Equal(t, false, schema.Schema["additionalProperties"])
	assert.ElementsMatch(t, []string{"date", "merchant", "paymentMethod", "items"}, schema.Schema["required"])

	props := properties(t, schema.Schema)
	assert.Equal(t, []string{"jollibee", "savemore"}, props["merchant"].(map[string]any)["enum"])
	assert.Equal(t, []string{"cash"}, props["paymentMethod"].(map[string]any)["enum"])

	item := props["items"].(map[string]any)["items"].(map[string]any)
	assert.Equal(t, false, item["additionalProperties"])
	assert.ElementsMatch(t, []string{"rawName", "name", "price", "quantity", "category"}, item["required"])
	assert.Equal(t, []string{"food", "general"}, properties(t, item)["category"].(map[string]any)["enum"])
}

func TestBuildReceiptSchema_OmitsEmptyEnums(t *testing.T) {
	schema := services.BuildReceiptSchema(domain.SchemaEnums{})

	props := properties(t, schema.Schema)
	assert.NotContains(t, props["merchant"], "enum")
	assert.NotContains(t, props["paymentMethod"], "enum")

	_, err := json.Marshal(schema.Schema)
	assert.NoError(t, err)
}

func TestBuildReceiptSchema_InvocationsAreIndependent(t *testing.T) {
	first := services.BuildReceiptSchema(domain.SchemaEnums{Merchants: []domain.CanonicalKey{"a"}})
	second := services.BuildReceiptSchema(domain.SchemaEnums{Merchants: []domain.CanonicalKey{"b"}})

	assert.Equal(t, []string{"a"}, properties(t, first.Schema)["merchant"].(map[string]any)["enum"])
	assert.Equal(t, []string{"b"}, properties(t, second.Schema)["merchant"].(map[string]any)["enum"])
}
