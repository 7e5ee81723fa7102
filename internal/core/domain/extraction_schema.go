package domain

// ExtractionSchema is a JSON-schema response format handed to the LLM for constrained decoding.
type ExtractionSchema struct {
	Name        string
	Description string
	Strict      bool
	Schema      map[string]any
}

// SchemaEnums are the canonical key lists a schema is built from. They are passed per
// invocation so no request can observe another request's lists.
type SchemaEnums struct {
	Merchants      []CanonicalKey
	PaymentMethods []CanonicalKey
	Categories     []CanonicalKey
}
