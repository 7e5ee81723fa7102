package openai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/smart_pocket/internal/adapters/httpapi"
	"github.com/SscSPs/smart_pocket/internal/adapters/openai"
	"github.com/SscSPs/smart_pocket/internal/apperrors"
	"github.com/SscSPs/smart_pocket/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() domain.ExtractionSchema {
	return domain.ExtractionSchema{
		Name:   "ParsedTransaction",
		Strict: true,
		Schema: map[string]any{"type": "object", "additionalProperties": false},
	}
}

func TestNewExtractor_RequiresAPIKey(t *testing.T) {
	_, err := openai.NewExtractor(openai.Config{})
	assert.Error(t, err)
}

func TestExtractReceipt_SendsSchemaAndReturnsContent(t *testing.T) {
	var got map[string]any
	var auth, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got)
		_, _ = io.WriteString(w, `{"id":"c1","choices":[{"message":{"content":"{\"merchant\":\"jollibee\"}"},"finish_reason":"stop"}]}`)
	}))
	defer srv.Close()

	ex, err := openai.NewExtractor(openai.Config{APIKey: "sk-test", BaseURL: srv.URL + "/v1/", RequestsPerMinute: 600})
	require.NoError(t, err)

	out, err := ex.ExtractReceipt(context.Background(), "JOLLIBEE\nC1 89.00", testSchema())
	require.NoError(t, err)
	assert.Equal(t, `{"merchant":"jollibee"}`, out)

	assert.Equal(t, "Bearer sk-test", auth)
	assert.Equal(t, "/v1/chat/completions", path)
	assert.Equal(t, openai.DefaultModel, got["model"])

	messages := got["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "Parse the following receipt into JSON.", messages[0].(map[string]any)["content"])
	assert.Equal(t, "JOLLIBEE\nC1 89.00", messages[1].(map[string]any)["content"])

	format := got["response_format"].(map[string]any)
	assert.Equal(t, "json_schema", format["type"])
	jsonSchema := format["json_schema"].(map[string]any)
	assert.Equal(t, "ParsedTransaction", jsonSchema["name"])
	assert.Equal(t, true, jsonSchema["strict"])
}

func TestExtractReceipt_NoChoicesOrRefusal(t *testing.T) {
	bodies := []string{
		`{"choices":[]}`,
		`{"choices":[{"message":{"content":null,"refusal":"I can't help with that"}}]}`,
	}
	for _, body := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		}))
		ex, err := openai.NewExtractor(openai.Config{APIKey: "k", BaseURL: srv.URL, RequestsPerMinute: 600})
		require.NoError(t, err)

		out, err := ex.ExtractReceipt(context.Background(), "text", testSchema())
		require.NoError(t, err)
		assert.Empty(t, out)
		srv.Close()
	}
}

func TestExtractReceipt_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`)
	}))
	defer srv.Close()

	ex, err := openai.NewExtractor(openai.Config{APIKey: "bad", BaseURL: srv.URL, RequestsPerMinute: 600, HTTP: httpapi.Config{MaxRetries: 2}})
	require.NoError(t, err)

	_, err = ex.ExtractReceipt(context.Background(), "text", testSchema())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamClient)
	var upstream *apperrors.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "invalid_api_key", upstream.Code)
}

func TestExtractReceipt_RetriesOn503(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"id":"c2","choices":[{"message":{"content":"{\"merchant\":\"sm_supermarket\"}"}}]}`)
	}))
	defer srv.Close()

	ex, err := openai.NewExtractor(
		openai.Config{APIKey: "sk-test", BaseURL: srv.URL, RequestsPerMinute: 600, HTTP: httpapi.Config{MaxRetries: 3}},
		httpapi.WithSleeper(func(_ context.Context, _ time.Duration) error { return nil }),
	)
	require.NoError(t, err)

	out, err := ex.ExtractReceipt(context.Background(), "SM SUPERMARKET", testSchema())
	require.NoError(t, err)
	assert.Equal(t, `{"merchant":"sm_supermarket"}`, out)
	assert.EqualValues(t, 2, calls.Load())
}
