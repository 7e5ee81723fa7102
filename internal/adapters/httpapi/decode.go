package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/smart_pocket/internal/apperrors"
)

// ErrorEnvelope is the error body shape shared by the ledger bridge and the LLM service.
// Error is either a plain string or an object with message/code.
type ErrorEnvelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Data    *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"data"`
}

func (e ErrorEnvelope) details() (code, message string) {
	if e.Data != nil {
		code, message = e.Data.Code, e.Data.Message
	}
	if len(e.Error) > 0 {
		var s string
		var obj struct {
			Message string `json:"message"`
			Code    any    `json:"code"`
			Type    string `json:"type"`
		}
		switch {
		case json.Unmarshal(e.Error, &s) == nil:
			if message == "" {
				message = s
			}
		case json.Unmarshal(e.Error, &obj) == nil:
			if message == "" {
				message = obj.Message
			}
			if code == "" && obj.Code != nil {
				code = fmt.Sprint(obj.Code)
			}
			if code == "" {
				code = obj.Type
			}
		}
	}
	if message == "" {
		message = e.Message
	}
	return code, message
}

// Do sends req and decodes the response into T.
func Do[T any](ctx context.Context, c *Client, req Request) (*T, error) {
	resp, err := c.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	return DecodeResponse[T](resp)
}

// DecodeResponse interprets a response body in order: as T, as an ErrorEnvelope, then by status.
// A 2xx body is decoded leniently. Any other status only counts as T when the body matches T
// exactly, so error bodies are never mistaken for empty successes.
func DecodeResponse[T any](resp *Response) (*T, error) {
	var out T
	success := resp.StatusCode >= 200 && resp.StatusCode <= 299

	decodeErr := decodeInto(resp.Body, &out, !success)
	if decodeErr == nil {
		return &out, nil
	}

	var envelope ErrorEnvelope
	if err := json.Unmarshal(resp.Body, &envelope); err == nil {
		if code, message := envelope.details(); message != "" || code != "" {
			return nil, &apperrors.UpstreamError{StatusCode: resp.StatusCode, Code: code, Message: message}
		}
	}

	if success {
		return nil, fmt.Errorf("error decoding response: %w; original response: %s", decodeErr, truncate(resp.Body))
	}
	return nil, &apperrors.UpstreamError{StatusCode: resp.StatusCode, Message: statusMessage(resp.StatusCode, decodeErr)}
}

func decodeInto(body []byte, out any, strict bool) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return errors.New("empty response body")
	}
	if !strict {
		return json.Unmarshal(trimmed, out)
	}
	if bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("{}")) {
		return errors.New("no content")
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after JSON value")
	}
	return nil
}

func statusMessage(status int, decodeErr error) string {
	switch {
	case status >= 500 && status <= 599:
		return fmt.Sprintf("Server error: %d %s", status, http.StatusText(status))
	case status >= 400 && status <= 499:
		return fmt.Sprintf("Client error: %d %s", status, http.StatusText(status))
	default:
		return decodeErr.Error()
	}
}
