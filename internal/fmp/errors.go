package fmp

import (
	"encoding/json"
	"fmt"
)

// ProviderError is a non-2xx response from the upstream provider. Message
// carries the provider's own error text when the body contains the structured
// {"Error Message": ...} form FMP uses, so callers can surface it verbatim.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider request failed (status %d): %s", e.Status, e.Message)
}

func newProviderError(status int, body []byte) *ProviderError {
	var structured struct {
		ErrorMessage string `json:"Error Message"`
	}
	if err := json.Unmarshal(body, &structured); err == nil && structured.ErrorMessage != "" {
		return &ProviderError{Status: status, Message: structured.ErrorMessage}
	}
	return &ProviderError{Status: status, Message: fmt.Sprintf("unexpected status code %d", status)}
}
