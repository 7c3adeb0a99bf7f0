// Package fmp is the client for the Financial Modeling Prep REST API. Tools
// depend on the Service interface only; the concrete Client is constructed
// once at server startup with explicit configuration.
package fmp

//go:generate mockgen -destination=mocks/mock_fmp.go -package=fmp_mocks github.com/quantfold/fmp-mcp/internal/fmp Service

import "context"

// Service fetches raw JSON from the upstream provider. The returned value is
// the decoded JSON document as-is (object or array); shape normalization is
// the caller's concern. Failures are never retried here; the upstream error
// message is preserved in ProviderError for verbatim surfacing.
type Service interface {
	Fetch(ctx context.Context, path string, query map[string]string) (any, error)
}
