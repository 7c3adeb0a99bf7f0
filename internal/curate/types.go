// Package curate is the response-curation core: it reduces unbounded upstream
// JSON (price series, news, calendar events, metric dictionaries) into bounded,
// information-dense payloads for a context-limited LLM consumer. All functions
// are pure and operate on decoded JSON values; nothing here performs I/O.
package curate

import (
	"encoding/json"
	"fmt"
)

// Record is a single raw upstream record: field name to decoded JSON value.
// Records are never mutated; projection always allocates a new Record.
type Record map[string]any

// Ordering is the declared ordering hint of a Collection. Upstream order is
// not trusted: only collections produced by SortByDateDesc carry
// OrderDescending, and order-dependent consumers re-sort anything else.
type Ordering int

const (
	OrderUnknown Ordering = iota
	OrderAscending
	OrderDescending
)

// Collection is an ordered sequence of records with its ordering hint.
type Collection struct {
	Records []Record
	Order   Ordering
}

// Len returns the number of records in the collection.
func (c Collection) Len() int { return len(c.Records) }

// Empty reports whether the collection holds no records. Consumers treat an
// empty collection as a distinct "no data" condition, never as an error.
func (c Collection) Empty() bool { return len(c.Records) == 0 }

// Detail is the caller-supplied intent signal controlling how aggressively
// output is reduced.
type Detail string

const (
	DetailSummary Detail = "summary"
	DetailFull    Detail = "full"
)

// ParseDetail maps a raw parameter value onto a Detail tier. Anything other
// than an explicit "full" is treated as summary, which is also the default
// for an absent parameter.
func ParseDetail(s string) Detail {
	if s == string(DetailFull) {
		return DetailFull
	}
	return DetailSummary
}

// Envelope combines a human-readable provenance message (what was shown vs
// fetched) with the curated data body.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// MarshalPayload renders a curated payload as the pretty-printed JSON document
// every tool returns as its single text content item.
func MarshalPayload(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal curated payload: %w", err)
	}
	return string(b), nil
}

// Float extracts a numeric field value. Decoded JSON numbers are float64, but
// be tolerant of ints placed in records by tests or derived computations.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
