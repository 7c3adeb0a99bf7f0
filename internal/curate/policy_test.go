package curate_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/quantfold/fmp-mcp/internal/curate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	policy := curate.Policy{Fields: []curate.Field{
		{Name: "symbol"},
		{Name: "price", Keys: []string{"price", "Stock Price", "stockPrice"}},
		{Name: "description", MaxLen: 20},
	}}

	t.Run("keeps only allow-listed present fields", func(t *testing.T) {
		rec := curate.Record{"symbol": "AAPL", "price": 189.5, "beta": 1.2}
		out := curate.Project(rec, policy)
		assert.Equal(t, curate.Record{"symbol": "AAPL", "price": 189.5}, out)
	})

	t.Run("walks the fallback chain in order", func(t *testing.T) {
		rec := curate.Record{"symbol": "AAPL", "Stock Price": 150.0, "stockPrice": 99.0}
		out := curate.Project(rec, policy)
		assert.Equal(t, 150.0, out["price"])
	})

	t.Run("null aliases do not resolve", func(t *testing.T) {
		rec := curate.Record{"symbol": "AAPL", "price": nil, "stockPrice": 99.0}
		out := curate.Project(rec, policy)
		assert.Equal(t, 99.0, out["price"])
	})

	t.Run("field omitted when no alias resolves", func(t *testing.T) {
		out := curate.Project(curate.Record{"symbol": "AAPL"}, policy)
		_, ok := out["price"]
		assert.False(t, ok)
	})

	t.Run("string fields truncated per policy", func(t *testing.T) {
		rec := curate.Record{"description": strings.Repeat("x", 50)}
		out := curate.Project(rec, policy)
		desc := out["description"].(string)
		assert.True(t, strings.HasSuffix(desc, curate.TruncationMarker))
		assert.Equal(t, 20+utf8.RuneCountInString(curate.TruncationMarker), utf8.RuneCountInString(desc))
	})

	t.Run("projection is idempotent", func(t *testing.T) {
		rec := curate.Record{
			"symbol":      "AAPL",
			"Stock Price": 150.0,
			"description": strings.Repeat("y", 80),
			"beta":        1.2,
		}
		once := curate.Project(rec, policy)
		twice := curate.Project(once, policy)
		assert.Equal(t, once, twice)
	})

	t.Run("input record is not mutated", func(t *testing.T) {
		rec := curate.Record{"symbol": "AAPL", "description": strings.Repeat("z", 40)}
		curate.Project(rec, policy)
		assert.Equal(t, strings.Repeat("z", 40), rec["description"])
		assert.Len(t, rec, 2)
	})
}

func TestProjectAll(t *testing.T) {
	policy := curate.Policy{Fields: []curate.Field{{Name: "date"}}}
	records := []curate.Record{
		{"date": "2024-01-02", "noise": 1.0},
		{"date": "2024-01-03", "noise": 2.0},
	}
	out := curate.ProjectAll(records, policy)
	require.Len(t, out, 2)
	assert.Equal(t, curate.Record{"date": "2024-01-02"}, out[0])
	assert.Equal(t, curate.Record{"date": "2024-01-03"}, out[1])
}

func TestTruncate(t *testing.T) {
	t.Run("short text passes through unchanged", func(t *testing.T) {
		assert.Equal(t, "short", curate.Truncate("short", 200))
		assert.Equal(t, "exact", curate.Truncate("exact", 5))
	})

	t.Run("long text is cut with an explicit marker", func(t *testing.T) {
		in := strings.Repeat("a", 250)
		out := curate.Truncate(in, 200)
		assert.True(t, strings.HasSuffix(out, curate.TruncationMarker))
		assert.Equal(t, 200+utf8.RuneCountInString(curate.TruncationMarker), utf8.RuneCountInString(out))
		assert.Equal(t, in[:200], strings.TrimSuffix(out, curate.TruncationMarker))
	})

	t.Run("re-truncation is a no-op", func(t *testing.T) {
		once := curate.Truncate(strings.Repeat("b", 500), 200)
		assert.Equal(t, once, curate.Truncate(once, 200))
	})

	t.Run("marker-suffixed input at a different length is cut like any text", func(t *testing.T) {
		markerLen := utf8.RuneCountInString(curate.TruncationMarker)
		in := strings.Repeat("d", 205) + curate.TruncationMarker
		out := curate.Truncate(in, 200)
		assert.Equal(t, 200+markerLen, utf8.RuneCountInString(out))
		assert.Equal(t, strings.Repeat("d", 200)+curate.TruncationMarker, out)
	})

	t.Run("non-positive max disables truncation", func(t *testing.T) {
		in := strings.Repeat("c", 500)
		assert.Equal(t, in, curate.Truncate(in, 0))
	})
}
