package curate

import (
	"fmt"
	"slices"
	"sort"
)

// SortByDateDesc returns the collection re-sorted descending by date so that
// "most recent" is guaranteed regardless of upstream order. The date is
// resolved through dateKeys in order ("date" when none are given); ISO
// YYYY-MM-DD strings compare correctly lexicographically. Collections already
// marked OrderDescending are returned as-is — only SortByDateDesc itself
// produces that marking, so the short-circuit never trusts upstream order.
func SortByDateDesc(c Collection, dateKeys ...string) Collection {
	if c.Order == OrderDescending {
		return c
	}
	if len(dateKeys) == 0 {
		dateKeys = []string{"date"}
	}
	records := slices.Clone(c.Records)
	sort.SliceStable(records, func(i, j int) bool {
		return dateOf(records[i], dateKeys) > dateOf(records[j], dateKeys)
	})
	return Collection{Records: records, Order: OrderDescending}
}

func dateOf(rec Record, dateKeys []string) string {
	for _, k := range dateKeys {
		v, ok := rec[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr {
			return s
		}
		return fmt.Sprint(v)
	}
	return ""
}
