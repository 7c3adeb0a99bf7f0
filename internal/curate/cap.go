package curate

import "fmt"

// CapCollection bounds an ordered collection of heterogeneous records (news,
// calendar events, dividends) to the family's per-tier count, projecting each
// surfaced record through the family policy. Time-ordered collections are
// defensively re-sorted descending by date (resolved through dateKeys) before
// capping, so the surfaced records are the most recent ones regardless of
// upstream order.
//
// The envelope message always states how many records were found; when fewer
// are shown than were fetched in summary mode, it adds the hint to request
// full detail. Families with a hard cap pass summaryCount == fullCount and
// get no hint.
func CapCollection(items Collection, detail Detail, summaryCount, fullCount int, p Policy, dateKeys ...string) Envelope {
	desc := SortByDateDesc(items, dateKeys...)
	n := desc.Len()

	limit := summaryCount
	if detail == DetailFull {
		limit = fullCount
	}
	shown := min(n, limit)

	var msg string
	switch {
	case shown == n:
		msg = fmt.Sprintf("Found %d results.", n)
	case detail == DetailSummary && fullCount > summaryCount:
		msg = fmt.Sprintf("Showing %d of %d results. Request detail \"full\" for more.", shown, n)
	default:
		msg = fmt.Sprintf("Showing %d of %d results.", shown, n)
	}

	return Envelope{
		Message: msg,
		Data:    ProjectAll(desc.Records[:shown], p),
	}
}
