package curate

// Field declares one allowed output field of a curation policy.
type Field struct {
	// Name is the output field name.
	Name string

	// Keys is the ordered fallback chain of upstream key aliases; the first
	// key present with a non-null value wins. An empty chain resolves Name
	// itself. The output name should lead its own chain so that projection
	// is a fixed point on already-projected records.
	Keys []string

	// MaxLen, when positive, truncates string values to MaxLen runes with an
	// explicit truncation marker.
	MaxLen int
}

// Policy is the declarative field allow-list for one data family. Policies are
// immutable and constructed once per tool family, not per call.
type Policy struct {
	Fields []Field
}

// Project reduces a record to the policy's allow-list. For each allowed field
// the fallback chain is walked in order and the first present, non-null alias
// resolves the value; the output field is omitted entirely when no alias
// resolves. The input record is never mutated.
//
// Aliasing absorbs upstream inconsistency where the same logical quantity
// appears under different casings (or a space-containing key) on different
// endpoints.
func Project(rec Record, p Policy) Record {
	out := make(Record, len(p.Fields))
	for _, f := range p.Fields {
		keys := f.Keys
		if len(keys) == 0 {
			keys = []string{f.Name}
		}
		for _, k := range keys {
			v, ok := rec[k]
			if !ok || v == nil {
				continue
			}
			if f.MaxLen > 0 {
				if s, isStr := v.(string); isStr {
					v = Truncate(s, f.MaxLen)
				}
			}
			out[f.Name] = v
			break
		}
	}
	return out
}

// ProjectAll projects every record of a slice through the same policy.
func ProjectAll(records []Record, p Policy) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		out[i] = Project(rec, p)
	}
	return out
}
