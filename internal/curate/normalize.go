package curate

// Normalize converts a raw upstream JSON value into a uniform Collection.
// The provider is inconsistent about shapes, so the accepted forms are
// enumerated here rather than type-checked ad hoc at call sites:
//
//   - an array is the collection directly
//   - an object whose wrapperKey property holds an array unwraps to that array
//   - an object whose values are all arrays (multi-group intraday payloads)
//     flattens into one collection, order unspecified until re-sorted
//   - any other non-empty object is a single-element collection
//   - null, empty arrays, and empty objects yield an empty Collection
func Normalize(raw any, wrapperKey string) Collection {
	switch v := raw.(type) {
	case []any:
		return fromSlice(v)
	case map[string]any:
		if len(v) == 0 {
			return Collection{}
		}
		if wrapperKey != "" {
			if inner, ok := v[wrapperKey].([]any); ok {
				return fromSlice(inner)
			}
		}
		if groups, ok := subGroupArrays(v); ok {
			return fromSlice(groups)
		}
		return Collection{Records: []Record{Record(v)}}
	default:
		return Collection{}
	}
}

func fromSlice(items []any) Collection {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			records = append(records, Record(obj))
		}
	}
	return Collection{Records: records, Order: OrderUnknown}
}

// subGroupArrays detects the multi-group shape where every top-level value is
// itself an array of records, and flattens the sub-arrays.
func subGroupArrays(obj map[string]any) ([]any, bool) {
	flattened := make([]any, 0)
	for _, v := range obj {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		flattened = append(flattened, arr...)
	}
	return flattened, true
}
