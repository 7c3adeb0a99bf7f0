package curate

import "strings"

// TruncationMarker is the suffix appended to every truncated text field, so
// truncation is never silently lossy to the reader.
const TruncationMarker = "… (truncated)"

// Truncate bounds free text to max runes, appending TruncationMarker when the
// text was cut. Text at or under the limit passes through unchanged, as does
// text that already carries the marker at exactly the truncated length
// (re-truncation is a no-op, which keeps projection idempotent). Marker-suffixed
// text of any other length is ordinary input and gets cut like everything else,
// so every truncated result is exactly max plus the marker runes long.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if strings.HasSuffix(s, TruncationMarker) && len(r) == max+len([]rune(TruncationMarker)) {
		return s
	}
	return string(r[:max]) + TruncationMarker
}
