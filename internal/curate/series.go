package curate

import (
	"fmt"
	"math"
)

const (
	// FullCap is the hard upper bound on points returned in full mode.
	FullCap = 150

	// SummaryThreshold is the point count above which summary mode switches
	// from returning every point to a statistical digest. It prevents dumping
	// a full year of daily bars while the digest still conveys the trend.
	SummaryThreshold = 60

	// RecentCount is the size of the recent-window sample attached to a
	// digest, letting the caller inspect the latest shape of the series
	// without the full history.
	RecentCount = 5
)

// OHLCVPolicy is the canonical reduced shape for a price-series point.
var OHLCVPolicy = Policy{Fields: []Field{
	{Name: "date"},
	{Name: "open"},
	{Name: "high"},
	{Name: "low"},
	{Name: "close"},
	{Name: "volume"},
}}

// SeriesDigest is the statistical reduction of a long time series: endpoints,
// extrema, percent change, and a small most-recent sample. Nullable values are
// `any` so an absent close or an incalculable change marshals as JSON null
// rather than a malformed number.
type SeriesDigest struct {
	PeriodStartDate    any      `json:"periodStartDate"`
	PeriodEndDate      any      `json:"periodEndDate"`
	StartPrice         any      `json:"startPrice"`
	EndPrice           any      `json:"endPrice"`
	PeriodHigh         any      `json:"periodHigh"`
	PeriodLow          any      `json:"periodLow"`
	PriceChangePercent any      `json:"priceChangePercent"`
	RecentData         []Record `json:"recentData"`
}

// SummarizeSeries reduces a chronologically sortable OHLCV series per the
// detail tier: full mode returns up to FullCap points, summary mode returns
// every point at or below SummaryThreshold and a SeriesDigest above it. Input
// order is never trusted; the series is re-sorted descending by date first.
func SummarizeSeries(points Collection, detail Detail) Envelope {
	desc := SortByDateDesc(points)
	n := desc.Len()

	if detail == DetailFull {
		shown := min(n, FullCap)
		return Envelope{
			Message: fmt.Sprintf("Showing %d of %d data points (full detail is capped at %d).", shown, n, FullCap),
			Data:    ProjectAll(desc.Records[:shown], OHLCVPolicy),
		}
	}

	if n <= SummaryThreshold {
		return Envelope{
			Message: fmt.Sprintf("Showing all %d data points (at or below the %d-point summary threshold).", n, SummaryThreshold),
			Data:    ProjectAll(desc.Records, OHLCVPolicy),
		}
	}

	newest := desc.Records[0]
	oldest := desc.Records[n-1]
	pct := PercentChange(oldest["close"], newest["close"])

	digest := SeriesDigest{
		PeriodStartDate:    oldest["date"],
		PeriodEndDate:      newest["date"],
		StartPrice:         oldest["close"],
		EndPrice:           newest["close"],
		PeriodHigh:         maxField(desc.Records, "high"),
		PeriodLow:          minField(desc.Records, "low"),
		PriceChangePercent: pct,
		RecentData:         ProjectAll(desc.Records[:min(n, RecentCount)], OHLCVPolicy),
	}

	msg := fmt.Sprintf("Summarized %d data points from %v to %v. Request detail \"full\" for individual data points.",
		n, oldest["date"], newest["date"])
	if pct == nil {
		msg += " Price change could not be calculated."
	}
	return Envelope{Message: msg, Data: digest}
}

// PercentChange computes (to - from) / from * 100 rounded to two decimals.
// A missing value or a zero base yields nil, never NaN or Infinity.
func PercentChange(from, to any) any {
	f, okFrom := Float(from)
	t, okTo := Float(to)
	if !okFrom || !okTo || f == 0 {
		return nil
	}
	return Round2((t - f) / f * 100)
}

// Round2 rounds to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func maxField(records []Record, key string) any {
	var best any
	for _, rec := range records {
		v, ok := Float(rec[key])
		if !ok {
			continue
		}
		if b, has := Float(best); !has || v > b {
			best = v
		}
	}
	return best
}

func minField(records []Record, key string) any {
	var best any
	for _, rec := range records {
		v, ok := Float(rec[key])
		if !ok {
			continue
		}
		if b, has := Float(best); !has || v < b {
			best = v
		}
	}
	return best
}
