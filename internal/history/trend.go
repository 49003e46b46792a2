package history

// Trend classifies a day's progress relative to the previous day. The
// four-way mapping is the user-visible feedback contract: improved and
// normal render green (up arrow for improved), declined renders amber
// with a down arrow, low renders red.
type Trend int

const (
	// TrendNormal: no predecessor or tied with it, progress >= 50%.
	TrendNormal Trend = iota
	// TrendLow: no predecessor or tied with it, progress < 50%.
	TrendLow
	// TrendImproved: progress rose day over day.
	TrendImproved
	// TrendDeclined: progress fell day over day.
	TrendDeclined
)

// lowThreshold separates "low" from "normal" on days without a
// meaningful day-over-day comparison.
const lowThreshold = 50.0

// String returns the trend name.
func (t Trend) String() string {
	switch t {
	case TrendImproved:
		return "improved"
	case TrendDeclined:
		return "declined"
	case TrendLow:
		return "low"
	default:
		return "normal"
	}
}

// ClassifyTrend compares a day's progress against the previous day's.
// prev is nil for the first day in the range; a tie falls back to the
// absolute low/normal threshold, same as the first day.
func ClassifyTrend(progress float64, prev *float64) Trend {
	if prev != nil {
		if progress > *prev {
			return TrendImproved
		}
		if progress < *prev {
			return TrendDeclined
		}
	}
	if progress < lowThreshold {
		return TrendLow
	}
	return TrendNormal
}

// TrendOf classifies entry i within an aggregated sequence.
func TrendOf(entries []Entry, i int) Trend {
	var prev *float64
	if i > 0 {
		prev = &entries[i-1].ProgressPct
	}
	return ClassifyTrend(entries[i].ProgressPct, prev)
}

// Feedback returns the per-day coaching message shown next to the
// trend indicator.
func Feedback(progress float64, prev *float64) string {
	switch {
	case progress == 0:
		return "วันนี้คุณยังไม่ได้ทำ"
	case prev != nil && progress < *prev:
		return "วันนี้คุณทำได้น้อยลง"
	case prev != nil && progress > *prev:
		return "วันนี้คุณทำได้ดีขึ้น"
	case progress < lowThreshold:
		return "วันนี้คุณทำได้น้อย"
	default:
		return "วันนี้คุณทำได้ตามปกติ"
	}
}
