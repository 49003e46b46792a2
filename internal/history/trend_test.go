package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestClassifyTrend(t *testing.T) {
	cases := []struct {
		name     string
		progress float64
		prev     *float64
		want     Trend
	}{
		{"improved day over day", 70, fptr(40), TrendImproved},
		{"declined day over day", 20, fptr(70), TrendDeclined},
		{"first day below threshold", 30, nil, TrendLow},
		{"first day at threshold", 50, nil, TrendNormal},
		{"first day above threshold", 80, nil, TrendNormal},
		{"tie below threshold", 40, fptr(40), TrendLow},
		{"tie above threshold", 60, fptr(60), TrendNormal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyTrend(tc.progress, tc.prev), tc.name)
	}
}

func TestTrendOf_UsesPreviousEntry(t *testing.T) {
	entries := []Entry{
		{ProgressPct: 40},
		{ProgressPct: 70},
		{ProgressPct: 20},
		{ProgressPct: 20},
	}
	assert.Equal(t, TrendLow, TrendOf(entries, 0))
	assert.Equal(t, TrendImproved, TrendOf(entries, 1))
	assert.Equal(t, TrendDeclined, TrendOf(entries, 2))
	assert.Equal(t, TrendLow, TrendOf(entries, 3)) // tie, below threshold
}

func TestTrend_String(t *testing.T) {
	assert.Equal(t, "improved", TrendImproved.String())
	assert.Equal(t, "declined", TrendDeclined.String())
	assert.Equal(t, "low", TrendLow.String())
	assert.Equal(t, "normal", TrendNormal.String())
}

func TestFeedback(t *testing.T) {
	assert.Equal(t, "วันนี้คุณยังไม่ได้ทำ", Feedback(0, nil))
	assert.Equal(t, "วันนี้คุณยังไม่ได้ทำ", Feedback(0, fptr(80)))
	assert.Equal(t, "วันนี้คุณทำได้น้อยลง", Feedback(30, fptr(60)))
	assert.Equal(t, "วันนี้คุณทำได้ดีขึ้น", Feedback(60, fptr(30)))
	assert.Equal(t, "วันนี้คุณทำได้น้อย", Feedback(30, nil))
	assert.Equal(t, "วันนี้คุณทำได้ตามปกติ", Feedback(70, fptr(70)))
}
