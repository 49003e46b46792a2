package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventLine(day string, i int) string {
	return fmt.Sprintf("[%s 08:00:%02d] เซ็ตที่ 0 ครั้งที่ %d : ท่ากำมือสำเร็จ!", day, i%60, i)
}

func TestAggregate_FillsMissingDays(t *testing.T) {
	var lines []string
	for i := 0; i < 12; i++ {
		lines = append(lines, eventLine("2025-10-01", i))
	}
	for i := 0; i < 31; i++ {
		lines = append(lines, eventLine("2025-10-03", i))
	}

	entries := Aggregate(lines)
	require.Len(t, entries, 3)

	assert.Equal(t, "2025-10-01", entries[0].Date.Format("2006-01-02"))
	assert.Equal(t, 12, entries[0].EventCount)
	assert.Equal(t, 1, entries[0].SetsDone)
	assert.InDelta(t, 40.0, entries[0].ProgressPct, 1e-9)

	assert.Equal(t, "2025-10-02", entries[1].Date.Format("2006-01-02"))
	assert.Equal(t, 0, entries[1].EventCount)
	assert.Equal(t, 0, entries[1].SetsDone)
	assert.Equal(t, 0.0, entries[1].ProgressPct)

	assert.Equal(t, "2025-10-03", entries[2].Date.Format("2006-01-02"))
	assert.Equal(t, 31, entries[2].EventCount)
	assert.Equal(t, 3, entries[2].SetsDone)
	assert.Equal(t, 100.0, entries[2].ProgressPct)
}

func TestAggregate_SkipsMalformedLines(t *testing.T) {
	lines := []string{
		"",
		"no timestamp here",
		"[not-a-date] เซ็ตที่ 0 ครั้งที่ 0 : junk",
		eventLine("2025-10-05", 0),
		"[2025-13-99 99:99:99] impossible date",
		eventLine("2025-10-05", 1),
	}
	entries := Aggregate(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].EventCount)
}

func TestAggregate_EmptyLog(t *testing.T) {
	assert.Nil(t, Aggregate(nil))
	assert.Nil(t, Aggregate([]string{"garbage", ""}))
}

func TestAggregate_BucketsByDateNotTime(t *testing.T) {
	lines := []string{
		"[2025-10-07 00:00:00] เซ็ตที่ 0 ครั้งที่ 0 : ท่ากำมือสำเร็จ!",
		"[2025-10-07 23:59:59] เซ็ตที่ 0 ครั้งที่ 1 : ท่ากำมือสำเร็จ!",
	}
	entries := Aggregate(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].EventCount)
}

func TestParseTimestamp(t *testing.T) {
	ts, ok := ParseTimestamp("[2025-10-01 08:15:30] เซ็ตที่ 1 ครั้งที่ 2 : ท่ากำมือสำเร็จ!")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 10, 1, 8, 15, 30, 0, time.Local), ts)

	for _, bad := range []string{
		"",
		"[short]",
		"2025-10-01 08:15:30 no brackets",
		"[2025-10-01 08:15:30x missing close",
	} {
		_, ok := ParseTimestamp(bad)
		assert.False(t, ok, "line %q should not parse", bad)
	}
}

func TestFormatEvent_RoundTripsThroughParse(t *testing.T) {
	at := time.Date(2025, 10, 1, 9, 30, 0, 0, time.Local)
	line := FormatEvent(at, 1, 4, "กำมือ")
	assert.Equal(t, "[2025-10-01 09:30:00] เซ็ตที่ 1 ครั้งที่ 4 : ท่ากำมือสำเร็จ!", line)

	ts, ok := ParseTimestamp(line)
	require.True(t, ok)
	assert.True(t, ts.Equal(at))
}

func TestTail(t *testing.T) {
	lines := []string{"a", "b", "c", "d"}
	assert.Equal(t, []string{"c", "d"}, Tail(lines, 2))
	assert.Equal(t, lines, Tail(lines, 10))
	assert.Equal(t, lines, Tail(lines, 0))
}
