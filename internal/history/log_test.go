package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_AppendAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history", "fingerfit.log")
	logger := NewLogger(path)

	at := time.Date(2025, 10, 1, 8, 0, 0, 0, time.Local)
	require.NoError(t, logger.Append(at, 0, 3, "กำมือ"))
	require.NoError(t, logger.Append(at.Add(7*time.Second), 0, 4, "เหยียดมือตรง"))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "[2025-10-01 08:00:00] เซ็ตที่ 0 ครั้งที่ 3 : ท่ากำมือสำเร็จ!", lines[0])

	entries := Aggregate(lines)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].EventCount)
}

func TestReadLines_MissingFile(t *testing.T) {
	lines, err := ReadLines(filepath.Join(t.TempDir(), "absent.log"))
	require.NoError(t, err)
	assert.Empty(t, lines)
}
