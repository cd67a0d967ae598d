package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGrid(t *testing.T) {
	t.Parallel()

	// 2025 年 6 月 1 日是周日，在周一开头的日历中要先放 6 个空白格
	grid := BuildMonthGrid(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2025-06", grid.MonthKey)
	assert.Equal(t, 6, grid.LeadingBlanks)
	require.Len(t, grid.Days, 30)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), grid.Start)
	assert.Equal(t, time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), grid.End)
	assert.Equal(t, grid.Start, grid.Days[0])
	assert.Equal(t, grid.End, grid.Days[len(grid.Days)-1])
}

func TestBuildMonthGrid_MondayStart(t *testing.T) {
	t.Parallel()

	// 2025 年 9 月 1 日是周一，不需要空白格
	grid := BuildMonthGrid(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 0, grid.LeadingBlanks)
	assert.Len(t, grid.Days, 30)
}

func TestBuildMonthGrid_LeapFebruary(t *testing.T) {
	t.Parallel()

	grid := BuildMonthGrid(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-02", grid.MonthKey)
	assert.Equal(t, 3, grid.LeadingBlanks)
	assert.Len(t, grid.Days, 29)
}

func TestPreviousMonth_YearBoundary(t *testing.T) {
	t.Parallel()

	prev := PreviousMonth(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), prev)
}

func TestNextMonth_YearBoundary(t *testing.T) {
	t.Parallel()

	next := NextMonth(time.Date(2025, time.December, 3, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), next)
}
