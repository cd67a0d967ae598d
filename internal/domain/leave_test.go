package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKeyRoundTrip(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	key := DateKeyOf(day)
	assert.Equal(t, "2025-06-03", key)

	parsed, err := ParseDateKey(key)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(day))
}

func TestParseDateKey_Invalid(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"", "2025-6-3", "2025/06/03", "03-06-2025", "2025-13-01"} {
		_, err := ParseDateKey(key)
		assert.Error(t, err, key)
	}
}

func TestMonthKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2025-06", MonthKeyOf(time.Date(2025, time.June, 30, 23, 59, 0, 0, time.UTC)))

	_, err := ParseMonthKey("2025-06")
	assert.NoError(t, err)

	_, err = ParseMonthKey("2025-6")
	assert.Error(t, err)
}

func TestMonthKeyOfDate(t *testing.T) {
	t.Parallel()

	monthKey, err := MonthKeyOfDate("2025-06-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-06", monthKey)

	_, err = MonthKeyOfDate("not-a-date")
	assert.Error(t, err)
}
