package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayPlainDate(t *testing.T) {
	d, err := ParseDay("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 1, d.Day())
	assert.Zero(t, d.Hour())
	assert.Equal(t, time.Local, d.Location())
}

func TestParseDayRFC3339TruncatesToMidnight(t *testing.T) {
	d, err := ParseDay(time.Date(2024, 3, 5, 18, 45, 12, 0, time.Local).Format(time.RFC3339))
	require.NoError(t, err)
	assert.True(t, d.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)))
}

func TestParseDayInvalid(t *testing.T) {
	for _, s := range []string{"", "yesterday", "01/02/2024", "2024-13-40"} {
		_, err := ParseDay(s)
		assert.Error(t, err, s)
	}
}

func TestTruncateToDay(t *testing.T) {
	at := time.Date(2024, 7, 9, 23, 59, 59, 999, time.Local)
	assert.True(t, TruncateToDay(at).Equal(time.Date(2024, 7, 9, 0, 0, 0, 0, time.Local)))
}
