package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock12Valid(t *testing.T) {
	parsed, err := ParseClock12("09:30 AM")
	require.NoError(t, err)
	assert.Equal(t, 9, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())

	parsed, err = ParseClock12("01:15 PM")
	require.NoError(t, err)
	assert.Equal(t, 13, parsed.Hour())
}

func TestParseClock12RejectsMalformedTimes(t *testing.T) {
	for _, bad := range []string{"9:30", "13:00", "09:30", "morning", ""} {
		_, err := ParseClock12(bad)
		require.Error(t, err, "expected %q to be rejected", bad)
		assert.ErrorIs(t, err, ErrDataIntegrity)
	}
}

func TestParseDateTime(t *testing.T) {
	parsed, err := ParseDateTime("2025-01-26 11:00")
	require.NoError(t, err)
	assert.Equal(t, 11, parsed.Hour())

	_, err = ParseDateTime("26/01/2025")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFormatClocks(t *testing.T) {
	parsed, err := ParseDateTime("2025-01-26 14:05")
	require.NoError(t, err)
	assert.Equal(t, "14:05", FormatClock24(parsed))
	assert.Equal(t, "02:05 PM", FormatClock12(parsed))
}
