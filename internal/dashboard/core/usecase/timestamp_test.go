package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_ISOAndEpochAgree(t *testing.T) {
	iso, ok := parseTimestamp("2024-01-15T10:00:00Z", time.UTC)
	require.True(t, ok)
	secs, ok := parseTimestamp("1705312800", time.UTC)
	require.True(t, ok)
	millis, ok := parseTimestamp("1705312800000", time.UTC)
	require.True(t, ok)

	assert.True(t, iso.Equal(secs))
	assert.True(t, iso.Equal(millis))
	assert.Equal(t, 10, secs.Hour())
}

func TestParseTimestamp_Layouts(t *testing.T) {
	want := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	for _, raw := range []string{
		"2024-01-15T10:00:00Z",
		"2024-01-15T10:00:00.000Z",
		"2024-01-15T07:00:00-03:00",
		"2024-01-15 10:00:00+00",
		"2024-01-15 10:00:00.123456+00",
		"2024-01-15 10:00:00",
		"2024-01-15T10:00:00",
		"2024-01-15T10:00",
		" 2024-01-15T10:00:00Z ",
	} {
		got, ok := parseTimestamp(raw, time.UTC)
		require.True(t, ok, raw)
		assert.Equal(t, want, got.Truncate(time.Second), raw)
	}
}

func TestParseTimestamp_DateOnly(t *testing.T) {
	got, ok := parseTimestamp("2024-01-15", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "yesterday", "NaN", "Inf", "1e300"} {
		_, ok := parseTimestamp(raw, time.UTC)
		assert.False(t, ok, raw)
	}
}
