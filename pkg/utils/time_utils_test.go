package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGarminTimestamp(t *testing.T) {
	ts := ParseGarminTimestamp("2026-03-14 06:30:00")
	require.NotNil(t, ts)
	assert.Equal(t, time.Date(2026, 3, 14, 6, 30, 0, 0, time.UTC), *ts)

	ts = ParseGarminTimestamp("2026-03-14T06:30:00")
	require.NotNil(t, ts)
	assert.Equal(t, 6, ts.Hour())
}

func TestParseGarminTimestampStripsDecoration(t *testing.T) {
	ts := ParseGarminTimestamp("2026-03-14 06:30:00Z")
	require.NotNil(t, ts)
	assert.Equal(t, 30, ts.Minute())

	ts = ParseGarminTimestamp("2026-03-14T06:30:00+02:00")
	require.NotNil(t, ts)
	assert.Equal(t, 6, ts.Hour())

	ts = ParseGarminTimestamp("2026-03-14 06:30:00.123")
	require.NotNil(t, ts)
	assert.Equal(t, 0, ts.Second())
}

func TestParseGarminTimestampInvalid(t *testing.T) {
	assert.Nil(t, ParseGarminTimestamp(""))
	assert.Nil(t, ParseGarminTimestamp("not a timestamp"))
	assert.Nil(t, ParseGarminTimestamp("14/03/2026"))
}

func TestParseGarminDate(t *testing.T) {
	d := ParseGarminDate("2026-03-14 18:45:12")
	require.NotNil(t, d)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), *d)

	assert.Nil(t, ParseGarminDate("bogus"))
}

func TestMidnight(t *testing.T) {
	in := time.Date(2026, 3, 14, 18, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Midnight(in))
}
