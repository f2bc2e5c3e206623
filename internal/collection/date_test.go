package collection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-10-23")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.October, d.Month())
	assert.Equal(t, 23, d.Day())
	assert.Equal(t, time.Local, d.Location())
}

func TestParseDateLeapDay(t *testing.T) {
	_, err := ParseDate("2024-02-29")
	assert.NoError(t, err)

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
}

func TestParseDateRejectsNormalization(t *testing.T) {
	for _, s := range []string{"2024-02-30", "2024-13-01", "2024-00-10", "2024-04-31"} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestParseDateRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "2024-10", "23-10-2024x", "not-a-date", "2024/10/23"} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestParseDateNoTimezoneDrift(t *testing.T) {
	// The display day must match the stored day regardless of host zone.
	d, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", d.Format("2006-01-02"))
}
