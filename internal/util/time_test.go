package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-analyzer/internal/util"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "Millisecond Fraction",
			input:    "2022-12-07 19:13:11.030",
			expected: time.Date(2022, 12, 7, 19, 13, 11, 30*int(time.Millisecond), time.UTC),
		},
		{
			name:     "RFC3339 With Offset",
			input:    "2022-12-07T19:13:11+02:00",
			expected: time.Date(2022, 12, 7, 17, 13, 11, 0, time.UTC),
		},
		{
			name:     "Slash Date",
			input:    "2022/12/07 19:13:11",
			expected: time.Date(2022, 12, 7, 19, 13, 11, 0, time.UTC),
		},
		{
			name:     "Surrounding Whitespace",
			input:    "  2022-12-07 19:13:11  ",
			expected: time.Date(2022, 12, 7, 19, 13, 11, 0, time.UTC),
		},
		{
			name:     "Epoch Milliseconds",
			input:    "1670440391030",
			expected: time.UnixMilli(1670440391030),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := util.ParseTimestamp(tt.input, nil)

			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestParseTimestamp_Location(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)

	got, err := util.ParseTimestamp("2022-12-07 19:13:11", loc)

	require.NoError(t, err)
	assert.True(t, time.Date(2022, 12, 8, 0, 13, 11, 0, time.UTC).Equal(got))
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "not-a-date", "PROCESS: started"} {
		_, err := util.ParseTimestamp(input, time.UTC)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseTimeFlexible(t *testing.T) {
	got, err := util.ParseTimeFlexible("2023-04-29T09:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 4, 29, 9, 0, 0, 0, time.UTC), got)

	got, err = util.ParseTimeFlexible("1682758800000")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 4, 29, 9, 0, 0, 0, time.UTC), got)

	got, err = util.ParseTimeFlexible("2023-04-29 09:00:00")
	require.NoError(t, err)
	assert.True(t, time.Date(2023, 4, 29, 9, 0, 0, 0, time.UTC).Equal(got))

	_, err = util.ParseTimeFlexible("soon")
	assert.Error(t, err)
}
