// pkg/duration/parse_test.go

package duration

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Duration
	}{
		{"0:0:0.0", Duration{}},
		{"5", Duration{Seconds: 5}},
		{"1:5", Duration{Minutes: 1, Seconds: 5}},
		{"2:03:04", Duration{Hours: 2, Minutes: 3, Seconds: 4}},
		{"0:0:10.0", Duration{Seconds: 10}},
		{"1:30:0.0", Duration{Hours: 1, Minutes: 30}},
		// the fraction is a literal count of microseconds
		{"1.5", Duration{Seconds: 1, Microseconds: 5}},
		{"1.500000", Duration{Seconds: 1, Microseconds: 500000}},
		{"3 days, 4:05:06.000007", Duration{Days: 3, Hours: 4, Minutes: 5, Seconds: 6, Microseconds: 7}},
		{"1 day, 0:00:00", Duration{Days: 1}},
		{"0:90:0", Duration{Hours: 1, Minutes: 30}},
		{"25:0:0", Duration{Days: 1, Hours: 1}},
		{" 1: 2: 3", Duration{Hours: 1, Minutes: 2, Seconds: 3}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{"three colons", "1:2:3:4", "3 ':' separators"},
		{"illegal letter", "1h30m", "illegal character 'h'"},
		{"minus sign", "-1:00", "illegal character '-'"},
		{"empty", "", "bad seconds field"},
		{"empty minutes", "1::3", "bad minutes field"},
		{"double fraction", "1.2.3", "bad microseconds field"},
		{"days without count", "days, 1:00", "bad minutes field"},
		{"out of range", "99999999999 days, 0:00:00", "out of range"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidFormat), "got %v", err)
			assert.Contains(t, err.Error(), tc.msg)
			assert.Contains(t, err.Error(), tc.in)
		})
	}
}

func TestParseCanonicalRoundTrip(t *testing.T) {
	for _, d := range []Duration{
		{},
		{Microseconds: 1},
		{Seconds: 59, Microseconds: 999999},
		{Hours: 23, Minutes: 59, Seconds: 59},
		{Days: 1, Hours: 2, Minutes: 3, Seconds: 4, Microseconds: 5},
		{Days: 12448, Hours: 16, Minutes: 4, Seconds: 53, Microseconds: 742775},
		FromStd(1234567 * time.Millisecond),
	} {
		got, err := Parse(d.String())
		require.NoError(t, err, d.String())
		assert.Equal(t, d, got, d.String())
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("1:2:3:4") })
	assert.Equal(t, Duration{Minutes: 2}, MustParse("2:0"))
}
