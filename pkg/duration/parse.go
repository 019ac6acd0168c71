// pkg/duration/parse.go

package duration

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const allowedChars = "0123456789:,. days"

var daySeparators = []string{" days, ", " day, "}

// Parse reads the canonical form "[D days, ][[HH:]MM:]SS[.FFFFFF]".
// The days prefix, the hour and minute fields and the fraction are optional
// and default to zero. The fraction is taken literally as a number of
// microseconds: "1.5" is one second and five microseconds.
func Parse(text string) (Duration, error) {
	for _, c := range text {
		if !strings.ContainsRune(allowedChars, c) {
			return Duration{}, errors.Wrapf(ErrInvalidFormat, "%q: illegal character %q", text, c)
		}
	}

	rest := text
	days := "0"
	for _, sep := range daySeparators {
		if d, r, ok := strings.Cut(rest, sep); ok {
			days, rest = d, r
			break
		}
	}

	var hours, minutes, seconds string
	fields := strings.Split(rest, ":")
	switch len(fields) {
	case 1:
		hours, minutes, seconds = "0", "0", fields[0]
	case 2:
		hours, minutes, seconds = "0", fields[0], fields[1]
	case 3:
		hours, minutes, seconds = fields[0], fields[1], fields[2]
	default:
		return Duration{}, errors.Wrapf(ErrInvalidFormat,
			"%q: %d ':' separators, may not be more than 2", text, len(fields)-1)
	}

	micros := "0"
	if s, f, ok := strings.Cut(seconds, "."); ok {
		seconds, micros = s, f
	}

	var values [5]int64
	for i, f := range []struct{ name, value string }{
		{"days", days},
		{"hours", hours},
		{"minutes", minutes},
		{"seconds", seconds},
		{"microseconds", micros},
	} {
		v, err := strconv.ParseInt(strings.TrimSpace(f.value), 10, 64)
		if err != nil {
			return Duration{}, errors.Wrapf(ErrInvalidFormat, "%q: bad %s field %q", text, f.name, f.value)
		}
		values[i] = v
	}

	d, err := New(values[0], values[1], values[2], values[3], values[4])
	if err != nil {
		return Duration{}, errors.WithMessagef(err, "%q", text)
	}
	return d, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string) Duration {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}
