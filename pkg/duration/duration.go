// pkg/duration/duration.go

// Package duration holds the elapsed time value shown by the timer, its
// canonical text form and the output templates used to display it.
package duration

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrInvalidFormat   = errors.New("invalid duration format")
	ErrInvalidTemplate = errors.New("invalid output template")
)

const (
	// DefaultInitial is the initial elapsed time of a fresh timer.
	DefaultInitial = "0:0:0.0"

	// DefaultTemplate renders hours, minutes and seconds zero padded and the
	// sub-second value as is.
	DefaultTemplate = "{hours:02d}h : {minutes:02d}m : {seconds:02d}s : {microseconds}ms"
)

const (
	usPerSecond = int64(time.Second / time.Microsecond)
	usPerMinute = 60 * usPerSecond
	usPerHour   = 60 * usPerMinute
	usPerDay    = 24 * usPerHour

	// maxMicroseconds keeps every Duration convertible to time.Duration.
	maxMicroseconds = math.MaxInt64 / int64(time.Microsecond)
)

// Duration is a non-negative elapsed time split into its display fields.
// Hours, Minutes, Seconds and Microseconds are always within their natural
// modulus, Days is unbounded.
type Duration struct {
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Microseconds int64
}

// FromStd converts d, truncated to microseconds. Negative values clamp to zero.
func FromStd(d time.Duration) Duration {
	if d < 0 {
		d = 0
	}
	return fromMicroseconds(int64(d / time.Microsecond))
}

// New builds a normalized Duration from arbitrary non-negative fields,
// so New(0, 0, 90, 0, 0) is one hour and thirty minutes.
func New(days, hours, minutes, seconds, microseconds int64) (Duration, error) {
	var total int64
	for _, f := range []struct {
		value, unit int64
		name        string
	}{
		{days, usPerDay, "days"},
		{hours, usPerHour, "hours"},
		{minutes, usPerMinute, "minutes"},
		{seconds, usPerSecond, "seconds"},
		{microseconds, 1, "microseconds"},
	} {
		if f.value < 0 {
			return Duration{}, errors.Wrapf(ErrInvalidFormat, "negative %s %d", f.name, f.value)
		}
		if f.value > (maxMicroseconds-total)/f.unit {
			return Duration{}, errors.Wrapf(ErrInvalidFormat, "%s %d out of range", f.name, f.value)
		}
		total += f.value * f.unit
	}
	return fromMicroseconds(total), nil
}

func fromMicroseconds(us int64) Duration {
	var d Duration
	d.Days, us = us/usPerDay, us%usPerDay
	d.Hours, us = us/usPerHour, us%usPerHour
	d.Minutes, us = us/usPerMinute, us%usPerMinute
	d.Seconds, d.Microseconds = us/usPerSecond, us%usPerSecond
	return d
}

func (d Duration) microseconds() int64 {
	return d.Days*usPerDay + d.Hours*usPerHour + d.Minutes*usPerMinute +
		d.Seconds*usPerSecond + d.Microseconds
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d.microseconds()) * time.Microsecond
}

// String returns the canonical form accepted by Parse, e.g.
// "2 days, 3:04:05.000600".
func (d Duration) String() string {
	var b strings.Builder
	switch d.Days {
	case 0:
	case 1:
		b.WriteString("1 day, ")
	default:
		fmt.Fprintf(&b, "%d days, ", d.Days)
	}
	fmt.Fprintf(&b, "%d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
	if d.Microseconds != 0 {
		fmt.Fprintf(&b, ".%06d", d.Microseconds)
	}
	return b.String()
}

// Format renders d with a template, see ParseTemplate.
func (d Duration) Format(template string) (string, error) {
	t, err := ParseTemplate(template)
	if err != nil {
		return "", err
	}
	return t.Render(d), nil
}
