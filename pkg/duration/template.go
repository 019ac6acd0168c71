// pkg/duration/template.go

package duration

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// field indexes into the values handed to a template
type field int

const (
	fieldDays field = iota
	fieldHours
	fieldMinutes
	fieldSeconds
	fieldMicroseconds
)

var fieldNames = map[string]field{
	"days":         fieldDays,
	"hours":        fieldHours,
	"minutes":      fieldMinutes,
	"seconds":      fieldSeconds,
	"microseconds": fieldMicroseconds,
}

type segment struct {
	literal string
	slot    bool
	field   field
	fill    rune
	align   byte
	width   int
}

// Template is a parsed output template.
type Template struct {
	src      string
	segments []segment
}

// ParseTemplate parses a template with named slots {days}, {hours},
// {minutes}, {seconds} and {microseconds}. A slot may carry a numeric format
// spec "[[fill]align][0][width][d]" after a colon, e.g. {hours:02d} or
// {seconds:>4}. Literal braces are written as {{ and }}.
func ParseTemplate(s string) (*Template, error) {
	t := &Template{src: s}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(s[i+1:], '}')
			if end < 0 {
				return nil, errors.Wrapf(ErrInvalidTemplate, "%q: unterminated slot at offset %d", s, i)
			}
			seg, err := parseSlot(s[i+1 : i+1+end])
			if err != nil {
				return nil, errors.WithMessagef(err, "%q", s)
			}
			flush()
			t.segments = append(t.segments, seg)
			i += end + 1
		case '}':
			if i+1 < len(s) && s[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, errors.Wrapf(ErrInvalidTemplate, "%q: single '}' at offset %d", s, i)
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	return t, nil
}

// MustParseTemplate is like ParseTemplate but panics on a malformed template.
func MustParseTemplate(s string) *Template {
	t, err := ParseTemplate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func parseSlot(body string) (segment, error) {
	name, spec, _ := strings.Cut(body, ":")
	f, ok := fieldNames[name]
	if !ok {
		return segment{}, errors.Wrapf(ErrInvalidTemplate, "unknown slot %q", name)
	}
	seg := segment{slot: true, field: f, fill: ' ', align: '>'}

	rest := spec
	explicitFill := false
	if r, size := utf8.DecodeRuneInString(rest); size > 0 && len(rest) > size && isAlign(rest[size]) {
		seg.fill, seg.align = r, rest[size]
		explicitFill = true
		rest = rest[size+1:]
	} else if len(rest) > 0 && isAlign(rest[0]) {
		seg.align = rest[0]
		rest = rest[1:]
	}
	if strings.HasPrefix(rest, "0") {
		if !explicitFill {
			seg.fill = '0'
		}
		rest = rest[1:]
	}
	digits := 0
	for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		digits++
	}
	if digits > 0 {
		w, err := strconv.Atoi(rest[:digits])
		if err != nil {
			return segment{}, errors.Wrapf(ErrInvalidTemplate, "slot %q: bad width", body)
		}
		seg.width = w
		rest = rest[digits:]
	}
	rest = strings.TrimPrefix(rest, "d")
	if rest != "" {
		return segment{}, errors.Wrapf(ErrInvalidTemplate, "slot %q: unsupported format spec %q", body, spec)
	}
	return seg, nil
}

func isAlign(c byte) bool {
	return c == '<' || c == '>' || c == '^'
}

// Render writes d into the template.
func (t *Template) Render(d Duration) string {
	values := [...]int64{d.Days, d.Hours, d.Minutes, d.Seconds, d.Microseconds}
	var b strings.Builder
	for _, seg := range t.segments {
		if !seg.slot {
			b.WriteString(seg.literal)
			continue
		}
		seg.pad(&b, strconv.FormatInt(values[seg.field], 10))
	}
	return b.String()
}

// String returns the source of the template.
func (t *Template) String() string {
	return t.src
}

func (seg segment) pad(b *strings.Builder, v string) {
	n := seg.width - utf8.RuneCountInString(v)
	if n <= 0 {
		b.WriteString(v)
		return
	}
	fill := string(seg.fill)
	switch seg.align {
	case '<':
		b.WriteString(v)
		b.WriteString(strings.Repeat(fill, n))
	case '^':
		b.WriteString(strings.Repeat(fill, n/2))
		b.WriteString(v)
		b.WriteString(strings.Repeat(fill, n-n/2))
	default:
		b.WriteString(strings.Repeat(fill, n))
		b.WriteString(v)
	}
}
