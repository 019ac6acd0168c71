// pkg/trim/fancy.go

package trim

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// lines of a coloured git diff hidden by the fancy preview
var fancyDrop = []*regexp.Regexp{
	regexp.MustCompile(`^.\[31m-`),    // removed lines
	regexp.MustCompile(`^.\[1mindex`), // index header
	regexp.MustCompile(`^.\[1m---`),
	regexp.MustCompile(`^.\[1m\+\+\+`),
}

var (
	diffHeader  = regexp.MustCompile(`diff --git a/- b/`)
	addedMarker = regexp.MustCompile(`^.\[32m\+`)
	greenColor  = regexp.MustCompile(`.\[32m`)
	redBgColor  = regexp.MustCompile(`\[41m`)
)

// highlight returns the SGR parameter of background colour c (0-7).
func highlight(c int) string {
	return fmt.Sprintf("[%dm", color.BgBlack+color.Attribute(c))
}

// FancyFilter condenses the coloured output of
// "git diff --color --no-index -- - FILE" to the lines that would change,
// with the trailing spaces highlighted in background colour c.
func FancyFilter(r io.Reader, w io.Writer, c int) error {
	bg := highlight(c)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), 16<<20)
	bw := bufio.NewWriter(w)
scan:
	for sc.Scan() {
		line := sc.Text()
		for _, re := range fancyDrop {
			if re.MatchString(line) {
				continue scan
			}
		}
		line = replaceFirst(diffHeader, line, "file: ")
		line = replaceFirst(addedMarker, line, " ")
		line = replaceFirst(greenColor, line, "")
		line = replaceFirst(redBgColor, line, bg)
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return errors.Wrap(err, "write preview")
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read diff")
	}
	return bw.Flush()
}

func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
