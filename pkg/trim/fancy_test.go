// pkg/trim/fancy_test.go

package trim

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const esc = "\x1b"

// coloured output of: sed 's/[ ]*$//' notes.txt | git --no-pager diff --color --no-index -- - notes.txt
var gitDiff = strings.Join([]string{
	esc + "[1mdiff --git a/- b/notes.txt" + esc + "[m",
	esc + "[1mindex 3b18e51..a5c1966 100644" + esc + "[m",
	esc + "[1m--- a/-" + esc + "[m",
	esc + "[1m+++ b/notes.txt" + esc + "[m",
	esc + "[36m@@ -1,2 +1,2 @@" + esc + "[m",
	esc + "[31m-hello" + esc + "[m",
	esc + "[32m+" + esc + "[m" + esc + "[32mhello" + esc + "[m" + esc + "[41m   " + esc + "[m",
	" world",
}, "\n") + "\n"

func TestFancyFilter(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, FancyFilter(strings.NewReader(gitDiff), &out, 4))

	want := strings.Join([]string{
		esc + "[1mfile: notes.txt" + esc + "[m",
		esc + "[36m@@ -1,2 +1,2 @@" + esc + "[m",
		" " + esc + "[m" + "hello" + esc + "[m" + esc + "[44m   " + esc + "[m",
		" world",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
}

func TestFancyFilterEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, FancyFilter(strings.NewReader(""), &out, 1))
	assert.Empty(t, out.String())
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, "[40m", highlight(0))
	assert.Equal(t, "[41m", highlight(DefaultColor))
	assert.Equal(t, "[47m", highlight(7))
}
