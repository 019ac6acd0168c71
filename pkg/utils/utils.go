// pkg/utils/utils.go

package utils

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Exists reports whether path names a regular file on fs.
func Exists(fs afero.Fs, path string) bool {
	st, err := fs.Stat(path)
	return err == nil && st.Mode().IsRegular()
}

// NewDynProgressBar init a dynamic progress bar,the title will appears at the head of the progress bar
func NewDynProgressBar(title string, quiet bool) (*mpb.Progress, *mpb.Bar) {
	var out io.Writer = os.Stdout
	if quiet || !IsTerminal(os.Stdout) {
		out = nil
	}
	return newProgressBar(title, out)
}

func newProgressBar(title string, out io.Writer) (*mpb.Progress, *mpb.Bar) {
	progress := mpb.New(mpb.WithWidth(64), mpb.WithOutput(out))
	bar := progress.AddBar(0,
		mpb.PrependDecorators(
			decor.Name(title, decor.WCSyncWidth),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)
	return progress, bar
}
