// pkg/trim/trim.go

// Package trim strips trailing spaces from files with sed and previews the
// edit through git diff.
package trim

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"termkit/pkg/utils"

	"github.com/fatih/color"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var logger = utils.GetLogger("termkit")

var (
	ErrInvalidColor      = errors.New("color must be within [0, 7]")
	ErrInvalidFormatName = errors.New("unknown preview format")
	ErrConflictingModes  = errors.New("apply and preview are mutually exclusive")
)

// sedExpr deletes the spaces at the end of every line.
const sedExpr = "s/[ ]*$//"

type Mode int

const (
	// ModeNone only lists the selected files.
	ModeNone Mode = iota
	ModeApply
	ModePreview
)

func (m Mode) String() string {
	switch m {
	case ModeApply:
		return "apply"
	case ModePreview:
		return "preview"
	default:
		return "none"
	}
}

// ModeOf maps the apply and preview switches to a Mode.
func ModeOf(apply, preview bool) (Mode, error) {
	switch {
	case apply && preview:
		return ModeNone, ErrConflictingModes
	case apply:
		return ModeApply, nil
	case preview:
		return ModePreview, nil
	default:
		return ModeNone, nil
	}
}

// Format of a preview.
type Format string

const (
	// FormatGit is the unprocessed git diff.
	FormatGit Format = "git"
	// FormatFancy is the git diff reduced to the changed lines.
	FormatFancy Format = "fancy"
	// FormatSed is the trimmed file content as printed by sed.
	FormatSed Format = "sed"
)

// Formats lists the preview formats in the order shown to users.
var Formats = []Format{FormatGit, FormatFancy, FormatSed}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidFormatName, "%q", s)
}

const (
	DefaultFormat = FormatFancy
	// DefaultColor is red on most terminals.
	DefaultColor = 1
)

// Config of a Trimmer.
type Config struct {
	Mode     Mode
	Format   Format
	Color    int
	Excludes []string
	// Quiet hides the progress bar of apply.
	Quiet bool
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Color < 0 || c.Color > 7 {
		return errors.Wrapf(ErrInvalidColor, "got %d", c.Color)
	}
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	for _, p := range c.Excludes {
		if _, err := glob.Compile(p); err != nil {
			return errors.Wrapf(err, "exclude pattern %q", p)
		}
	}
	return nil
}

// Trimmer applies or previews the trim on a set of files.
type Trimmer struct {
	conf     Config
	fs       afero.Fs
	runner   Runner
	out      io.Writer
	excludes []glob.Glob
}

// NewTrimmer validates conf and creates a Trimmer writing previews to out.
func NewTrimmer(conf Config, fs afero.Fs, runner Runner, out io.Writer) (*Trimmer, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	t := &Trimmer{conf: conf, fs: fs, runner: runner, out: out}
	for _, p := range conf.Excludes {
		t.excludes = append(t.excludes, glob.MustCompile(p))
	}
	return t, nil
}

// Select drops excluded and missing paths.
func (t *Trimmer) Select(paths []string) []string {
	var files []string
next:
	for _, p := range paths {
		for _, g := range t.excludes {
			if g.Match(p) {
				logger.Debugf("skip excluded %s", p)
				continue next
			}
		}
		if !utils.Exists(t.fs, p) {
			logger.Warnf("%s is not a regular file, skipped", p)
			continue
		}
		files = append(files, p)
	}
	return files
}

// Run performs the configured mode on files.
func (t *Trimmer) Run(ctx context.Context, files []string) error {
	switch t.conf.Mode {
	case ModeApply:
		return t.Apply(ctx, files)
	case ModePreview:
		return t.Preview(ctx, files)
	default:
		return WriteSelection(t.out, files)
	}
}

// Apply edits files in place.
func (t *Trimmer) Apply(ctx context.Context, files []string) error {
	progress, bar := utils.NewDynProgressBar("Trimming: ", t.conf.Quiet)
	bar.SetTotal(int64(len(files)), false)
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			bar.Abort(false)
			progress.Wait()
			return err
		}
		if err := t.runner.Run(ctx, nil, []string{"sed", "-i", sedExpr, f}); err != nil {
			logger.Warnf("trim %s: %s", f, err)
		} else {
			logger.Debugf("trimmed %s", f)
		}
		bar.Increment()
	}
	bar.SetTotal(-1, true)
	progress.Wait()
	return nil
}

// Preview prints what Apply would change, in the configured format.
func (t *Trimmer) Preview(ctx context.Context, files []string) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.preview(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func (t *Trimmer) preview(ctx context.Context, file string) error {
	sed := []string{"sed", sedExpr, file}
	diff := []string{"git", "--no-pager", "diff", "--color", "--no-index", "--", "-", file}

	var err error
	switch t.conf.Format {
	case FormatSed:
		err = t.runner.Run(ctx, t.out, sed)
	case FormatGit:
		err = t.runner.Run(ctx, t.out, sed, diff)
	case FormatFancy:
		var buf bytes.Buffer
		err = t.runner.Run(ctx, &buf, sed, diff)
		if ferr := FancyFilter(&buf, t.out, t.conf.Color); ferr != nil {
			return ferr
		}
	}
	// git diff exits with 1 when the file has trailing spaces
	if err != nil && exitCode(err) != 1 {
		logger.Warnf("preview %s: %s", file, err)
	}
	return nil
}

// WriteSelection lists the files that would be processed.
func WriteSelection(w io.Writer, files []string) error {
	_, err := fmt.Fprint(w, color.New(color.Bold).Sprint("files selected:"))
	for _, f := range files {
		if err != nil {
			break
		}
		_, err = fmt.Fprint(w, "\n\t"+f)
	}
	if err == nil {
		_, err = fmt.Fprint(w, "\n\n")
	}
	return err
}
