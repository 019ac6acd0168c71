// cmd/trim.go

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"termkit/pkg/trim"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"golang.org/x/sys/unix"
)

func trimFlags() *cli.Command {
	formats := make([]string, len(trim.Formats))
	for i, f := range trim.Formats {
		formats[i] = string(f)
	}
	return &cli.Command{
		Name:      "trim",
		Usage:     "trim trailing spaces from files using sed",
		ArgsUsage: "FILE ...",
		Description: `Without --apply or --preview the selected files are only listed.
--format=git also calls git, --format=fancy filters the git diff down to the changed lines.`,
		Action: trimFiles,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "apply",
				Aliases: []string{"a"},
				Usage:   "trim all files in place",
			},
			&cli.BoolFlag{
				Name:    "preview",
				Aliases: []string{"p"},
				Usage:   "highlight the trailing spaces that apply would trim",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(trim.DefaultFormat),
				Usage:   "preview format (" + strings.Join(formats, ", ") + ")",
			},
			&cli.IntFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Value:   trim.DefaultColor,
				Usage:   "background color 0-7 of the trailing spaces in the fancy preview",
			},
			&cli.StringSliceFlag{
				Name:    "exclude",
				Aliases: []string{"e"},
				Usage:   "skip files matching the glob pattern",
			},
			&cli.BoolFlag{
				Name:  "no-progress",
				Usage: "hide the progress bar of apply",
			},
		},
	}
}

func trimConfig(c *cli.Context) (trim.Config, error) {
	mode, err := trim.ModeOf(c.Bool("apply"), c.Bool("preview"))
	if err != nil {
		return trim.Config{}, err
	}
	format, err := trim.ParseFormat(c.String("format"))
	if err != nil {
		return trim.Config{}, err
	}
	return trim.Config{
		Mode:     mode,
		Format:   format,
		Color:    c.Int("color"),
		Excludes: c.StringSlice("exclude"),
		Quiet:    c.Bool("no-progress") || c.Bool("quiet"),
	}, nil
}

func trimFiles(c *cli.Context) error {
	if c.Args().Len() < 1 {
		return fmt.Errorf("FILE is needed")
	}
	conf, err := trimConfig(c)
	if err != nil {
		return err
	}
	t, err := trim.NewTrimmer(conf, afero.NewOsFs(), &trim.ExecRunner{}, os.Stdout)
	if err != nil {
		return err
	}
	files := t.Select(c.Args().Slice())
	logger.Debugf("%s %d of %d files", conf.Mode, len(files), c.Args().Len())

	if conf.Mode == trim.ModeNone {
		if err := cli.ShowSubcommandHelp(c); err != nil {
			return err
		}
		fmt.Println()
	}
	ctx, stop := signal.NotifyContext(c.Context, unix.SIGINT, unix.SIGTERM)
	defer stop()
	return t.Run(ctx, files)
}
