// cmd/timer.go

package main

import (
	"os"
	"os/signal"
	"time"

	"termkit/pkg/display"
	"termkit/pkg/duration"
	"termkit/pkg/tracker"
	"termkit/pkg/utils"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/sys/unix"
)

func timerFlags() *cli.Command {
	return &cli.Command{
		Name:   "timer",
		Usage:  "show the elapsed time until interrupted (CTRL+C), suspend (CTRL+Z) to pause",
		Action: timer,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "initial-time",
				Aliases: []string{"i"},
				Value:   duration.DefaultInitial,
				Usage:   "initial time in the format: [D days, ]HH:MM:SS.MICROS",
			},
			&cli.StringFlag{
				Name:    "output-format",
				Aliases: []string{"o"},
				Value:   duration.DefaultTemplate,
				Usage:   "output template with {days}, {hours}, {minutes}, {seconds} and {microseconds}",
			},
			&cli.Float64Flag{
				Name:    "update-interval",
				Aliases: []string{"u"},
				Value:   tracker.DefaultUpdateInterval.Seconds(),
				Usage:   "sleep duration between prints in seconds",
			},
			&cli.Float64Flag{
				Name:    "suspend-margin",
				Aliases: []string{"s"},
				Usage:   "if a print comes this many seconds late, assume the process was suspended (default: the update interval)",
			},
			&cli.BoolFlag{
				Name:    "final-only",
				Aliases: []string{"f"},
				Usage:   "print only once when interrupted",
			},
		},
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func timerConfig(c *cli.Context) (tracker.Config, time.Duration, error) {
	conf := tracker.Config{UpdateInterval: seconds(c.Float64("update-interval"))}
	if c.IsSet("suspend-margin") {
		margin := seconds(c.Float64("suspend-margin"))
		conf.SuspendMargin = &margin
	}
	initial, err := duration.Parse(c.String("initial-time"))
	if err != nil {
		return conf, 0, errors.WithMessage(err, "initial time")
	}
	return conf, initial.Std(), nil
}

func timer(c *cli.Context) error {
	conf, initial, err := timerConfig(c)
	if err != nil {
		return err
	}
	term, err := display.NewTerminal(os.Stdout, display.Options{
		Template:  c.String("output-format"),
		FinalOnly: c.Bool("final-only"),
		Plain:     !utils.IsTerminal(os.Stdout),
	})
	if err != nil {
		return errors.WithMessage(err, "output format")
	}
	clock := tracker.RealClock{}
	t, err := tracker.New(conf, initial, clock.Now())
	if err != nil {
		return err
	}

	run := logger.WithField("run", uuid.New().String())
	run.Debugf("start at %s, update every %s, suspend threshold %s",
		duration.FromStd(initial), conf.UpdateInterval, t.Threshold())

	ctx, stop := signal.NotifyContext(c.Context, unix.SIGINT, unix.SIGTERM)
	defer stop()
	elapsed := t.Run(ctx, clock, term)

	run.Debugf("stopped at %s, process up for %s", duration.FromStd(elapsed), utils.Clock().Round(time.Millisecond))
	return nil
}
