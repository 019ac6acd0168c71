// cmd/main_test.go

package main

import (
	"testing"
	"time"

	"termkit/pkg/tracker"
	"termkit/pkg/trim"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// runWith runs the app with the action of command name replaced by action.
func runWith(t *testing.T, name string, action cli.ActionFunc, args ...string) {
	app := newApp()
	for _, cmd := range app.Commands {
		if cmd.Name == name {
			cmd.Action = action
		}
	}
	require.NoError(t, app.Run(append([]string{"termkit"}, args...)))
}

func TestTimerConfigDefaults(t *testing.T) {
	var conf tracker.Config
	var initial time.Duration
	var err error
	runWith(t, "timer", func(c *cli.Context) error {
		conf, initial, err = timerConfig(c)
		return nil
	}, "timer")

	require.NoError(t, err)
	assert.Equal(t, tracker.DefaultUpdateInterval, conf.UpdateInterval)
	assert.Nil(t, conf.SuspendMargin)
	assert.Equal(t, 2*tracker.DefaultUpdateInterval, conf.Threshold())
	assert.Zero(t, initial)
}

func TestTimerConfigFlags(t *testing.T) {
	var conf tracker.Config
	var initial time.Duration
	var err error
	runWith(t, "timer", func(c *cli.Context) error {
		conf, initial, err = timerConfig(c)
		return nil
	}, "timer", "-i", "1 day, 1:30:0.5", "-u", "0.5", "-s", "0")

	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, conf.UpdateInterval)
	require.NotNil(t, conf.SuspendMargin)
	assert.Equal(t, time.Duration(0), *conf.SuspendMargin)
	assert.Equal(t, 25*time.Hour+30*time.Minute+5*time.Microsecond, initial)
}

func TestTimerConfigBadInitial(t *testing.T) {
	var err error
	runWith(t, "timer", func(c *cli.Context) error {
		_, _, err = timerConfig(c)
		return nil
	}, "timer", "--initial-time", "1:2:3:4")
	assert.ErrorContains(t, err, "initial time")
}

func TestTimerRejectsNegativeMargin(t *testing.T) {
	app := newApp()
	err := app.Run([]string{"termkit", "timer", "-s", "-1"})
	assert.True(t, errors.Is(err, tracker.ErrNegativeMargin), "got %v", err)
}

func TestTrimConfig(t *testing.T) {
	var conf trim.Config
	var err error
	action := func(c *cli.Context) error {
		conf, err = trimConfig(c)
		return nil
	}

	runWith(t, "trim", action, "--quiet", "trim", "-p", "-f", "git", "-c", "3", "-e", "*.md", "-e", "vendor/*", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, trim.Config{
		Mode:     trim.ModePreview,
		Format:   trim.FormatGit,
		Color:    3,
		Excludes: []string{"*.md", "vendor/*"},
		Quiet:    true,
	}, conf)

	runWith(t, "trim", action, "trim", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, trim.ModeNone, conf.Mode)
	assert.Equal(t, trim.DefaultFormat, conf.Format)
	assert.Equal(t, trim.DefaultColor, conf.Color)
	assert.False(t, conf.Quiet)

	runWith(t, "trim", action, "trim", "-a", "-p", "a.txt")
	assert.True(t, errors.Is(err, trim.ErrConflictingModes), "got %v", err)

	runWith(t, "trim", action, "trim", "-f", "html", "a.txt")
	assert.True(t, errors.Is(err, trim.ErrInvalidFormatName), "got %v", err)
}

func TestTrimNeedsFiles(t *testing.T) {
	err := newApp().Run([]string{"termkit", "trim", "-p"})
	assert.ErrorContains(t, err, "FILE is needed")
}
