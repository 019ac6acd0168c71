// pkg/trim/runner.go

package trim

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Runner runs a pipeline of commands, each stage reading the output of the
// previous one. The output of the last stage goes to out.
type Runner interface {
	Run(ctx context.Context, out io.Writer, stages ...[]string) error
}

// ExecRunner runs the stages as subprocesses.
type ExecRunner struct {
	// Stderr of every stage, os.Stderr when nil.
	Stderr io.Writer
}

var _ Runner = (*ExecRunner)(nil)

func (r *ExecRunner) Run(ctx context.Context, out io.Writer, stages ...[]string) error {
	if len(stages) == 0 {
		return nil
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	if out == nil {
		out = io.Discard
	}

	cmds := make([]*exec.Cmd, len(stages))
	for i, argv := range stages {
		if len(argv) == 0 {
			return errors.Errorf("stage %d is empty", i)
		}
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		cmd.Stderr = stderr
		if i > 0 {
			pipe, err := cmds[i-1].StdoutPipe()
			if err != nil {
				return errors.Wrapf(err, "pipe into %s", argv[0])
			}
			cmd.Stdin = pipe
		}
		cmds[i] = cmd
	}
	cmds[len(cmds)-1].Stdout = out

	for i, cmd := range cmds {
		if err := cmd.Start(); err != nil {
			// reap the stages already running
			for _, started := range cmds[:i] {
				_ = started.Process.Kill()
				_ = started.Wait()
			}
			return errors.Wrapf(err, "start %s", commandLine(stages[i]))
		}
	}
	var first error
	for i, cmd := range cmds {
		if err := cmd.Wait(); err != nil && first == nil {
			first = errors.Wrapf(err, "%s", commandLine(stages[i]))
		}
	}
	return first
}

func commandLine(argv []string) string {
	return strings.Join(argv, " ")
}

// exitCode returns the exit status carried by err, or -1.
func exitCode(err error) int {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}
