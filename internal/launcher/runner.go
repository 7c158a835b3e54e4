package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrExecutableNotFound indicates the launch itself failed because the
// executable was missing. This is distinct from ErrInvalidExecutable: the
// pre-check can pass and the file disappear before the process starts.
var ErrExecutableNotFound = errors.New("executable not found at launch")

// ExitError reports a process that ran to completion but returned a non-zero
// exit code. Tail holds the last lines of its merged output for diagnostics.
type ExitError struct {
	Code int
	Tail []string
}

func (e *ExitError) Error() string {
	if len(e.Tail) == 0 {
		return fmt.Sprintf("simulation exited with code %d", e.Code)
	}
	return fmt.Sprintf("simulation exited with code %d:\n%s", e.Code, strings.Join(e.Tail, "\n"))
}

// tailLines is how much merged output an ExitError retains.
const tailLines = 20

// LineFunc receives each line of the process's merged output, in emit order.
type LineFunc func(line string)

// Runner launches the simulation binary and streams its console output.
// There is no timeout and no kill path: a hung simulation hangs the read
// loop, and the caller's context only matters before the read loop finishes.
type Runner struct {
	log *logrus.Logger
}

// NewRunner creates a runner. A nil logger falls back to the logrus
// standard logger.
func NewRunner(log *logrus.Logger) *Runner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{log: log}
}

// Run starts the command with stdout and stderr merged into one pipe, calls
// onLine for every line until the stream closes, then waits for the exit
// status. The merged pipe preserves the interleaving the OS produced, and
// the final Wait establishes the happens-before edge the caller relies on:
// once Run returns nil, the simulation has exited and its output file is
// fully written.
//
// Failure classification:
//   - ErrExecutableNotFound: the binary vanished between check and launch
//   - *ExitError: the process ran and returned a non-zero code
//   - anything else wrapped: OS-level launch or read fault
func (r *Runner) Run(ctx context.Context, command *Command, onLine LineFunc) error {
	cmd := exec.CommandContext(ctx, command.Path, command.Args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open output pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout // merge, preserving OS pipe interleaving

	r.log.WithFields(logrus.Fields{
		"path": command.Path,
		"args": command.Args,
	}).Debug("starting simulation process")

	if err := cmd.Start(); err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrExecutableNotFound, command.Path)
		}
		return fmt.Errorf("failed to start simulation: %w", err)
	}

	r.log.WithField("pid", cmd.Process.Pid).Debug("simulation process started")

	var tail []string
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		tail = append(tail, line)
		if len(tail) > tailLines {
			tail = tail[1:]
		}
		if onLine != nil {
			onLine(line)
		}
	}
	if err := scanner.Err(); err != nil {
		// The pipe broke mid-stream; still reap the child before reporting.
		cmd.Wait()
		return fmt.Errorf("failed to read simulation output: %w", err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.log.WithField("code", exitErr.ExitCode()).Debug("simulation exited with error")
			return &ExitError{Code: exitErr.ExitCode(), Tail: tail}
		}
		return fmt.Errorf("simulation wait failed: %w", err)
	}

	r.log.Debug("simulation exited cleanly")
	return nil
}
