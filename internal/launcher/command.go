package launcher

import (
	"errors"
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"
)

// ErrInvalidExecutable indicates the executable path failed the pre-launch
// existence check. The check is advisory only: the file can still vanish
// between the check and the launch, which Runner.Run reports separately.
var ErrInvalidExecutable = errors.New("executable does not exist")

// ErrDuplicateParam indicates the same flag name was supplied twice in one
// invocation.
var ErrDuplicateParam = errors.New("duplicate parameter name")

// Command is a fully assembled invocation of the simulation binary.
type Command struct {
	Path string   // executable path, argv[0]
	Args []string // remaining argv entries, in order
}

// Argv returns the complete argument vector including the executable path.
func (c *Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Path)
	argv = append(argv, c.Args...)
	return argv
}

// String renders the command the way it would be typed in a shell.
func (c *Command) String() string {
	return shellquote.Join(c.Argv()...)
}

// BuildCommand assembles the argument vector for one simulation run:
//
//	<exe> --<name1> <value1> ... --<nameN> <valueN> [extra...] --csv_filename <outputPath>
//
// extraArgs is a free-form string split with shell quoting rules; it lets the
// user pass flags the launcher does not know about. Parameter values are not
// validated - malformed numbers are the simulation's problem to report.
func BuildCommand(exePath string, params []Param, extraArgs, outputPath string) (*Command, error) {
	if exePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidExecutable)
	}
	if _, err := os.Stat(exePath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExecutable, exePath)
	}

	seen := make(map[string]bool, len(params))
	args := make([]string, 0, 2*len(params)+2)
	for _, p := range params {
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateParam, p.Name)
		}
		seen[p.Name] = true
		args = append(args, "--"+p.Name, p.Value)
	}

	if extraArgs != "" {
		words, err := shellquote.Split(extraArgs)
		if err != nil {
			return nil, fmt.Errorf("failed to parse extra arguments: %w", err)
		}
		args = append(args, words...)
	}

	args = append(args, "--csv_filename", outputPath)

	return &Command{Path: exePath, Args: args}, nil
}
