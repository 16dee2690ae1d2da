// Package launch opens files with the external program registered for
// their extension, bracketed by the input-remapping helper.
package launch

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"vshell/internal/errors"
	"vshell/internal/log"
)

// Table maps a lowercase extension without the dot to an argv prefix.
type Table map[string][]string

// Extension is the text after the last dot of path's base name, lowercased.
// A name without a dot is its own extension.
func Extension(path string) string {
	name := filepath.Base(path)
	return strings.ToLower(name[strings.LastIndex(name, ".")+1:])
}

// Lookup returns the argv prefix for path.
func (t Table) Lookup(path string) ([]string, bool) {
	argv, ok := t[Extension(path)]
	if !ok || len(argv) == 0 {
		return nil, false
	}
	return argv, true
}

// Runner starts a process and waits for it.
type Runner interface {
	Run(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) error
}

// ExecRunner runs processes with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Helper is the pair of commands run around every launch.
type Helper struct {
	Enable  []string
	Disable []string
}

// Launcher opens files.
type Launcher struct {
	table  Table
	helper Helper
	runner Runner
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithRunner replaces the process runner.
func WithRunner(r Runner) Option {
	return func(l *Launcher) { l.runner = r }
}

// New creates a launcher for table.
func New(table Table, helper Helper, opts ...Option) *Launcher {
	l := &Launcher{
		table:  table,
		helper: helper,
		runner: ExecRunner{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Supports reports whether path has a registered command.
func (l *Launcher) Supports(path string) bool {
	_, ok := l.table.Lookup(path)
	return ok
}

type streams struct {
	stdin          io.Reader
	stdout, stderr io.Writer
}

// Launch opens path and waits until the program exits, using the process's
// own standard streams for the helper.
func (l *Launcher) Launch(ctx context.Context, path string) error {
	return l.launch(ctx, path, streams{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})
}

func (l *Launcher) launch(ctx context.Context, path string, s streams) error {
	argv, ok := l.table.Lookup(path)
	if !ok {
		return errors.NewLaunchError("unsupported file type", path, nil, errors.UnsupportedFileType, nil)
	}

	real, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errors.NewLaunchError("cannot resolve path", path, nil, errors.LaunchFailed, err)
	}
	if abs, err := filepath.Abs(real); err == nil {
		real = abs
	}

	command := make([]string, 0, len(argv)+1)
	command = append(command, argv...)
	command = append(command, real)

	var helperErr error
	if len(l.helper.Enable) > 0 {
		if err := l.runner.Run(ctx, l.helper.Enable, nil, s.stdout, s.stderr); err != nil {
			helperErr = errors.NewLaunchError("helper failed", real, l.helper.Enable, errors.LaunchFailed, err)
			log.LogWithError(helperErr).Warn("Input helper not enabled")
		}
	}

	// Program output would land on top of the browser, so it is dropped
	runErr := l.runner.Run(ctx, command, s.stdin, io.Discard, io.Discard)

	if len(l.helper.Disable) > 0 {
		if err := l.runner.Run(ctx, l.helper.Disable, nil, s.stdout, s.stderr); err != nil && helperErr == nil {
			helperErr = errors.NewLaunchError("helper failed", real, l.helper.Disable, errors.LaunchFailed, err)
			log.LogWithError(helperErr).Warn("Input helper not disabled")
		}
	}

	if runErr != nil {
		return errors.NewLaunchError("command failed", real, command, errors.LaunchFailed, runErr)
	}
	return helperErr
}
