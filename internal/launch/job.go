package launch

import (
	"context"
	"io"
	"os"
	"time"

	"vshell/internal/log"

	tea "github.com/charmbracelet/bubbletea"
)

// Job is one launch prepared for tea.Exec: the program suspends its
// renderer, hands the terminal streams to the job and resumes after Run.
type Job struct {
	launcher *Launcher
	path     string
	streams  streams
	err      error
}

var _ tea.ExecCommand = (*Job)(nil)

// Job returns a launch of path, or false when the file type is not
// supported, in which case nothing will be spawned.
func (l *Launcher) Job(path string) (*Job, bool) {
	if !l.Supports(path) {
		return nil, false
	}
	return &Job{
		launcher: l,
		path:     path,
		streams:  streams{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr},
	}, true
}

// Command is Job typed for callers that only hand the launch to tea.Exec.
func (l *Launcher) Command(path string) (tea.ExecCommand, bool) {
	j, ok := l.Job(path)
	if !ok {
		return nil, false
	}
	return j, true
}

// Path is the file being opened.
func (j *Job) Path() string { return j.path }

// Err is the failure recorded by Run, if any.
func (j *Job) Err() error { return j.err }

// Run launches the file. Failures are logged and recorded on the job but
// never returned: a broken viewer must not end the browsing session.
func (j *Job) Run() error {
	start := time.Now()
	j.err = j.launcher.launch(context.Background(), j.path, j.streams)
	if j.err != nil {
		log.LogWithError(j.err).Warn("Launch failed")
		return nil
	}
	log.LogWithFields(log.F("path", j.path), log.F("elapsed", time.Since(start).Round(time.Millisecond))).Info("Launch finished")
	return nil
}

func (j *Job) SetStdin(r io.Reader)  { j.streams.stdin = r }
func (j *Job) SetStdout(w io.Writer) { j.streams.stdout = w }
func (j *Job) SetStderr(w io.Writer) { j.streams.stderr = w }
