package tui

import (
	"vshell/internal/browse"
	"vshell/internal/log"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Power is the activity side of the power session. Begin powers on and
// holds the countdown; Arm restarts it; Stop cancels it for good.
type Power interface {
	Begin()
	Arm()
	Stop()
}

// Launcher prepares a file launch for tea.Exec, or reports that the file
// type is not supported.
type Launcher interface {
	Command(path string) (tea.ExecCommand, bool)
}

// Options configures a Model.
type Options struct {
	Root     string
	Hidden   string
	Power    Power
	Launcher Launcher
	Keys     *KeyMap
}

type launchDoneMsg struct {
	path string
}

// Model is the browser. Each entered directory pushes a frame; backing out
// pops it, and popping the root frame ends the program.
type Model struct {
	root     string
	hidden   string
	stack    []*browse.Frame
	width    int
	height   int
	keys     KeyMap
	power    Power
	launcher Launcher
	pager    paginator.Model

	launching bool
	quitting  bool
}

// New creates a model showing the root directory.
func New(opts Options) *Model {
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}
	hidden := opts.Hidden
	if hidden == "" {
		hidden = "."
	}

	m := &Model{
		root:     opts.Root,
		hidden:   hidden,
		width:    defaultWidth,
		height:   defaultHeight,
		keys:     keys,
		power:    opts.Power,
		launcher: opts.Launcher,
		pager:    paginator.New(),
	}
	m.push(opts.Root)
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.dispatch(m.keys.action(msg))
	case tea.MouseMsg:
		return m.dispatch(mouseAction(msg))
	case launchDoneMsg:
		m.launching = false
		if m.power != nil {
			m.power.Arm()
		}
		log.LogWithFields(log.F("path", msg.path)).Debug("Back from launch")
		return m, nil
	}
	return m, nil
}

func (m *Model) dispatch(act action) (tea.Model, tea.Cmd) {
	switch act {
	case actNone:
		return m, nil
	case actQuit:
		return m.quit()
	}

	if m.power != nil {
		m.power.Begin()
	}

	frame := m.top()
	switch act {
	case actUp:
		frame.Up()
	case actDown:
		frame.Down()
	case actPageBack:
		frame.PageBack(m.pageSize())
	case actPageForward:
		frame.PageForward(m.pageSize())
	case actSelect:
		if cmd := m.selectEntry(frame); cmd != nil {
			// The countdown restarts when the launch returns
			return m, cmd
		}
	case actBack:
		m.stack = m.stack[:len(m.stack)-1]
		if len(m.stack) == 0 {
			return m.quit()
		}
	}

	if m.power != nil {
		m.power.Arm()
	}
	return m, nil
}

func (m *Model) selectEntry(frame *browse.Frame) tea.Cmd {
	entry, ok := frame.Selected()
	if !ok {
		return nil
	}
	path := frame.PathOf(entry)
	if entry.IsDir {
		m.push(path)
		return nil
	}
	if m.launcher == nil {
		return nil
	}
	cmd, ok := m.launcher.Command(path)
	if !ok {
		log.LogWithFields(log.F("path", path)).Debug("No command for file type")
		return nil
	}
	m.launching = true
	log.LogWithFields(log.F("path", path)).Info("Launching")
	return tea.Exec(cmd, func(error) tea.Msg {
		return launchDoneMsg{path: path}
	})
}

func (m *Model) push(dir string) {
	frame := browse.Open(m.root, dir, m.hidden)
	if frame.Err != nil {
		log.LogWithError(frame.Err).Warn("Showing empty directory")
	}
	m.stack = append(m.stack, frame)
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	if m.power != nil {
		m.power.Stop()
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) top() *browse.Frame {
	return m.stack[len(m.stack)-1]
}

// pageSize is the number of rows between header and footer.
func (m *Model) pageSize() int {
	return max(1, m.height-2)
}

// Frame returns the directory level being shown.
func (m *Model) Frame() *browse.Frame {
	if len(m.stack) == 0 {
		return nil
	}
	return m.top()
}

// Depth is the number of directory levels entered, the root being 1.
func (m *Model) Depth() int {
	return len(m.stack)
}

// Launching reports whether a launched program is still running.
func (m *Model) Launching() bool {
	return m.launching
}

// Quitting reports whether the user has left the root level.
func (m *Model) Quitting() bool {
	return m.quitting
}
