package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"emojimenu/internal/clipboard"
	"emojimenu/internal/config"
	"emojimenu/internal/dataset"
	"emojimenu/internal/feedback"
	"emojimenu/internal/ui/dialog"
	"emojimenu/internal/ui/scheduler"
	"emojimenu/internal/ui/services/selection"
	"emojimenu/internal/ui/views"
)

const (
	MsgDatasetMissing    = "Emoji library is missing or failed to load."
	MsgInitFailed        = "Error initializing emoji list."
	defaultStatusTimeout = 4 * time.Second
)

// Deps are the collaborators the model needs
type Deps struct {
	Config    *config.Config
	Store     config.Store
	Source    *dataset.Source
	Clipboard clipboard.Writer
	Announcer feedback.Announcer // extra sinks besides the status line
	Beeper    feedback.Beeper
}

// Model is the host screen. It owns the activation gesture and at most one
// open dialog.
type Model struct {
	deps      Deps
	keys      keyMap
	renderer  *views.Renderer
	sched     *scheduler.Tea
	announcer feedback.Announcer
	helpOps   *HelpOps

	dialog *dialogView

	status      string
	statusError bool
	statusSeq   int
	statusDirty bool
	// statusTimeout is how long an announcement stays on the status line
	statusTimeout time.Duration

	width  int
	height int
	help   help.Model

	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(deps Deps) *Model {
	if deps.Config == nil {
		deps.Config = config.DefaultConfig()
	}
	if deps.Store == nil {
		deps.Store = config.NewMemoryStore()
	}
	if deps.Beeper == nil {
		deps.Beeper = feedback.NewBell(nil)
	}

	m := &Model{
		deps:     deps,
		keys:     newKeyMap(deps.Config.Gesture),
		renderer: views.NewRenderer(),
		sched:    scheduler.NewTea(),
		helpOps:  NewHelpOps(),
		help:     help.New(),

		statusTimeout: defaultStatusTimeout,
	}

	sinks := feedback.Multi{feedback.AnnouncerFunc(m.setStatus)}
	if deps.Announcer != nil {
		sinks = append(sinks, deps.Announcer)
	}
	m.announcer = sinks
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.deps.Config.UISettings.OpenOnStart {
		return requestOpen
	}
	return nil
}

// requestOpen defers opening to a later Update
func requestOpen() tea.Msg {
	return openDialogMsg{}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case scheduler.FiredMsg:
		if m.sched.Fire(msg.ID) && m.dialog != nil {
			m.dialog.Sync()
		}

	case openDialogMsg:
		if !m.openDialog() && m.deps.Config.UISettings.ExitOnClose {
			cmds = append(cmds, tea.Quit)
		}

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusError = false
		}

	case helpPagerMsg:
		if msg.err != nil {
			log.Warnf("Help pager failed: %v", msg.err)
			m.announceError("Help is unavailable: " + msg.err.Error())
		}

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	default:
		if m.dialog != nil {
			cmds = append(cmds, m.dialog.Update(msg))
		}
	}

	cmds = append(cmds, m.afterUpdate()...)
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		return m.helpOps.showHelp(renderHelpContent(m.deps.Config.Gesture))
	}
	if m.dialog != nil {
		return m.dialog.HandleKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Open):
		return requestOpen
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Cancel):
		return tea.Quit
	}
	return nil
}

// afterUpdate collects the timers the dialog scheduled, tears a closed dialog
// down and arms the status line timeout
func (m *Model) afterUpdate() []tea.Cmd {
	var cmds []tea.Cmd

	if m.dialog != nil && m.dialog.Closed() {
		m.dialog = nil
		m.sched.Stop()
		log.Debug("Emoji Menu closed")
		if m.deps.Config.UISettings.ExitOnClose {
			cmds = append(cmds, tea.Quit)
		}
	}

	if cmd := m.sched.Cmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}

	if m.statusDirty {
		m.statusDirty = false
		seq := m.statusSeq
		cmds = append(cmds, tea.Tick(m.statusTimeout, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		}))
	}
	return cmds
}

// openDialog builds a fresh controller and reports whether a dialog is
// showing afterwards. A missing dataset aborts before any dialog state exists.
func (m *Model) openDialog() (opened bool) {
	if m.dialog != nil {
		return true
	}

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Opening Emoji Menu panicked: %v", r)
			m.dialog = nil
			m.sched.Stop()
			m.fail(fmt.Sprintf("Failed to open Emoji Menu: %v.", r))
			opened = false
		}
	}()

	table, categories, err := m.deps.Source.Get()
	if err != nil {
		log.Errorf("Emoji dataset unavailable: %v", err)
		m.fail(MsgDatasetMissing)
		return false
	}

	debounce := time.Duration(m.deps.Config.DebounceMS) * time.Millisecond
	ctrl := dialog.NewController(dialog.Options{
		Table:      table,
		Categories: categories,
		Selection:  selection.NewStore(m.deps.Store, categories),
		Scheduler:  m.sched,
		Committer:  dialog.NewCommitter(m.deps.Clipboard, m.announcer, m.deps.Beeper),
		Debounce:   debounce,
	})
	if err := ctrl.Start(); err != nil {
		log.Errorf("Emoji Menu failed to start: %v", err)
		m.sched.Stop()
		m.announceError(MsgInitFailed)
		return false
	}

	m.dialog = newDialogView(ctrl, m.keys, m.deps.Config.UISettings.ListHeight)
	log.Debugf("Emoji Menu opened with %d emojis in %d categories", table.Len(), len(categories))
	return true
}

func (m *Model) fail(message string) {
	m.announceError(message)
	m.deps.Beeper.Beep(feedback.FailureFrequency, feedback.FailureDuration)
}

func (m *Model) announceError(message string) {
	m.announcer.Announce(message)
	m.statusError = true
}

// setStatus is the status line announcement sink
func (m *Model) setStatus(text string) {
	m.status = text
	m.statusError = false
	m.statusSeq++
	m.statusDirty = true
}

// DialogOpen reports whether the dialog is showing
func (m *Model) DialogOpen() bool {
	return m.dialog != nil
}

// Status returns the current status line text
func (m *Model) Status() string {
	return m.status
}

// View renders the UI
func (m *Model) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	if m.dialog == nil {
		body := m.renderer.RenderHost(views.HostState{Gesture: m.deps.Config.Gesture})
		return m.renderer.Frame(body, m.status, m.statusError, m.help.ShortHelpView(m.keys.hostHelp()))
	}

	body := m.renderer.RenderDialog(m.dialog.State(width))
	helpView := m.help.ShortHelpView(m.keys.dialogHelp())
	return m.renderer.Frame(body, m.status, m.statusError, helpView)
}
