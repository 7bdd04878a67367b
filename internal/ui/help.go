package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
	"github.com/pkg/errors"
)

// renderHelpContent renders the key reference shown in the pager
func renderHelpContent(gesture string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	entry := func(k, desc string) string {
		return fmt.Sprintf("  %s%s\n", keyStyle.Render(k), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("Emoji Menu Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Anywhere"))
	help.WriteString("\n")
	help.WriteString(entry(gesture, "Open the emoji menu"))
	help.WriteString(entry("F1", "Show this help"))
	help.WriteString(entry("Ctrl+C", "Quit"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("In the menu"))
	help.WriteString("\n")
	help.WriteString(entry("Tab", "Next control (search, category, emojis)"))
	help.WriteString(entry("Shift+Tab", "Previous control"))
	help.WriteString(entry("Alt+S", "Go to search"))
	help.WriteString(entry("Alt+T", "Go to category"))
	help.WriteString(entry("Alt+E", "Go to emoji list"))
	help.WriteString(entry("←/→", "Change category (category control)"))
	help.WriteString(entry("↑/↓", "Move through emojis"))
	help.WriteString(entry("PgUp/PgDn", "Page through emojis"))
	help.WriteString(entry("Enter", "Copy the selected emoji and close"))
	help.WriteString(entry("Esc", "Close without copying"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Searching"))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  Typing filters by name and short alias, e.g. \"heart\" or \"thumbsup\".\n"))
	help.WriteString(descStyle.Render("  The list updates shortly after you stop typing.\n"))
	help.WriteString(descStyle.Render("  The chosen category is remembered for next time."))

	return help.String()
}

// HelpOps shows help content in the ov pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps() *HelpOps {
	return &HelpOps{}
}

// SetProgram sets the program reference for terminal management
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errors.New("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return errors.Wrap(err, "failed to create pager")
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showHelp returns a command running the pager off the UI goroutine
func (h *HelpOps) showHelp(content string) tea.Cmd {
	return func() tea.Msg {
		return helpPagerMsg{err: h.ShowHelpInPager(content)}
	}
}
