package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"emojimenu/internal/domain"
)

// Focus names the dialog control receiving keys
type Focus int

const (
	FocusSearch Focus = iota
	FocusCategory
	FocusList
)

// DialogState contains all the state needed to render the dialog
type DialogState struct {
	Width        int
	Focus        Focus
	SearchView   string
	Categories   []string
	Category     int
	Items        []domain.VisibleItem
	Selected     int
	Fault        bool
	VisibleStart int
	VisibleEnd   int
	Placeholder  string
}

// HostState contains the state of the screen shown while no dialog is open
type HostState struct {
	Gesture string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Frame wraps a body with the title, the status line and the help line
func (r *Renderer) Frame(body, status string, statusIsError bool, help string) string {
	content := &strings.Builder{}
	content.WriteString(r.styles.Title.Render("Emoji Menu"))
	content.WriteString("\n")
	content.WriteString(body)
	if status != "" {
		style := r.styles.Status
		if statusIsError {
			style = style.Foreground(r.styles.StatusError.GetForeground())
		}
		content.WriteString("\n")
		content.WriteString(style.Render(status))
	}
	if help != "" {
		content.WriteString("\n\n")
		content.WriteString(r.styles.Help.Render(help))
	}
	return r.styles.Main.Render(content.String())
}

// RenderHost renders the idle screen
func (r *Renderer) RenderHost(state HostState) string {
	return fmt.Sprintf("Press %s to search emojis.", r.styles.FocusedLabel.Render(state.Gesture))
}

// RenderDialog renders the search field, the category choice and the list
func (r *Renderer) RenderDialog(state DialogState) string {
	content := &strings.Builder{}

	content.WriteString(r.label("Search:", state.Focus == FocusSearch))
	content.WriteString("\n")
	content.WriteString(state.SearchView)
	content.WriteString("\n\n")

	content.WriteString(r.label("Category:", state.Focus == FocusCategory))
	content.WriteString("\n")
	content.WriteString(r.renderCategories(state))
	content.WriteString("\n\n")

	content.WriteString(r.label(fmt.Sprintf("Emojis (%d):", len(state.Items)), state.Focus == FocusList))
	content.WriteString("\n")
	content.WriteString(r.renderList(state))

	return content.String()
}

func (r *Renderer) label(text string, focused bool) string {
	if focused {
		return r.styles.FocusedLabel.Render("▸ " + text)
	}
	return r.styles.Label.Render("  " + text)
}

// renderCategories lays the radio choices out in rows no wider than the screen
func (r *Renderer) renderCategories(state DialogState) string {
	width := state.Width - 6 // main padding plus a margin
	if width < 20 {
		width = 20
	}

	var lines []string
	line := ""
	for i, name := range state.Categories {
		var choice string
		if i == state.Category {
			choice = r.styles.RadioChecked.Render("(•) " + name)
		} else {
			choice = r.styles.Radio.Render("( ) " + name)
		}
		if line != "" && lipgloss.Width(line)+2+lipgloss.Width(choice) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += "  "
		}
		line += choice
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderList(state DialogState) string {
	if state.Fault {
		return r.styles.StatusError.Render("  " + state.Placeholder)
	}
	if len(state.Items) == 0 {
		return r.styles.Dim.Render("  No matching emojis")
	}

	var lines []string
	if state.VisibleStart > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", state.VisibleStart)))
	}
	for i := state.VisibleStart; i < state.VisibleEnd && i < len(state.Items); i++ {
		item := state.Items[i]
		row := r.styles.Glyph.Render(item.Character) + item.Name
		if i == state.Selected {
			lines = append(lines, r.styles.SelectionBg.Render("> "+row))
		} else {
			lines = append(lines, "  "+row)
		}
	}
	if rest := len(state.Items) - state.VisibleEnd; rest > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", rest)))
	}
	return strings.Join(lines, "\n")
}
