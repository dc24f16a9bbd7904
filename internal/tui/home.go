package tui

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qorex-scitech/lazo/internal/launch"
)

// CreateFunc creates (or reopens) the project. It returns a status line and
// the satellite command that takes over the terminal; a nil command only
// shows the status.
type CreateFunc func(m launch.Module, name, base string) (string, *exec.Cmd, error)

// CreatedMsg reports the outcome of a CreateFunc call.
type CreatedMsg struct {
	Status string
	Cmd    *exec.Cmd
	Err    error
}

// SatelliteExitedMsg is sent when a satellite hands the terminal back.
type SatelliteExitedMsg struct {
	Err error
}

const (
	fieldName = iota
	fieldBase
)

// Home is the launcher home screen: one entry per module and a project
// initialization form.
type Home struct {
	modules  []launch.Module
	selected int

	formOpen bool
	pending  launch.Module
	focus    int
	name     textinput.Model
	base     textinput.Model

	status string
	err    error

	create CreateFunc
	styles Styles
	width  int
}

// NewHome creates the home screen. baseDir pre-fills the base folder.
func NewHome(baseDir string, create CreateFunc) *Home {
	name := textinput.New()
	name.Placeholder = "project name"
	name.CharLimit = 64

	base := textinput.New()
	base.Placeholder = "base folder"
	base.SetValue(baseDir)

	return &Home{
		modules: launch.Modules(),
		name:    name,
		base:    base,
		create:  create,
		styles:  DefaultStyles(),
	}
}

// Selected returns the highlighted module.
func (h *Home) Selected() launch.Module {
	return h.modules[h.selected]
}

// FormOpen reports whether the initialization form is shown.
func (h *Home) FormOpen() bool {
	return h.formOpen
}

// Status returns the last status line and error.
func (h *Home) Status() (string, error) {
	return h.status, h.err
}

// CanSubmit reports whether both the name and base folder are filled in.
func (h *Home) CanSubmit() bool {
	return strings.TrimSpace(h.name.Value()) != "" && h.base.Value() != ""
}

// Init implements tea.Model.
func (h *Home) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (h *Home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		return h, nil
	case CreatedMsg:
		h.status, h.err = msg.Status, msg.Err
		if msg.Err != nil || msg.Cmd == nil {
			return h, nil
		}
		return h, tea.ExecProcess(msg.Cmd, func(err error) tea.Msg {
			return SatelliteExitedMsg{Err: err}
		})
	case SatelliteExitedMsg:
		if msg.Err != nil {
			h.err = fmt.Errorf("satellite exited: %w", msg.Err)
		}
		return h, nil
	case tea.KeyMsg:
		if h.formOpen {
			return h.updateForm(msg)
		}
		return h.updateHome(msg)
	}
	return h, nil
}

func (h *Home) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit(msg) {
		return h, tea.Quit
	}
	switch msg.String() {
	case "left", "h", "shift+tab":
		h.selected = (h.selected + len(h.modules) - 1) % len(h.modules)
	case "right", "l", "tab":
		h.selected = (h.selected + 1) % len(h.modules)
	case "enter":
		return h, h.openForm()
	}
	return h, nil
}

func (h *Home) openForm() tea.Cmd {
	h.formOpen = true
	h.pending = h.Selected()
	h.status, h.err = "", nil
	return h.setFocus(fieldName)
}

func (h *Home) closeForm() {
	h.formOpen = false
	h.name.Blur()
	h.base.Blur()
}

func (h *Home) setFocus(field int) tea.Cmd {
	h.focus = field
	if field == fieldName {
		h.base.Blur()
		return h.name.Focus()
	}
	h.name.Blur()
	return h.base.Focus()
}

func (h *Home) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return h, tea.Quit
	case "esc":
		h.closeForm()
		return h, nil
	case "tab", "shift+tab", "up", "down":
		return h, h.setFocus(1 - h.focus)
	case "enter":
		if h.CanSubmit() {
			return h, h.submit()
		}
		if strings.TrimSpace(h.name.Value()) == "" {
			return h, h.setFocus(fieldName)
		}
		return h, h.setFocus(fieldBase)
	}

	var cmd tea.Cmd
	if h.focus == fieldName {
		h.name, cmd = h.name.Update(msg)
	} else {
		h.base, cmd = h.base.Update(msg)
	}
	return h, cmd
}

func (h *Home) submit() tea.Cmd {
	module := h.pending
	name := strings.TrimSpace(h.name.Value())
	base := h.base.Value()
	create := h.create

	h.closeForm()
	h.name.SetValue("")

	if create == nil {
		return nil
	}
	return func() tea.Msg {
		status, cmd, err := create(module, name, base)
		return CreatedMsg{Status: status, Cmd: cmd, Err: err}
	}
}

// View implements tea.Model.
func (h *Home) View() string {
	var b strings.Builder

	b.WriteString(h.styles.Title.Render("LAZO"))
	b.WriteString(h.styles.Muted.Render("  visual modeling suite"))
	b.WriteString("\n\n")

	buttons := make([]string, 0, len(h.modules))
	for i, m := range h.modules {
		style := h.styles.Button
		if i == h.selected {
			style = h.styles.Selected
		}
		buttons = append(buttons, style.Render(m.Label()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, buttons...))
	b.WriteString("\n\n")

	if h.formOpen {
		b.WriteString(h.viewForm())
		b.WriteString("\n")
	}

	switch {
	case h.err != nil:
		b.WriteString(h.styles.Critical.Render("error: " + h.err.Error()))
		b.WriteString("\n")
	case h.status != "":
		b.WriteString(h.styles.Live.Render(h.status))
		b.WriteString("\n")
	}

	help := "←/→ select • enter open • q quit"
	if h.formOpen {
		help = "tab switch field • enter initialize • esc cancel"
	}
	b.WriteString(h.styles.Faint.Render(help))

	if h.width > 0 {
		return lipgloss.PlaceHorizontal(h.width, lipgloss.Center, b.String())
	}
	return b.String()
}

func (h *Home) viewForm() string {
	var b strings.Builder
	b.WriteString(h.styles.Title.Render("INITIALIZE " + h.pending.Label() + " PROJECT"))
	b.WriteString("\n\n")
	b.WriteString(h.styles.Label.Render("Project name") + h.name.View() + "\n")
	b.WriteString(h.styles.Label.Render("Base folder") + h.base.View() + "\n\n")

	action := "[ INITIALIZE ]"
	if h.CanSubmit() {
		b.WriteString(h.styles.Title.Render(action))
	} else {
		b.WriteString(h.styles.Faint.Render(action))
	}
	return h.styles.Modal.Render(b.String())
}
