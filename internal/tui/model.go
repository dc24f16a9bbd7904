package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qorex-scitech/lazo/internal/block"
	"github.com/qorex-scitech/lazo/internal/editor"
)

type blocksMsg struct {
	blocks []*block.Block
	err    error
}

// ModelScreen shows the model editor canvas as a block listing.
type ModelScreen struct {
	session *editor.Session
	blocks  []*block.Block
	err     error
	styles  Styles
}

// NewModelScreen creates the model editor screen.
func NewModelScreen(s *editor.Session) *ModelScreen {
	return &ModelScreen{session: s, styles: DefaultStyles()}
}

func (m *ModelScreen) load() tea.Cmd {
	s := m.session
	return func() tea.Msg {
		blocks, err := s.List(context.Background())
		return blocksMsg{blocks: blocks, err: err}
	}
}

// Init implements tea.Model.
func (m *ModelScreen) Init() tea.Cmd {
	return m.load()
}

// Update implements tea.Model.
func (m *ModelScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case blocksMsg:
		m.blocks, m.err = msg.blocks, msg.err
	case tea.KeyMsg:
		if isQuit(msg) {
			return m, tea.Quit
		}
		if msg.String() == "r" {
			return m, m.load()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *ModelScreen) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("MODEL EDITOR"))
	b.WriteString(" │ ")
	b.WriteString(fmt.Sprintf("PROJECT: %s", m.session.ProjectName()))
	b.WriteString("\n\n")

	switch {
	case m.session.Message() != "":
		b.WriteString(m.styles.Critical.Render(m.session.Message()))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(m.styles.Critical.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	case len(m.blocks) == 0:
		b.WriteString(m.styles.Muted.Render("Canvas is empty. Add blocks with 'lazo-model block add'."))
		b.WriteString("\n")
	default:
		for _, blk := range m.blocks {
			b.WriteString(fmt.Sprintf("%-16s %-14s (%6.1f, %6.1f)  in:%d out:%d\n",
				blk.ID, blk.Kind, blk.Pos.X, blk.Pos.Y, len(blk.Inputs), len(blk.Outputs)))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Faint.Render("r reload • q quit"))
	return b.String()
}
