package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qorex-scitech/lazo/internal/node"
	"github.com/qorex-scitech/lazo/internal/project"
)

// DescriptorMsg carries a descriptor re-read after a change on disk.
type DescriptorMsg struct {
	Descriptor project.Descriptor
	Err        error
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// NodeScreen shows the node runtime status.
type NodeScreen struct {
	session *node.Session
	styles  Styles
}

// NewNodeScreen creates the node runtime screen.
func NewNodeScreen(s *node.Session) *NodeScreen {
	return &NodeScreen{session: s, styles: DefaultStyles()}
}

// Init implements tea.Model.
func (n *NodeScreen) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (n *NodeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return n, tick()
	case DescriptorMsg:
		if msg.Err == nil {
			n.session.Update(msg.Descriptor)
		}
	case tea.KeyMsg:
		if isQuit(msg) {
			return n, tea.Quit
		}
		if isToggle(msg) {
			n.session.Runtime.Toggle()
		}
	}
	return n, nil
}

// View implements tea.Model.
func (n *NodeScreen) View() string {
	rt := n.session.Runtime
	name := n.session.ProjectName()

	status := n.styles.Muted.Render(node.StatusStandby)
	button := "[ START RUNTIME ]"
	if rt.Running() {
		status = n.styles.Live.Render(node.StatusLive)
		button = "[ STOP EXECUTION ]"
	}

	var b strings.Builder
	b.WriteString(n.styles.Title.Render("NODE RUNTIME"))
	b.WriteString(" │ ")
	b.WriteString(fmt.Sprintf("LINKED PROJECT: %s", name))
	b.WriteString("   ")
	b.WriteString(status)
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("HELLO, WORLD FROM %s\n", name))
	b.WriteString(n.styles.Muted.Render("HARDWARE ABSTRACTION LAYER & SIGNAL MONITOR"))
	b.WriteString("\n\n")
	b.WriteString(n.styles.Selected.Render(button))
	b.WriteString("\n\n")
	b.WriteString(n.styles.Faint.Render("SYSTEM LOGS & SIGNAL TELEMETRY"))
	b.WriteString("\n\n")

	footer := fmt.Sprintf("KERNEL: V0.1-STABLE   Uptime: %s   enter toggle • q quit", node.FormatUptime(rt.Uptime()))
	b.WriteString(n.styles.Faint.Render(footer))
	return b.String()
}
