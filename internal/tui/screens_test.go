package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qorex-scitech/lazo/internal/block"
	"github.com/qorex-scitech/lazo/internal/editor"
	"github.com/qorex-scitech/lazo/internal/node"
	"github.com/qorex-scitech/lazo/internal/project"
	"github.com/qorex-scitech/lazo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeScreen_Toggle(t *testing.T) {
	dir := testutil.SetupTestProject(t, "Rig")
	s := node.Open(dir, testutil.NewTestLogger(t))
	screen := NewNodeScreen(s)

	assert.Contains(t, screen.View(), "LINKED PROJECT: Rig")
	assert.Contains(t, screen.View(), node.StatusStandby)

	screen.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, s.Runtime.Running())
	assert.Contains(t, screen.View(), node.StatusLive)
	assert.Contains(t, screen.View(), "STOP EXECUTION")

	screen.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.False(t, s.Runtime.Running())
}

func TestNodeScreen_DescriptorUpdate(t *testing.T) {
	s := node.Open(t.TempDir(), nil)
	screen := NewNodeScreen(s)
	assert.Contains(t, screen.View(), project.UnnamedProject)

	screen.Update(DescriptorMsg{Descriptor: project.Descriptor{Name: "Renamed"}})
	assert.Contains(t, screen.View(), "HELLO, WORLD FROM Renamed")
}

func TestModelScreen_MissingDescriptor(t *testing.T) {
	s, err := editor.Open(context.Background(), t.TempDir(), nil)
	require.NoError(t, err)
	screen := NewModelScreen(s)

	assert.Contains(t, screen.View(), editor.MissingDescriptorMessage)
}

func TestModelScreen_ListsBlocks(t *testing.T) {
	dir := testutil.SetupTestProject(t, "Plant")
	s, err := editor.Open(context.Background(), dir, testutil.NewTestLogger(t))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Add(context.Background(), editor.AddRequest{ID: "sum1", Kind: block.ModelSumming})
	require.NoError(t, err)

	screen := NewModelScreen(s)
	msg := screen.Init()()
	screen.Update(msg)

	view := screen.View()
	assert.Contains(t, view, "PROJECT: Plant")
	assert.Contains(t, view, "sum1")
	assert.Contains(t, view, "model/summing")
	assert.Contains(t, view, "in:2 out:1")
}
