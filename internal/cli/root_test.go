package cli

import (
	"testing"

	"github.com/qorex-scitech/lazo/internal/cli/commands"
	clitest "github.com/qorex-scitech/lazo/internal/cli/testutil"
	"github.com/qorex-scitech/lazo/internal/editor"
	"github.com/qorex-scitech/lazo/internal/project"
	"github.com/qorex-scitech/lazo/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noTerminal(t *testing.T) {
	t.Helper()
	old := commands.IsTerminal
	commands.IsTerminal = func() bool { return false }
	t.Cleanup(func() { commands.IsTerminal = old })
}

func TestRootCommands_Subcommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  func() []string
		want []string
	}{
		{
			name: "launcher",
			cmd:  func() []string { return commandNames(NewLauncherCmd().Commands()) },
			want: []string{"new", "open", "version", "completion"},
		},
		{
			name: "model",
			cmd:  func() []string { return commandNames(NewModelCmd(".").Commands()) },
			want: []string{"info", "kinds", "block", "export", "version", "completion"},
		},
		{
			name: "node",
			cmd:  func() []string { return commandNames(NewNodeCmd(".").Commands()) },
			want: []string{"status", "run", "version", "completion"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cmd()
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestLauncher_NoTerminalShowsHelp(t *testing.T) {
	noTerminal(t)

	res := clitest.ExecuteCommand(t, NewLauncherCmd())
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "Usage:")
	assert.Contains(t, res.Out, "new")
}

func TestModel_NoTerminalShowsInfo(t *testing.T) {
	noTerminal(t)
	dir := testutil.SetupTestProject(t, "Plant")

	res := clitest.ExecuteCommand(t, NewModelCmd(dir))
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "Project: Plant")
}

func TestModel_MissingDescriptor(t *testing.T) {
	noTerminal(t)

	res := clitest.ExecuteCommand(t, NewModelCmd(t.TempDir()))
	require.ErrorIs(t, res.Err, editor.ErrNoProject)
}

func TestNode_NoTerminalShowsStatus(t *testing.T) {
	noTerminal(t)
	dir := testutil.SetupTestProject(t, "Rig")

	res := clitest.ExecuteCommand(t, NewNodeCmd(dir))
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "LINKED PROJECT: Rig")
	assert.Contains(t, res.Out, "STANDBY")
}

func TestSatellite_ProjectPathFromArgs(t *testing.T) {
	dir := testutil.SetupTestProject(t, "Plant")

	path, rest := project.PathFromArgs([]string{"--project-path", dir, "info"})
	res := clitest.ExecuteCommand(t, NewModelCmd(path), rest...)
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "Project: Plant")

	res = clitest.ExecuteCommand(t, NewModelCmd("."), "info", "--project-path", dir)
	require.NoError(t, res.Err, "the flag is also accepted after the subcommand")
	assert.Contains(t, res.Out, "Project: Plant")
}

func TestRoot_InvalidOutputFormat(t *testing.T) {
	res := clitest.ExecuteCommand(t, NewModelCmd("."), "kinds", "-o", "xml")
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "invalid output")
}

func TestCompletionCommand(t *testing.T) {
	res := clitest.ExecuteCommand(t, NewLauncherCmd(), "completion", "bash")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "lazo")

	res = clitest.ExecuteCommand(t, NewLauncherCmd(), "completion", "tcsh")
	require.Error(t, res.Err)
}

func TestVersionFlag(t *testing.T) {
	res := clitest.ExecuteCommand(t, NewNodeCmd("."), "--version")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Out, "lazo-node "+Version)
}

func commandNames(cmds []*cobra.Command) []string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name())
	}
	return names
}
