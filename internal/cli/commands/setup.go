package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/qorex-scitech/lazo/internal/cli/config"
	"github.com/qorex-scitech/lazo/internal/editor"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// IsTerminal reports whether stdin and stdout are a terminal, which decides
// between the interactive screens and plain output. Tests replace it.
var IsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// ProjectPathFlag is the persistent flag satellites read their project from.
const ProjectPathFlag = "project-path"

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Out    io.Writer
	ErrOut io.Writer
}

// NewCommandContext collects the config and logger stored by the root
// command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	return &CommandContext{
		Cfg:    config.GetConfig(ctx),
		Logger: config.GetLogger(ctx),
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// ProjectPath returns the satellite project directory, "." when unset.
func ProjectPath(cmd *cobra.Command) string {
	if f := cmd.Flag(ProjectPathFlag); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return "."
}

// openEditor opens the model editor session for the command's project.
// The returned cleanup must be called.
func openEditor(cmd *cobra.Command) (*CommandContext, *editor.Session, func(), error) {
	cmdCtx := NewCommandContext(cmd)
	s, err := editor.Open(cmd.Context(), ProjectPath(cmd), cmdCtx.Logger)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = s.Close()
	}
	return cmdCtx, s, cleanup, nil
}

// requireProject opens the editor and fails when the descriptor is missing.
func requireProject(cmd *cobra.Command) (*CommandContext, *editor.Session, func(), error) {
	cmdCtx, s, cleanup, err := openEditor(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	if s.Err != nil {
		cleanup()
		return nil, nil, nil, editor.ErrNoProject
	}
	return cmdCtx, s, cleanup, nil
}
