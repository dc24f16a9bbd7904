package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qorex-scitech/lazo/internal/cli/config"
	"github.com/qorex-scitech/lazo/internal/launch"
	"github.com/qorex-scitech/lazo/internal/node"
	"github.com/qorex-scitech/lazo/internal/project"
	"github.com/qorex-scitech/lazo/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// HomeCreateFunc creates the project and returns the attached satellite
// command the home screen hands its terminal to.
func HomeCreateFunc(ctx context.Context, cfg *config.Config, logger *slog.Logger, l *launch.Launcher) tui.CreateFunc {
	return func(m launch.Module, name, base string) (string, *exec.Cmd, error) {
		res, err := CreateAndLaunch(ctx, cfg, logger, l, CreateRequest{
			Module:   m,
			Name:     name,
			Base:     base,
			NoLaunch: true,
		})
		if err != nil {
			return "", nil, err
		}
		satellite := l.Command(m, res.Dir)
		logger.Info("handing terminal to satellite", "binary", satellite.Path, "project", res.Dir)
		return res.Summary(), satellite, nil
	}
}

// RunHome shows the launcher home screen. Projects are created under base.
func RunHome(cmd *cobra.Command, base string) error {
	cmdCtx := NewCommandContext(cmd)
	l := launch.New(cmdCtx.Cfg.BinDir, cmdCtx.Logger)
	create := HomeCreateFunc(cmd.Context(), cmdCtx.Cfg, cmdCtx.Logger, l)

	p := tea.NewProgram(tui.NewHome(base, create),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmdCtx.Out))
	_, err := p.Run()
	return err
}

// RunModelScreen shows the model editor screen for the command's project.
func RunModelScreen(cmd *cobra.Command) error {
	cmdCtx, s, cleanup, err := openEditor(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	p := tea.NewProgram(tui.NewModelScreen(s),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmdCtx.Out))
	_, err = p.Run()
	return err
}

// RunNodeScreen shows the node runtime screen and forwards descriptor
// changes to it.
func RunNodeScreen(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	path := ProjectPath(cmd)
	s := node.Open(path, cmdCtx.Logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	p := tea.NewProgram(tui.NewNodeScreen(s),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmdCtx.Out))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := project.Watch(gctx, path, func(d project.Descriptor, err error) {
			p.Send(tui.DescriptorMsg{Descriptor: d, Err: err})
		})
		if err != nil {
			cmdCtx.Logger.Warn("descriptor watch stopped", "path", path, "error", err)
		}
		return nil
	})
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("node screen: %w", err)
		}
		return nil
	})
	return g.Wait()
}
